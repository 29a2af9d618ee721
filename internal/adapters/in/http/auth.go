package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"eshift/internal/core/domain/model/identity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const callerContextKey = "eshift.caller"

var ErrAuthSecretIsRequired = errors.New("jwt secret is required")

// Claims is the token payload issued by the identity provider: sub is the user id,
// roles the granted role names.
type Claims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// Authenticator verifies HS256 bearer tokens and turns them into an identity.Caller.
type Authenticator struct {
	secret []byte
	issuer string
}

func NewAuthenticator(secret, issuer string) (*Authenticator, error) {
	if secret == "" {
		return nil, ErrAuthSecretIsRequired
	}
	return &Authenticator{secret: []byte(secret), issuer: issuer}, nil
}

// Middleware rejects requests without a valid bearer token with 401 and stores the
// caller in the echo context otherwise.
func (a *Authenticator) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || raw == "" {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Authorization header with a bearer token is required",
				})
			}

			caller, err := a.Verify(raw)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Invalid or expired token",
				})
			}

			c.Set(callerContextKey, caller)
			return next(c)
		}
	}
}

// Verify parses and validates a token string.
func (a *Authenticator) Verify(raw string) (identity.Caller, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if a.issuer != "" {
		opts = append(opts, jwt.WithIssuer(a.issuer))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (any, error) {
		return a.secret, nil
	}, opts...)
	if err != nil {
		return identity.Caller{}, err
	}
	if !token.Valid {
		return identity.Caller{}, jwt.ErrTokenInvalidClaims
	}

	return identity.NewCaller(claims.Subject, claims.Roles...)
}

// Issue signs a token for userID. It is used by tooling and tests; production tokens
// come from the identity provider.
func (a *Authenticator) Issue(userID string, roles []string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    a.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

// CallerFrom returns the caller stored by Middleware. Outside the authenticated group it
// returns the zero Caller, which every use case rejects.
func CallerFrom(c echo.Context) identity.Caller {
	caller, _ := c.Get(callerContextKey).(identity.Caller)
	return caller
}
