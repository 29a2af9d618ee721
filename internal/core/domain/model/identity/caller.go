// Package identity describes the authenticated caller as issued by the external identity
// provider. Every operation receives a Caller explicitly.
package identity

import (
	"slices"
	"strings"

	"eshift/internal/pkg/errs"
)

type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleCustomer Role = "Customer"
)

// ParseRole maps a claim value to a known role, case-insensitively.
func ParseRole(s string) (Role, bool) {
	for _, r := range []Role{RoleAdmin, RoleCustomer} {
		if strings.EqualFold(string(r), s) {
			return r, true
		}
	}
	return "", false
}

// Caller is a user identifier plus the roles the identity provider granted it.
type Caller struct {
	userID string
	roles  []Role
}

// NewCaller keeps only known roles; unknown claim values are dropped.
func NewCaller(userID string, roles ...string) (Caller, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Caller{}, errs.NewUnauthorizedError("caller has no user id")
	}

	c := Caller{userID: userID}
	for _, raw := range roles {
		if r, ok := ParseRole(raw); ok && !slices.Contains(c.roles, r) {
			c.roles = append(c.roles, r)
		}
	}
	return c, nil
}

func (c Caller) UserID() string {
	return c.userID
}

func (c Caller) Roles() []Role {
	return slices.Clone(c.roles)
}

func (c Caller) HasRole(r Role) bool {
	return slices.Contains(c.roles, r)
}

func (c Caller) IsAdmin() bool {
	return c.HasRole(RoleAdmin)
}

// Validate rejects the zero Caller.
func (c Caller) Validate() error {
	if c.userID == "" {
		return errs.NewUnauthorizedError("caller")
	}
	return nil
}

// RequireRole returns Unauthorized unless the caller carries r.
func (c Caller) RequireRole(r Role) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if !c.HasRole(r) {
		return errs.NewUnauthorizedError("caller lacks role " + string(r))
	}
	return nil
}
