package commands

import (
	"context"
	"errors"
	"fmt"

	"eshift/internal/core/domain/model/customer"
	"eshift/internal/core/domain/model/identity"
	"eshift/internal/core/domain/model/kernel"
	"eshift/internal/core/ports"
	"eshift/internal/pkg/errs"
)

// resolveCustomer maps the caller to their Customer row. A caller without one is Unauthorized.
func resolveCustomer(
	ctx context.Context,
	repo ports.CustomerRepository,
	caller identity.Caller,
) (*customer.Customer, error) {
	if err := caller.Validate(); err != nil {
		return nil, err
	}

	c, err := repo.GetByUserID(ctx, caller.UserID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, errs.NewUnauthorizedErrorWithCause("caller", err)
	}
	if err != nil {
		return nil, err
	}

	return c, nil
}

// retryOnConflict runs attempt and, if it lost an optimistic concurrency race, runs it once more.
// Each attempt must open its own unit of work so the second one reads fresh state.
func retryOnConflict(ctx context.Context, attempt func(ctx context.Context) error) error {
	err := attempt(ctx)
	if !errors.Is(err, errs.ErrConflict) {
		return err
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return err
	}
	return attempt(ctx)
}

func validateExpectedVersion(version int) error {
	if version < 1 {
		return errs.NewValueIsRequiredError("version")
	}
	return nil
}

// checkVersion rejects a direct edit based on a version other than the stored one.
// The caller has to reload and resubmit.
func checkVersion(paramName string, id kernel.UUID, stored, expected int) error {
	if stored == expected {
		return nil
	}
	return errs.NewConflictError(
		paramName,
		fmt.Sprintf("%s was modified, version %d is stale, current version is %d", id, expected, stored),
	)
}
