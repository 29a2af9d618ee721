package commands

import (
	"context"
	"errors"
	"fmt"

	"eshift/internal/core/domain/model/job"
	"eshift/internal/core/domain/model/kernel"
	"eshift/internal/core/domain/model/load"
	"eshift/internal/core/domain/model/loadproduct"
	"eshift/internal/core/domain/model/product"
	"eshift/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrJobRequestFailed is the generic, retryable failure of the job request transaction.
var ErrJobRequestFailed = errors.New("job request failed, please try again")

// JobRequestFailedError keeps the store failure for logging. It unwraps only to
// ErrJobRequestFailed so callers cannot branch on the internal cause.
type JobRequestFailedError struct {
	Cause error
}

func (e *JobRequestFailedError) Error() string {
	return fmt.Sprintf("%s (cause: %v)", ErrJobRequestFailed, e.Cause)
}

func (e *JobRequestFailedError) Unwrap() error {
	return ErrJobRequestFailed
}

// RequestJobCommandHandler runs the job request transaction: one Job, then per load one Load,
// then per product line one Product owned by the customer and one LoadProduct link.
//
// Business rules:
//   - The caller must resolve to the customer named by the request, checked before any write
//   - Every domain object is built and validated before the first insert
//   - All rows commit together or none do
type RequestJobCommandHandler struct {
	uowFactory UoWFactory
}

func NewRequestJobCommandHandler(uowFactory UoWFactory) RequestJobCommandHandler {
	return RequestJobCommandHandler{
		uowFactory: uowFactory,
	}
}

type requestedLoad struct {
	load     *load.Load
	products []*product.Product
	links    []*loadproduct.LoadProduct
}

func (h RequestJobCommandHandler) Handle(ctx context.Context, cmd RequestJobCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return &JobRequestFailedError{Cause: err}
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	owner, err := resolveCustomer(ctx, uow.CustomerRepository(), cmd.Caller())
	if err != nil {
		return err
	}
	if !owner.ID().IsEqual(cmd.CustomerID()) {
		return errs.NewUnauthorizedError("customerId")
	}

	j, err := job.NewJob(cmd.JobID(), owner.ID(), cmd.StartLocation(), cmd.Destination(), cmd.JobDate())
	if err != nil {
		return err
	}

	requested, err := buildRequestedLoads(j, cmd.Loads())
	if err != nil {
		return err
	}

	if err = writeJobRequest(ctx, uow, j, requested); err != nil {
		return &JobRequestFailedError{Cause: err}
	}

	if err = uow.Commit(ctx); err != nil {
		return &JobRequestFailedError{Cause: err}
	}

	return nil
}

func buildRequestedLoads(j *job.Job, loads []LoadRequest) ([]requestedLoad, error) {
	out := make([]requestedLoad, 0, len(loads))

	for i, lr := range loads {
		var entry requestedLoad
		derived := decimal.Zero

		for k, pr := range lr.Products {
			weight, err := kernel.NewWeight("unitWeightKg", pr.UnitWeight, product.MaxWeightKg)
			if err != nil {
				return nil, fmt.Errorf("loads[%d].products[%d]: %w", i, k, err)
			}
			p, err := product.NewProduct(kernel.NewUUID(), j.CustomerID(), product.Details{
				Name:        pr.Name,
				Category:    pr.Category,
				Description: pr.Description,
			}, weight)
			if err != nil {
				return nil, fmt.Errorf("loads[%d].products[%d]: %w", i, k, err)
			}
			entry.products = append(entry.products, p)
			derived = derived.Add(weight.Times(max(pr.Quantity, 0)))
		}

		kg := lr.Weight
		if kg.IsZero() {
			kg = derived
		}
		weight, err := kernel.NewWeight("weightKg", kg, load.MaxWeightKg)
		if err != nil {
			return nil, fmt.Errorf("loads[%d]: %w", i, err)
		}

		l, err := load.NewLoad(kernel.NewUUID(), j.ID(), load.NewNumber(), lr.Description, weight, lr.PickupDate)
		if err != nil {
			return nil, fmt.Errorf("loads[%d]: %w", i, err)
		}
		entry.load = l

		for k, pr := range lr.Products {
			link, err := loadproduct.NewLoadProduct(kernel.NewUUID(), l.ID(), entry.products[k].ID(), pr.Quantity)
			if err != nil {
				return nil, fmt.Errorf("loads[%d].products[%d]: %w", i, k, err)
			}
			entry.links = append(entry.links, link)
		}

		out = append(out, entry)
	}

	return out, nil
}

func writeJobRequest(ctx context.Context, uow UoW, j *job.Job, requested []requestedLoad) error {
	if err := uow.JobRepository().Add(ctx, j); err != nil {
		return err
	}

	loads := uow.LoadRepository()
	products := uow.ProductRepository()
	links := uow.LoadProductRepository()

	for _, entry := range requested {
		if err := loads.Add(ctx, entry.load); err != nil {
			return err
		}
		for k, p := range entry.products {
			if err := products.Add(ctx, p); err != nil {
				return err
			}
			if err := links.Add(ctx, entry.links[k]); err != nil {
				return err
			}
		}
	}

	return nil
}
