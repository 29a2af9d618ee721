package commands

import (
	"errors"
	"fmt"
	"time"

	"eshift/internal/core/domain/model/identity"
	"eshift/internal/core/domain/model/kernel"
	"eshift/internal/pkg/errs"
	"eshift/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrRequestJobCommandIsNotConstructed = errors.New(
	"RequestJobCommand must be created via NewRequestJobCommand constructor",
)

// ProductRequest is one product line of a requested load.
type ProductRequest struct {
	Name        string
	Category    string
	Description string
	UnitWeight  decimal.Decimal
	Quantity    int
}

// LoadRequest is one load of a requested job. A zero Weight is derived from the
// product lines as the sum of unit weight times quantity.
type LoadRequest struct {
	Description string
	Weight      decimal.Decimal
	PickupDate  time.Time
	Products    []ProductRequest
}

// RequestJobCommand carries a customer's job request: the job itself and an ordered list of
// loads, each with an ordered list of products.
//
// Example:
//
//	cmd, err := NewRequestJobCommand(caller, kernel.NewUUID(), customerID,
//	    "Kandy", "Colombo", jobDate,
//	    []LoadRequest{{
//	        Description: "Living room",
//	        PickupDate:  jobDate,
//	        Products: []ProductRequest{
//	            {Name: "Sofa", Category: "Furniture", UnitWeight: decimal.NewFromInt(45), Quantity: 1},
//	        },
//	    }})
type RequestJobCommand struct { //nolint:recvcheck //using for validation
	caller        identity.Caller
	jobID         kernel.UUID
	customerID    kernel.UUID
	startLocation kernel.Place
	destination   kernel.Place
	jobDate       time.Time
	loads         []LoadRequest

	guard guard.ConstructorGuard
}

func NewRequestJobCommand(
	caller identity.Caller,
	jobID kernel.UUID,
	customerID kernel.UUID,
	startLocation string,
	destination string,
	jobDate time.Time,
	loads []LoadRequest,
) (RequestJobCommand, error) {
	c := RequestJobCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setCaller(caller),
		c.setJobID(jobID),
		c.setCustomerID(customerID),
		c.setPlaces(startLocation, destination),
		c.setJobDate(jobDate),
		c.setLoads(loads),
	); err != nil {
		return RequestJobCommand{}, err
	}

	return c, nil
}

func (c RequestJobCommand) Validate() error {
	return c.guard.Validate(ErrRequestJobCommandIsNotConstructed)
}

func (c RequestJobCommand) Caller() identity.Caller {
	return c.caller
}

func (c RequestJobCommand) JobID() kernel.UUID {
	return c.jobID
}

func (c RequestJobCommand) CustomerID() kernel.UUID {
	return c.customerID
}

func (c RequestJobCommand) StartLocation() kernel.Place {
	return c.startLocation
}

func (c RequestJobCommand) Destination() kernel.Place {
	return c.destination
}

func (c RequestJobCommand) JobDate() time.Time {
	return c.jobDate
}

// Loads returns a copy of the requested loads in submission order.
func (c RequestJobCommand) Loads() []LoadRequest {
	return copyLoads(c.loads)
}

func (c *RequestJobCommand) setCaller(caller identity.Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *RequestJobCommand) setJobID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.jobID = id
	return nil
}

func (c *RequestJobCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	c.customerID = id
	return nil
}

func (c *RequestJobCommand) setPlaces(startLocation, destination string) error {
	start, startErr := kernel.NewPlace("startLocation", startLocation)
	dest, destErr := kernel.NewPlace("destination", destination)
	if err := errors.Join(startErr, destErr); err != nil {
		return err
	}
	c.startLocation = start
	c.destination = dest
	return nil
}

func (c *RequestJobCommand) setJobDate(jobDate time.Time) error {
	if jobDate.IsZero() {
		return errs.NewValueIsRequiredError("jobDate")
	}
	c.jobDate = jobDate
	return nil
}

func (c *RequestJobCommand) setLoads(loads []LoadRequest) error {
	if len(loads) == 0 {
		return errs.NewValueIsRequiredError("loads")
	}

	var all []error
	for i, l := range loads {
		if len(l.Products) == 0 {
			all = append(all, errs.NewValueIsRequiredError(fmt.Sprintf("loads[%d].products", i)))
		}
	}
	if err := errors.Join(all...); err != nil {
		return err
	}

	c.loads = copyLoads(loads)
	return nil
}

// copyLoads copies loads together with their product slices.
func copyLoads(loads []LoadRequest) []LoadRequest {
	out := make([]LoadRequest, len(loads))
	for i, l := range loads {
		out[i] = l
		out[i].Products = append([]ProductRequest(nil), l.Products...)
	}
	return out
}
