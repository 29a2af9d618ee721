package commands

import (
	"errors"
	"time"

	"eshift/internal/core/domain/model/identity"
	"eshift/internal/core/domain/model/kernel"
	"eshift/internal/pkg/errs"
	"eshift/internal/pkg/guard"
)

var ErrUpdateJobDetailsCommandIsNotConstructed = errors.New(
	"UpdateJobDetailsCommand must be created via NewUpdateJobDetailsCommand constructor",
)

// UpdateJobDetailsCommand edits the route and date of an in-progress job.
// expectedVersion is the job version the caller read; a stale version is a Conflict.
type UpdateJobDetailsCommand struct { //nolint:recvcheck //using for validation
	caller          identity.Caller
	jobID           kernel.UUID
	startLocation   kernel.Place
	destination     kernel.Place
	jobDate         time.Time
	expectedVersion int

	guard guard.ConstructorGuard
}

func NewUpdateJobDetailsCommand(
	caller identity.Caller,
	jobID kernel.UUID,
	startLocation, destination string,
	jobDate time.Time,
	expectedVersion int,
) (UpdateJobDetailsCommand, error) {
	c := UpdateJobDetailsCommand{
		guard: guard.NewConstructorGuard(),
	}

	start, startErr := kernel.NewPlace("startLocation", startLocation)
	dest, destErr := kernel.NewPlace("destination", destination)
	var dateErr error
	if jobDate.IsZero() {
		dateErr = errs.NewValueIsRequiredError("jobDate")
	}

	if err := errors.Join(
		caller.Validate(),
		jobID.Validate(),
		startErr,
		destErr,
		dateErr,
		validateExpectedVersion(expectedVersion),
	); err != nil {
		return UpdateJobDetailsCommand{}, err
	}

	c.caller = caller
	c.jobID = jobID
	c.startLocation = start
	c.destination = dest
	c.jobDate = jobDate
	c.expectedVersion = expectedVersion
	return c, nil
}

func (c UpdateJobDetailsCommand) Validate() error {
	return c.guard.Validate(ErrUpdateJobDetailsCommandIsNotConstructed)
}

func (c UpdateJobDetailsCommand) Caller() identity.Caller {
	return c.caller
}

func (c UpdateJobDetailsCommand) JobID() kernel.UUID {
	return c.jobID
}

func (c UpdateJobDetailsCommand) StartLocation() kernel.Place {
	return c.startLocation
}

func (c UpdateJobDetailsCommand) Destination() kernel.Place {
	return c.destination
}

func (c UpdateJobDetailsCommand) JobDate() time.Time {
	return c.jobDate
}

func (c UpdateJobDetailsCommand) ExpectedVersion() int {
	return c.expectedVersion
}
