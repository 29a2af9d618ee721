package job

import (
	"errors"
	"fmt"
	"time"

	"eshift/internal/core/domain/events"
	"eshift/internal/core/domain/model/kernel"
	"eshift/internal/core/domain/model/load"
	"eshift/internal/pkg/errs"
	"eshift/internal/pkg/guard"
)

var (
	// ErrJobIsNotConstructed is returned when a Job was not created through NewJob or RestoreJob.
	ErrJobIsNotConstructed = errors.New("Job must be created via NewJob constructor")
)

// Job is the aggregate root of a relocation request.
//
// Job follows these invariants:
//   - Belongs to exactly one customer for its whole lifetime
//   - Start location and destination are 1..100 characters
//   - Completed only when every load is Assigned
//   - Terminal statuses are never left
type Job struct {
	id            kernel.UUID
	customerID    kernel.UUID
	startLocation kernel.Place
	destination   kernel.Place
	jobDate       time.Time
	status        Status
	version       int

	guard guard.ConstructorGuard
	events.Recorder
}

// NewJob creates an InProgress job and records a JobRequested event.
//
// Example:
//
//	start, _ := kernel.NewPlace("startLocation", "Kandy")
//	dest, _ := kernel.NewPlace("destination", "Colombo")
//	j, err := job.NewJob(kernel.NewUUID(), customerID, start, dest, date)
func NewJob(
	id kernel.UUID,
	customerID kernel.UUID,
	startLocation kernel.Place,
	destination kernel.Place,
	jobDate time.Time,
) (*Job, error) {
	j := &Job{
		status:  InProgress,
		version: 1,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		j.setID(id),
		j.setCustomerID(customerID),
		j.setStartLocation(startLocation),
		j.setDestination(destination),
		j.setJobDate(jobDate),
	); err != nil {
		return nil, err
	}

	j.Record(events.NewEvent(events.JobRequested, j.id, map[string]any{
		"customerId":    j.customerID.String(),
		"startLocation": j.startLocation.String(),
		"destination":   j.destination.String(),
		"jobDate":       j.jobDate.Format(time.DateOnly),
	}))

	return j, nil
}

// RestoreJob reconstructs a job from storage without raising events.
func RestoreJob(
	id kernel.UUID,
	customerID kernel.UUID,
	startLocation kernel.Place,
	destination kernel.Place,
	jobDate time.Time,
	status Status,
	version int,
) (*Job, error) {
	j := &Job{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		j.setID(id),
		j.setCustomerID(customerID),
		j.setStartLocation(startLocation),
		j.setDestination(destination),
		j.setJobDate(jobDate),
		j.setStatus(status),
		j.setVersion(version),
	); err != nil {
		return nil, err
	}

	return j, nil
}

func (j *Job) Validate() error {
	if j == nil {
		return ErrJobIsNotConstructed
	}
	return j.guard.Validate(ErrJobIsNotConstructed)
}

func (j *Job) IsEqual(other *Job) bool {
	return other != nil && j.id.IsEqual(other.id)
}

func (j *Job) ID() kernel.UUID {
	return j.id
}

func (j *Job) CustomerID() kernel.UUID {
	return j.customerID
}

func (j *Job) StartLocation() kernel.Place {
	return j.startLocation
}

func (j *Job) Destination() kernel.Place {
	return j.destination
}

func (j *Job) JobDate() time.Time {
	return j.jobDate
}

func (j *Job) Status() Status {
	return j.status
}

func (j *Job) Version() int {
	return j.version
}

// IsOwnedBy reports whether the job belongs to the given customer.
func (j *Job) IsOwnedBy(customerID kernel.UUID) bool {
	return j.customerID.IsEqual(customerID)
}

// Complete moves an InProgress job to Completed.
//
// Business Rules:
//   - Only an InProgress job can be completed (PreconditionFailed otherwise)
//   - Every load of the job must currently be Assigned (ValueIsInvalid otherwise);
//     a job with no loads satisfies this trivially
//
// loadStatuses are the current statuses of all loads of this job.
func (j *Job) Complete(loadStatuses []load.Status) error {
	next, err := j.status.Complete()
	if err != nil {
		return err
	}

	notAssigned := 0
	for _, s := range loadStatuses {
		if s != load.Assigned {
			notAssigned++
		}
	}
	if notAssigned > 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d of %d loads are not assigned to a transport unit", notAssigned, len(loadStatuses)),
		)
	}

	j.changeStatus(next)
	return nil
}

// Cancel moves an InProgress job to Cancelled. A terminal job is left unchanged.
func (j *Job) Cancel() error {
	next, err := j.status.Cancel()
	if err != nil {
		return err
	}
	j.changeStatus(next)
	return nil
}

// ChangeStatus is the administrative entry point for status changes.
// Re-applying InProgress to an InProgress job is a no-op.
func (j *Job) ChangeStatus(target Status, loadStatuses []load.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	switch {
	case j.status.IsTerminal():
		return errs.NewPreconditionFailedErrorWithCause(
			"status",
			fmt.Errorf("cannot change a %s job to %s", j.status, target),
		)
	case target == j.status:
		return nil
	case target == Completed:
		return j.Complete(loadStatuses)
	case target == Cancelled:
		return j.Cancel()
	}

	return errs.NewPreconditionFailedErrorWithCause(
		"status",
		fmt.Errorf("cannot change a %s job to %s", j.status, target),
	)
}

// CheckLoadStatus reports whether one of the job's loads may move to next.
// A load of a Completed job cannot fall back to Pending.
func (j *Job) CheckLoadStatus(next load.Status) error {
	if j.status == Completed && next == load.Pending {
		return errs.NewPreconditionFailedErrorWithCause(
			"transportUnitId",
			fmt.Errorf("job %s is completed, its loads cannot be unassigned", j.id),
		)
	}
	return nil
}

// UpdateDetails replaces locations and date of an InProgress job.
// On any error the job is left unchanged.
func (j *Job) UpdateDetails(startLocation, destination kernel.Place, jobDate time.Time) error {
	if err := j.status.ValidateEditable(); err != nil {
		return err
	}

	staged := *j
	if err := errors.Join(
		staged.setStartLocation(startLocation),
		staged.setDestination(destination),
		staged.setJobDate(jobDate),
	); err != nil {
		return err
	}

	if j.startLocation.IsEqual(startLocation) && j.destination.IsEqual(destination) && j.jobDate.Equal(jobDate) {
		return nil
	}

	j.startLocation = startLocation
	j.destination = destination
	j.jobDate = jobDate
	j.Record(events.NewEvent(events.JobDetailsUpdated, j.id, map[string]any{
		"startLocation": j.startLocation.String(),
		"destination":   j.destination.String(),
		"jobDate":       j.jobDate.Format(time.DateOnly),
	}))
	return nil
}

func (j *Job) changeStatus(next Status) {
	previous := j.status
	j.status = next
	j.Record(events.NewEvent(events.JobStatusChanged, j.id, map[string]any{
		"customerId": j.customerID.String(),
		"from":       previous.String(),
		"to":         next.String(),
	}))
}

func (j *Job) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	j.id = id
	return nil
}

func (j *Job) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	j.customerID = customerID
	return nil
}

func (j *Job) setStartLocation(place kernel.Place) error {
	if err := place.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("startLocation", err)
	}
	j.startLocation = place
	return nil
}

func (j *Job) setDestination(place kernel.Place) error {
	if err := place.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("destination", err)
	}
	j.destination = place
	return nil
}

func (j *Job) setJobDate(jobDate time.Time) error {
	if jobDate.IsZero() {
		return errs.NewValueIsRequiredError("jobDate")
	}
	j.jobDate = jobDate
	return nil
}

func (j *Job) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	j.status = status
	return nil
}

func (j *Job) setVersion(version int) error {
	if version < 1 {
		return errs.NewVersionIsInvalidErrorWithCause("version")
	}
	j.version = version
	return nil
}
