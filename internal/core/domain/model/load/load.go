package load

import (
	"errors"
	"fmt"
	"time"

	"eshift/internal/core/domain/events"
	"eshift/internal/core/domain/model/kernel"
	"eshift/internal/pkg/errs"
	"eshift/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const (
	// DescriptionMaxLength bounds the free-text description of a load.
	DescriptionMaxLength = 250
)

var (
	// ErrLoadIsNotConstructed is returned when a Load was not created through NewLoad or RestoreLoad.
	ErrLoadIsNotConstructed = errors.New("Load must be created via NewLoad constructor")

	// MaxWeightKg is the heaviest total weight a single load may declare.
	MaxWeightKg = decimal.NewFromInt(10000)
)

// Load is one physical shipment within a job. It is an aggregate root of its own:
// it references its job and, optionally, the transport unit carrying it by id only.
//
// Load follows these invariants:
//   - Must belong to a job
//   - Description is 1..250 characters, weight is 0.01..10000 kg
//   - Status only moves along the transitions defined by Status
//   - A change of transport unit and the resulting status change happen together
type Load struct {
	id              kernel.UUID
	jobID           kernel.UUID
	number          Number
	transportUnitID *kernel.UUID
	description     string
	weight          kernel.Weight
	pickupDate      time.Time
	deliveryDate    *time.Time
	status          Status
	version         int

	guard guard.ConstructorGuard
	events.Recorder
}

// NewLoad creates a Pending load with no transport unit.
//
// Parameters:
//   - id: unique identifier of the load
//   - jobID: the owning job
//   - number: the generated load number (see NewNumber)
//   - description: what is being moved, 1..250 characters
//   - weight: total declared weight, 0.01..10000 kg
//   - pickupDate: the requested pickup date
//
// Example:
//
//	w, _ := kernel.NewWeight("weightKg", decimal.NewFromInt(120), load.MaxWeightKg)
//	l, err := load.NewLoad(kernel.NewUUID(), jobID, load.NewNumber(), "Living room", w, pickup)
func NewLoad(
	id kernel.UUID,
	jobID kernel.UUID,
	number Number,
	description string,
	weight kernel.Weight,
	pickupDate time.Time,
) (*Load, error) {
	l := &Load{
		status:  Pending,
		version: 1,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setID(id),
		l.setJobID(jobID),
		l.setNumber(number),
		l.setDescription(description),
		l.setWeight(weight),
		l.setPickupDate(pickupDate),
	); err != nil {
		return nil, err
	}

	return l, nil
}

// RestoreLoad reconstructs a load from storage without raising events.
// Status and transport unit are restored as stored; their pairing is checked
// only when the assignment changes.
func RestoreLoad(
	id kernel.UUID,
	jobID kernel.UUID,
	number Number,
	transportUnitID *kernel.UUID,
	description string,
	weight kernel.Weight,
	pickupDate time.Time,
	deliveryDate *time.Time,
	status Status,
	version int,
) (*Load, error) {
	l := &Load{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		l.setID(id),
		l.setJobID(jobID),
		l.setNumber(number),
		l.setTransportUnitID(transportUnitID),
		l.setDescription(description),
		l.setWeight(weight),
		l.setPickupDate(pickupDate),
		l.setStatus(status),
		l.setVersion(version),
	); err != nil {
		return nil, err
	}
	l.deliveryDate = deliveryDate

	return l, nil
}

// Validate ensures the Load was built by a constructor.
func (l *Load) Validate() error {
	if l == nil {
		return ErrLoadIsNotConstructed
	}
	return l.guard.Validate(ErrLoadIsNotConstructed)
}

func (l *Load) IsEqual(other *Load) bool {
	return other != nil && l.id.IsEqual(other.id)
}

func (l *Load) ID() kernel.UUID {
	return l.id
}

func (l *Load) JobID() kernel.UUID {
	return l.jobID
}

func (l *Load) Number() Number {
	return l.number
}

// TransportUnitID returns the bound transport unit, nil when unassigned.
func (l *Load) TransportUnitID() *kernel.UUID {
	return l.transportUnitID
}

func (l *Load) Description() string {
	return l.description
}

func (l *Load) Weight() kernel.Weight {
	return l.weight
}

func (l *Load) PickupDate() time.Time {
	return l.pickupDate
}

// DeliveryDate is set when the load is delivered.
func (l *Load) DeliveryDate() *time.Time {
	return l.deliveryDate
}

func (l *Load) Status() Status {
	return l.status
}

// Version is the optimistic concurrency token the load was read with.
func (l *Load) Version() int {
	return l.version
}

// AssignTransportUnit binds (unitID != nil) or clears (unitID == nil) the transport unit
// and derives the status in the same step.
//
// Business Rules:
//   - Binding a unit moves the load to Assigned
//   - Clearing the unit moves the load back to Pending
//   - Delivered and Cancelled loads keep their status; only the reference changes
//   - Re-applying the current assignment is a no-op and raises no event
//
// Example:
//
//	unitID := kernel.NewUUID()
//	_ = l.AssignTransportUnit(&unitID) // Pending -> Assigned
//	_ = l.AssignTransportUnit(nil)     // Assigned -> Pending
func (l *Load) AssignTransportUnit(unitID *kernel.UUID) error {
	if unitID != nil {
		if err := unitID.Validate(); err != nil {
			return err
		}
	}

	var next Status
	if unitID != nil {
		next = l.status.AfterUnitAssigned()
	} else {
		next = l.status.AfterUnitCleared()
	}

	if sameUnit(l.transportUnitID, unitID) && next == l.status {
		return nil
	}

	previous := l.status
	if unitID != nil {
		id := *unitID
		l.transportUnitID = &id
	} else {
		l.transportUnitID = nil
	}
	l.status = next

	payload := map[string]any{
		"jobId":      l.jobID.String(),
		"loadNumber": l.number.String(),
		"from":       previous.String(),
		"to":         next.String(),
	}
	if unitID != nil {
		payload["transportUnitId"] = unitID.String()
		l.Record(events.NewEvent(events.LoadTransportUnitAssigned, l.id, payload))
	} else {
		l.Record(events.NewEvent(events.LoadTransportUnitUnassigned, l.id, payload))
	}

	return nil
}

// MarkPickedUp moves an Assigned load to PickedUp.
func (l *Load) MarkPickedUp() error {
	next, err := l.status.PickUp()
	if err != nil {
		return err
	}
	l.changeStatus(next)
	return nil
}

// MarkDelivered moves a PickedUp load to Delivered and records the delivery date.
func (l *Load) MarkDelivered(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("deliveryDate")
	}
	if at.Before(l.pickupDate) {
		return errs.NewValueIsInvalidErrorWithCause(
			"deliveryDate",
			fmt.Errorf("%s is before pickup date %s", at.Format(time.DateOnly), l.pickupDate.Format(time.DateOnly)),
		)
	}
	next, err := l.status.Deliver()
	if err != nil {
		return err
	}
	l.deliveryDate = &at
	l.changeStatus(next)
	return nil
}

// Cancel moves any non-terminal load to Cancelled. The transport unit reference is kept.
func (l *Load) Cancel() error {
	next, err := l.status.Cancel()
	if err != nil {
		return err
	}
	l.changeStatus(next)
	return nil
}

func (l *Load) changeStatus(next Status) {
	previous := l.status
	l.status = next
	l.Record(events.NewEvent(events.LoadStatusChanged, l.id, map[string]any{
		"jobId": l.jobID.String(),
		"from":  previous.String(),
		"to":    next.String(),
	}))
}

func sameUnit(a, b *kernel.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.IsEqual(*b)
}

func (l *Load) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Load) setJobID(jobID kernel.UUID) error {
	if err := jobID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("jobId", err)
	}
	l.jobID = jobID
	return nil
}

func (l *Load) setNumber(number Number) error {
	if err := number.Validate(); err != nil {
		return err
	}
	l.number = number
	return nil
}

func (l *Load) setTransportUnitID(unitID *kernel.UUID) error {
	if unitID != nil {
		if err := unitID.Validate(); err != nil {
			return err
		}
	}
	l.transportUnitID = unitID
	return nil
}

func (l *Load) setDescription(description string) error {
	v, err := kernel.RequiredText("description", description, DescriptionMaxLength)
	if err != nil {
		return err
	}
	l.description = v
	return nil
}

func (l *Load) setWeight(weight kernel.Weight) error {
	if err := weight.Validate(); err != nil {
		return err
	}
	if weight.Kg().GreaterThan(MaxWeightKg) {
		return errs.NewValueIsOutOfRangeError("weightKg", weight.String(), kernel.MinWeightKg.String(), MaxWeightKg.String())
	}
	l.weight = weight
	return nil
}

func (l *Load) setPickupDate(pickupDate time.Time) error {
	if pickupDate.IsZero() {
		return errs.NewValueIsRequiredError("pickupDate")
	}
	l.pickupDate = pickupDate
	return nil
}

func (l *Load) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	l.status = status
	return nil
}

func (l *Load) setVersion(version int) error {
	if version < 1 {
		return errs.NewVersionIsInvalidErrorWithCause("version")
	}
	l.version = version
	return nil
}
