package load

import (
	"fmt"
	"strings"

	"eshift/internal/pkg/errs"
)

// Status represents the lifecycle state of a load.
//
// State transitions:
//
//	           assign unit
//	Pending ◄──────────────► Assigned ──► PickedUp ──► Delivered
//	   │      clear unit        │            │
//	   └────────────────────────┴────────────┴──────► Cancelled
//
// Only Pending ⇄ Assigned is driven by transport unit assignment. PickedUp, Delivered and
// Cancelled are set by explicit progress operations. Delivered and Cancelled are terminal:
// assignment changes never move a load out of them.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// Pending is the initial status; no transport unit is bound.
	Pending

	// Assigned means a transport unit is bound to the load.
	Assigned

	// PickedUp means the assigned unit has collected the load.
	PickedUp

	// Delivered is terminal.
	Delivered

	// Cancelled is terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Assigned:  "Assigned",
		PickedUp:  "PickedUp",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "Pending",
		Assigned:  "Assigned",
		PickedUp:  "PickedUp",
		Delivered: "Delivered",
		Cancelled: "Cancelled",
	}
}

// ParseStatus maps a case-insensitive status name to a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if strings.EqualFold(name, s) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid load status", s))
}

// Validate checks if the Status value is one of the defined states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsTerminal reports whether the load has reached Delivered or Cancelled.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// AfterUnitAssigned returns the status a load takes when a transport unit is bound to it:
// Assigned, unless the load is terminal, in which case it keeps its status.
func (s Status) AfterUnitAssigned() Status {
	if s.IsTerminal() {
		return s
	}
	return Assigned
}

// AfterUnitCleared returns the status a load takes when its transport unit is removed:
// Pending, unless the load is terminal, in which case it keeps its status.
func (s Status) AfterUnitCleared() Status {
	if s.IsTerminal() {
		return s
	}
	return Pending
}

// PickUp transitions Assigned -> PickedUp.
func (s Status) PickUp() (Status, error) {
	if s != Assigned {
		return 0, errs.NewPreconditionFailedErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to pick up", s.String()),
		)
	}
	return PickedUp, nil
}

// Deliver transitions PickedUp -> Delivered.
func (s Status) Deliver() (Status, error) {
	if s != PickedUp {
		return 0, errs.NewPreconditionFailedErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}
	return Delivered, nil
}

// Cancel transitions any non-terminal status to Cancelled.
func (s Status) Cancel() (Status, error) {
	if s.IsTerminal() || s.Validate() != nil {
		return 0, errs.NewPreconditionFailedErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}
	return Cancelled, nil
}
