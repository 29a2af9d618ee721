package job

import (
	"fmt"
	"strings"

	"eshift/internal/pkg/errs"
)

// Status represents the lifecycle state of a job.
//
// State transitions:
//
//	InProgress ──┬──> Completed
//	             └──> Cancelled
//
// Completed and Cancelled are terminal.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	Unknown Status = iota

	// InProgress is the initial status of a requested job. Only InProgress jobs are editable.
	InProgress

	// Completed is terminal.
	Completed

	// Cancelled is terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		InProgress: "InProgress",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		InProgress: "InProgress",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

// ParseStatus maps a case-insensitive status name to a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if strings.EqualFold(name, s) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid job status", s))
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

func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// ValidateEditable rejects edits to a job that has left InProgress.
func (s Status) ValidateEditable() error {
	if s != InProgress {
		return errs.NewPreconditionFailedErrorWithCause(
			"status",
			fmt.Errorf("a %s job can no longer be edited", s.String()),
		)
	}
	return nil
}

// Complete transitions InProgress to Completed. The load guard lives on Job.Complete.
func (s Status) Complete() (Status, error) {
	if s != InProgress {
		return 0, errs.NewPreconditionFailedErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to complete", s.String()),
		)
	}
	return Completed, nil
}

// Cancel transitions InProgress to Cancelled.
func (s Status) Cancel() (Status, error) {
	if s != InProgress {
		return 0, errs.NewPreconditionFailedErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}
	return Cancelled, nil
}
