package fleet

import (
	"errors"

	"eshift/internal/core/domain/model/kernel"
	"eshift/internal/pkg/errs"
	"eshift/internal/pkg/guard"
)

const UnitNumberMaxLength = 50

var ErrTransportUnitIsNotConstructed = errors.New("TransportUnit must be created via NewTransportUnit constructor")

// TransportUnit bundles one lorry, one driver, one container and an optional assistant.
// Loads reference a transport unit by id; the unit itself does not track them.
type TransportUnit struct {
	id          kernel.UUID
	unitNumber  string
	lorryID     kernel.UUID
	driverID    kernel.UUID
	assistantID *kernel.UUID
	containerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewTransportUnit validates the unit number and resource references. Existence of the
// referenced resources is checked by the caller against storage.
func NewTransportUnit(
	id kernel.UUID,
	unitNumber string,
	lorryID, driverID kernel.UUID,
	assistantID *kernel.UUID,
	containerID kernel.UUID,
) (*TransportUnit, error) {
	u := &TransportUnit{guard: guard.NewConstructorGuard()}

	number, numberErr := kernel.RequiredText("unitNumber", unitNumber, UnitNumberMaxLength)
	if err := errors.Join(
		id.Validate(),
		numberErr,
		required("lorryId", lorryID),
		required("driverId", driverID),
		u.setAssistantID(assistantID),
		required("containerId", containerID),
	); err != nil {
		return nil, err
	}

	u.id = id
	u.unitNumber = number
	u.lorryID = lorryID
	u.driverID = driverID
	u.containerID = containerID
	return u, nil
}

func (u *TransportUnit) Validate() error {
	if u == nil {
		return ErrTransportUnitIsNotConstructed
	}
	return u.guard.Validate(ErrTransportUnitIsNotConstructed)
}

func (u *TransportUnit) ID() kernel.UUID {
	return u.id
}

func (u *TransportUnit) UnitNumber() string {
	return u.unitNumber
}

func (u *TransportUnit) LorryID() kernel.UUID {
	return u.lorryID
}

func (u *TransportUnit) DriverID() kernel.UUID {
	return u.driverID
}

// AssistantID is nil when the unit runs without an assistant.
func (u *TransportUnit) AssistantID() *kernel.UUID {
	return u.assistantID
}

func (u *TransportUnit) ContainerID() kernel.UUID {
	return u.containerID
}

func (u *TransportUnit) setAssistantID(id *kernel.UUID) error {
	if id == nil {
		return nil
	}
	if err := id.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("assistantId", err)
	}
	v := *id
	u.assistantID = &v
	return nil
}

func required(paramName string, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause(paramName, err)
	}
	return nil
}
