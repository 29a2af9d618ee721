package queries

import (
	"errors"

	"eshift/internal/core/domain/model/identity"
	"eshift/internal/core/domain/model/kernel"
	"eshift/internal/pkg/guard"
)

var ErrListTransportUnitsQueryIsNotConstructed = errors.New(
	"ListTransportUnitsQuery must be created via NewListTransportUnitsQuery constructor",
)

type ListTransportUnitsQuery struct {
	guard guard.ConstructorGuard
}

func NewListTransportUnitsQuery(caller identity.Caller) (ListTransportUnitsQuery, error) {
	if err := caller.RequireRole(identity.RoleAdmin); err != nil {
		return ListTransportUnitsQuery{}, err
	}
	return ListTransportUnitsQuery{guard: guard.NewConstructorGuard()}, nil
}

func (q ListTransportUnitsQuery) Validate() error {
	return q.guard.Validate(ErrListTransportUnitsQueryIsNotConstructed)
}

// TransportUnitView is a transport unit with the resources it bundles.
// AssistantID and AssistantName are empty when the unit has no assistant.
type TransportUnitView struct {
	ID              kernel.UUID
	UnitNumber      string
	LorryID         kernel.UUID
	NumberPlate     string
	DriverID        kernel.UUID
	DriverName      string
	AssistantID     *kernel.UUID
	AssistantName   string
	ContainerID     kernel.UUID
	ContainerNumber string
	AssignedLoads   int
}
