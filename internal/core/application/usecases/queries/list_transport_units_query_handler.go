package queries

import (
	"context"
	"errors"

	"eshift/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListTransportUnitsQueryHandler struct {
	db *gorm.DB
}

func NewListTransportUnitsQueryHandler(db *gorm.DB) ListTransportUnitsQueryHandler {
	return ListTransportUnitsQueryHandler{db: db}
}

type transportUnitRow struct {
	ID              uuid.UUID
	UnitNumber      string
	LorryID         uuid.UUID
	NumberPlate     string
	DriverID        uuid.UUID
	DriverName      string
	AssistantID     *uuid.UUID
	AssistantName   *string
	ContainerID     uuid.UUID
	ContainerNumber string
	AssignedLoads   int
}

// Handle lists every unit ordered by unit number.
func (h ListTransportUnitsQueryHandler) Handle(
	ctx context.Context,
	query ListTransportUnitsQuery,
) ([]TransportUnitView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []transportUnitRow
	err := h.db.WithContext(ctx).
		Table("transport_units").
		Select(`transport_units.id, transport_units.unit_number,
			lorries.id AS lorry_id, lorries.number_plate,
			drivers.id AS driver_id, drivers.name AS driver_name,
			assistants.id AS assistant_id, assistants.name AS assistant_name,
			containers.id AS container_id, containers.container_number,
			(SELECT COUNT(*) FROM loads WHERE loads.transport_unit_id = transport_units.id) AS assigned_loads`).
		Joins("JOIN lorries ON lorries.id = transport_units.lorry_id").
		Joins("JOIN drivers ON drivers.id = transport_units.driver_id").
		Joins("LEFT JOIN assistants ON assistants.id = transport_units.assistant_id").
		Joins("JOIN containers ON containers.id = transport_units.container_id").
		Order("transport_units.unit_number, transport_units.id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]TransportUnitView, 0, len(rows))
	for _, r := range rows {
		v, convErr := r.toView()
		if convErr != nil {
			return nil, convErr
		}
		out = append(out, v)
	}

	return out, nil
}

func (r transportUnitRow) toView() (TransportUnitView, error) {
	id, idErr := kernel.UUIDFromBytes(r.ID[:])
	lorryID, lorryErr := kernel.UUIDFromBytes(r.LorryID[:])
	driverID, driverErr := kernel.UUIDFromBytes(r.DriverID[:])
	containerID, containerErr := kernel.UUIDFromBytes(r.ContainerID[:])
	assistantID, assistantErr := kernel.UUIDFromNullable(r.AssistantID)
	if err := errors.Join(idErr, lorryErr, driverErr, containerErr, assistantErr); err != nil {
		return TransportUnitView{}, err
	}

	v := TransportUnitView{
		ID:              id,
		UnitNumber:      r.UnitNumber,
		LorryID:         lorryID,
		NumberPlate:     r.NumberPlate,
		DriverID:        driverID,
		DriverName:      r.DriverName,
		AssistantID:     assistantID,
		ContainerID:     containerID,
		ContainerNumber: r.ContainerNumber,
		AssignedLoads:   r.AssignedLoads,
	}
	if r.AssistantName != nil {
		v.AssistantName = *r.AssistantName
	}
	return v, nil
}
