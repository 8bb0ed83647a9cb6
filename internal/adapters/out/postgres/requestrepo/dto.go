// Package requestrepo provides data transfer objects and mapping functions for
// errand persistence. It implements the repository pattern for the request
// aggregate, converting between domain entities and database rows.
package requestrepo

import (
	"time"

	"launderly/internal/core/domain/model/kernel"
	"launderly/internal/core/domain/model/request"

	"github.com/google/uuid"
)

// RequestDTO represents the database structure for persisting errand aggregates.
// The version column backs the optimistic concurrency guard on updates.
type RequestDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Kind         int       `gorm:"type:int;not null;index"`
	Status       int       `gorm:"type:int;not null"`
	CustomerName string    `gorm:"type:varchar(255);not null"`
	AddressLine  string    `gorm:"type:varchar(255);not null"`
	DistanceKm   float64   `gorm:"type:double precision;not null"`
	Version      int       `gorm:"type:int;not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the database table name for errand entities.
// Overrides GORM's default naming convention to use "requests".
func (RequestDTO) TableName() string {
	return "requests"
}

// fromDomain converts an errand aggregate to its database representation.
func fromDomain(aggregate *request.Request) RequestDTO {
	return RequestDTO{
		ID:           aggregate.ID().Bytes(),
		Kind:         int(aggregate.Kind()),
		Status:       int(aggregate.Status()),
		CustomerName: aggregate.CustomerName(),
		AddressLine:  aggregate.Address().Line(),
		DistanceKm:   aggregate.Address().DistanceKm(),
		Version:      aggregate.Version(),
		CreatedAt:    aggregate.CreatedAt(),
		UpdatedAt:    aggregate.UpdatedAt(),
	}
}

// toDomain converts a database row to an errand aggregate using RestoreRequest.
func toDomain(dto RequestDTO) (*request.Request, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	address, err := kernel.NewAddress(dto.AddressLine, dto.DistanceKm)
	if err != nil {
		return nil, err
	}

	return request.RestoreRequest(
		id,
		request.Kind(dto.Kind),
		request.Status(dto.Status),
		dto.CustomerName,
		address,
		dto.Version,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
