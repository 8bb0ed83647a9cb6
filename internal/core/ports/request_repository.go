package ports

import (
	"context"

	"launderly/internal/core/domain/model/kernel"
	"launderly/internal/core/domain/model/request"
)

// RequestRepository defines the persistence contract for pickup/delivery
// errand aggregates.
type RequestRepository interface {
	// Add persists a new request aggregate to storage.
	Add(ctx context.Context, aggregate *request.Request) error

	// Update persists changes to an existing request aggregate.
	// The write is guarded by the aggregate's previous version: updating from
	// a stale observation affects no rows and fails.
	Update(ctx context.Context, aggregate *request.Request) error

	// Get retrieves a request aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*request.Request, error)
}
