package ports

import (
	"context"

	"launderly/internal/core/domain/model/kernel"
	"launderly/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates,
// including their line items and bypass history.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// Child rows (items, bypasses) are replaced wholesale with the
	// aggregate's current state.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier,
	// with items and bypass history loaded.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByPickupRequestID retrieves the order created for a pickup errand.
	GetByPickupRequestID(ctx context.Context, pickupRequestID kernel.UUID) (*order.Order, error)

	// GetAllCompletedWithoutDelivery retrieves completed orders that have no
	// delivery errand scheduled yet. Used by the delivery scheduling job.
	GetAllCompletedWithoutDelivery(ctx context.Context) ([]*order.Order, error)
}
