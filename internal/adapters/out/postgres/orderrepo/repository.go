package orderrepo

import (
	"context"
	"errors"

	"launderly/internal/core/domain/model/kernel"
	"launderly/internal/core/domain/model/order"
	"launderly/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// Items load in intake declaration order, bypasses in the order raised.
func orderedItems(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}

func orderedBypasses(db *gorm.DB) *gorm.DB {
	return db.Order("created_at")
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order to the database.
// Child rows follow the aggregate's current state.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Use Session with FullSaveAssociations to properly update nested associations
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order by ID with items and bypass history loaded.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).
		Preload("Items", orderedItems).
		Preload("Bypasses", orderedBypasses).
		First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByPickupRequestID retrieves the order created for a pickup errand.
func (r *GormOrderRepository) GetByPickupRequestID(
	ctx context.Context,
	pickupRequestID kernel.UUID,
) (*order.Order, error) {
	if err := pickupRequestID.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).
		Preload("Items", orderedItems).
		Preload("Bypasses", orderedBypasses).
		First(&dto, "pickup_request_id = ?", pickupRequestID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pickupRequestId", pickupRequestID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllCompletedWithoutDelivery retrieves completed orders that have no
// delivery errand scheduled yet.
func (r *GormOrderRepository) GetAllCompletedWithoutDelivery(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Preload("Items", orderedItems).
		Preload("Bypasses", orderedBypasses).
		Find(&dtos, "status = ? AND delivery_request_id IS NULL", int(order.Completed)).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}
