package queries

import (
	"context"

	"launderly/internal/core/domain/model/kernel"
	"launderly/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPendingBypassOrdersQueryHandler reads orders awaiting an admin
// bypass decision, oldest raised first.
type GetPendingBypassOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingBypassOrdersQueryHandler creates a handler for the review list.
// Requires a GORM database connection for query execution.
func NewGetPendingBypassOrdersQueryHandler(db *gorm.DB) GetPendingBypassOrdersQueryHandler {
	return GetPendingBypassOrdersQueryHandler{db: db}
}

// Handle executes the query and returns one row per pending bypass.
func (h GetPendingBypassOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingBypassOrdersQuery,
) ([]PendingBypassOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			o.order_number,
			b.id,
			b.order_worker_id,
			b.note,
			b.created_at
		FROM orders o
		JOIN bypass_requests b ON b.order_id = o.id
		WHERE b.status = ?
		ORDER BY b.created_at
	`, int(order.BypassPending)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	responses := make([]PendingBypassOrderResponse, 0)
	for rows.Next() {
		var resp PendingBypassOrderResponse
		var orderID, bypassID, workerID uuid.UUID

		err = rows.Scan(
			&orderID,
			&resp.OrderNumber,
			&bypassID,
			&workerID,
			&resp.Note,
			&resp.RaisedAt,
		)
		if err != nil {
			return nil, err
		}

		if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if resp.BypassID, err = kernel.UUIDFromBytes(bypassID[:]); err != nil {
			return nil, err
		}
		if resp.OrderWorkerID, err = kernel.UUIDFromBytes(workerID[:]); err != nil {
			return nil, err
		}
		responses = append(responses, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return responses, nil
}
