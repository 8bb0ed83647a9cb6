package queries

import (
	"context"
	"database/sql"
	"errors"

	"launderly/internal/core/domain/model/kernel"
	"launderly/internal/core/domain/model/order"
	"launderly/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads the order detail view: the order row, its line
// items with per-item match state, and the latest bypass when one exists.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order detail queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the detail query.
// Returns errs.ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var resp GetOrderQueryResponse
	var id uuid.UUID
	var status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			status,
			weight,
			laundry_price,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(
		&id,
		&resp.OrderNumber,
		&status,
		&resp.Weight,
		&resp.LaundryPrice,
		&resp.CreatedAt,
		&resp.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("orderId", query.OrderID().String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	resp.Status = order.Status(status).String()

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			item_name,
			expected_qty,
			counted_qty
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return GetOrderQueryResponse{}, err
	}
	defer rows.Close()

	resp.AllMatch = true
	resp.Items = make([]OrderItemResponse, 0)
	for rows.Next() {
		var item OrderItemResponse
		var itemID uuid.UUID

		err = rows.Scan(
			&itemID,
			&item.ItemName,
			&item.ExpectedQty,
			&item.CountedQty,
		)
		if err != nil {
			return GetOrderQueryResponse{}, err
		}

		if item.ID, err = kernel.UUIDFromBytes(itemID[:]); err != nil {
			return GetOrderQueryResponse{}, err
		}
		item.Matches = item.CountedQty == item.ExpectedQty
		if !item.Matches {
			resp.AllMatch = false
		}
		resp.Items = append(resp.Items, item)
	}

	if err = rows.Err(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	if resp.Bypass, err = h.latestBypass(ctx, query.OrderID()); err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

// latestBypass reads the most recently raised bypass for the order.
// Returns nil when the order has no bypass history.
func (h GetOrderQueryHandler) latestBypass(
	ctx context.Context,
	orderID kernel.UUID,
) (*BypassResponse, error) {
	var bypass BypassResponse
	var bypassID uuid.UUID
	var status int

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			status,
			note,
			created_at
		FROM bypass_requests
		WHERE order_id = ?
		ORDER BY created_at DESC
		LIMIT 1
	`, orderID.Bytes()).Row()

	err := row.Scan(
		&bypassID,
		&status,
		&bypass.Note,
		&bypass.RaisedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if bypass.ID, err = kernel.UUIDFromBytes(bypassID[:]); err != nil {
		return nil, err
	}
	bypass.Status = order.BypassStatus(status).String()

	return &bypass, nil
}
