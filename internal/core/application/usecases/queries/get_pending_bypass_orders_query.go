package queries

import (
	"errors"
	"time"

	"launderly/internal/core/domain/model/kernel"
	"launderly/internal/pkg/guard"
)

var ErrGetPendingBypassOrdersQueryIsNotConstructed = errors.New(
	"GetPendingBypassOrdersQuery must be created via NewGetPendingBypassOrdersQuery constructor",
)

// GetPendingBypassOrdersQuery retrieves the admin review list: every order
// with a bypass request still awaiting a decision.
//
// Example:
//
//	query := NewGetPendingBypassOrdersQuery()
//	handler := NewGetPendingBypassOrdersQueryHandler(db)
//	rows, err := handler.Handle(ctx, query)
type GetPendingBypassOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingBypassOrdersQuery creates a query for the admin review list.
// This is a parameterless query that fetches all orders with an open bypass.
func NewGetPendingBypassOrdersQuery() GetPendingBypassOrdersQuery {
	return GetPendingBypassOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingBypassOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingBypassOrdersQueryIsNotConstructed)
}

// PendingBypassOrderResponse is one review row: the order and its open bypass.
type PendingBypassOrderResponse struct {
	OrderID       kernel.UUID
	OrderNumber   string
	BypassID      kernel.UUID
	OrderWorkerID kernel.UUID
	Note          string
	RaisedAt      time.Time
}
