package queries

import (
	"errors"
	"time"

	"launderly/internal/core/domain/model/kernel"
	"launderly/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves a single order with its line items and the
// per-item match state.
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for one order's detail view.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	q := GetOrderQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	q.orderID = orderID

	return q, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the requested order.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderItemResponse is one line item with its count reconciliation state.
type OrderItemResponse struct {
	ID          kernel.UUID
	ItemName    string
	ExpectedQty int
	CountedQty  int
	Matches     bool
}

// BypassResponse is the most recent bypass raised on the order. Callers use
// it to hide the raise action while a bypass is pending and to show the
// admin's decision once resolved.
type BypassResponse struct {
	ID       kernel.UUID
	Status   string
	Note     string
	RaisedAt time.Time
}

// GetOrderQueryResponse is the order detail view. Bypass is nil when no
// bypass was ever raised on the order.
type GetOrderQueryResponse struct {
	ID           kernel.UUID
	OrderNumber  string
	Status       string
	Weight       float64
	LaundryPrice float64
	AllMatch     bool
	Items        []OrderItemResponse
	Bypass       *BypassResponse
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
