package order

import (
	"errors"
	"fmt"
	"time"

	"launderly/internal/core/domain/model/kernel"
	"launderly/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrProcessingBlocked is returned by Process when at least one item count
	// mismatches and no approved bypass exists. The only legal forward action
	// in that state is raising (or waiting on) a bypass.
	ErrProcessingBlocked = errors.New("order has count mismatches and no approved bypass")

	// ErrBypassNotAllowed is returned by RaiseBypass when every item count
	// matches; a fully reconciled order is processed, never bypassed.
	ErrBypassNotAllowed = errors.New("bypass can only be raised when counts mismatch")

	// ErrBypassAlreadyOpen is returned by RaiseBypass when a pending bypass
	// already exists for the order.
	ErrBypassAlreadyOpen = errors.New("order already has a pending bypass request")

	// ErrNoOpenBypass is returned by ResolveBypass when there is nothing to
	// resolve.
	ErrNoOpenBypass = errors.New("order has no pending bypass request")

	// ErrDeliveryAlreadyScheduled is returned by ScheduleDelivery when the
	// order already references a delivery errand.
	ErrDeliveryAlreadyScheduled = errors.New("order already has a delivery request")
)

// Order represents the laundry-processing unit created once a pickup errand
// reaches outlet custody. It is the aggregate root owning the line items, the
// reconciliation state and the bypass approval sub-flow.
//
// Order follows these invariants:
//   - Intake (items, weight, price) happens exactly once, from ArrivedAtOutlet
//   - Counts are only editable during the Pending (reconciliation) phase
//   - Process and RaiseBypass are mutually exclusive: matched orders process,
//     mismatched orders bypass
//   - At most one bypass request is open at any time; resolved requests are
//     kept as history
//   - One order references one pickup errand and, after completion, at most
//     one delivery errand
type Order struct {
	id                kernel.UUID
	orderNumber       string
	pickupRequestID   kernel.UUID
	deliveryRequestID *kernel.UUID
	status            Status
	weight            float64
	laundryPrice      float64
	items             []*OrderItem
	bypasses          []*BypassRequest
	createdAt         time.Time
	updatedAt         time.Time

	isConstructed bool
}

// NewOrder creates an order in ArrivedAtOutlet status with no items.
// It is called when the pickup errand terminally reaches the outlet.
func NewOrder(id kernel.UUID, orderNumber string, pickupRequestID kernel.UUID) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:        ArrivedAtOutlet,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOrderNumber(orderNumber),
		o.setPickupRequestID(pickupRequestID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence, including items and
// bypass history. Items and bypasses must themselves be constructed entities.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	pickupRequestID kernel.UUID,
	deliveryRequestID *kernel.UUID,
	status Status,
	weight float64,
	laundryPrice float64,
	items []*OrderItem,
	bypasses []*BypassRequest,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	o, err := NewOrder(id, orderNumber, pickupRequestID)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	for _, item := range items {
		if err = item.Validate(); err != nil {
			return nil, err
		}
	}
	for _, b := range bypasses {
		if err = b.Validate(); err != nil {
			return nil, err
		}
	}

	if deliveryRequestID != nil {
		if err = deliveryRequestID.Validate(); err != nil {
			return nil, err
		}
	}

	o.status = status
	o.weight = weight
	o.laundryPrice = laundryPrice
	o.items = items
	o.bypasses = bypasses
	o.deliveryRequestID = deliveryRequestID
	o.createdAt = createdAt
	o.updatedAt = updatedAt

	return o, nil
}

// Validate ensures the Order was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-facing order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// PickupRequestID returns the pickup errand that brought the laundry in.
func (o *Order) PickupRequestID() kernel.UUID {
	return o.pickupRequestID
}

// DeliveryRequestID returns the delivery errand returning the laundry,
// or nil if none has been scheduled yet.
func (o *Order) DeliveryRequestID() *kernel.UUID {
	return o.deliveryRequestID
}

// Status returns the current order status.
func (o *Order) Status() Status {
	return o.status
}

// Weight returns the laundry weight in kilograms recorded at intake.
func (o *Order) Weight() float64 {
	return o.weight
}

// LaundryPrice returns the price quoted at intake.
func (o *Order) LaundryPrice() float64 {
	return o.laundryPrice
}

// Items returns the order's line items in intake order.
// The returned slice is shared with the aggregate; treat it as read-only and
// mutate counts through SetItemCount.
func (o *Order) Items() []*OrderItem {
	return o.items
}

// Bypasses returns the full bypass history, oldest first.
func (o *Order) Bypasses() []*BypassRequest {
	return o.bypasses
}

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order last changed.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Intake attaches the declared line items, weight and price, moving the order
// from ArrivedAtOutlet to Pending. At least one item is required; the weight
// must be positive and the price non-negative.
func (o *Order) Intake(items []*OrderItem, weight float64, laundryPrice float64) error {
	newStatus, err := o.status.Intake()
	if err != nil {
		return err
	}

	if len(items) == 0 {
		return errs.NewValueIsRequiredError("orderItems")
	}
	for _, item := range items {
		if err = item.Validate(); err != nil {
			return err
		}
	}
	if weight <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("weight",
			fmt.Errorf("%v is not greater than 0", weight))
	}
	if laundryPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("laundryPrice",
			fmt.Errorf("%v is negative", laundryPrice))
	}

	o.items = items
	o.weight = weight
	o.laundryPrice = laundryPrice
	o.status = newStatus
	o.touch()
	return nil
}

// SetItemCount records a worker's physical count for one line item.
// Counts are only editable during the Pending phase.
func (o *Order) SetItemCount(orderItemID kernel.UUID, qty int) error {
	if o.status != Pending {
		return errs.NewValueIsInvalidErrorWithCause("orderStatus",
			fmt.Errorf("%s is not a valid status to count items", o.status.String()))
	}

	for _, item := range o.items {
		if item.ID().IsEqual(orderItemID) {
			if err := item.SetCounted(qty); err != nil {
				return err
			}
			o.touch()
			return nil
		}
	}

	return errs.NewObjectNotFoundError("orderItem", orderItemID.String())
}

// AllItemsMatch reports whether every line item's counted quantity equals its
// declared quantity. Vacuously true for an order with no items.
func (o *Order) AllItemsMatch() bool {
	for _, item := range o.items {
		if !item.Matches() {
			return false
		}
	}
	return true
}

// OpenBypass returns the pending bypass request, or nil if none is open.
func (o *Order) OpenBypass() *BypassRequest {
	for _, b := range o.bypasses {
		if b.IsOpen() {
			return b
		}
	}
	return nil
}

// HasApprovedBypass reports whether an admin has approved a bypass for this
// order.
func (o *Order) HasApprovedBypass() bool {
	for _, b := range o.bypasses {
		if b.Status() == BypassApproved {
			return true
		}
	}
	return false
}

// RaiseBypass raises an exception-approval request for a mismatched order.
//
// Business rules:
//   - Only during the Pending (reconciliation) phase
//   - Only when at least one count mismatches (ErrBypassNotAllowed otherwise)
//   - Only one open bypass at a time (ErrBypassAlreadyOpen)
//   - The note must be non-empty after trimming
func (o *Order) RaiseBypass(id kernel.UUID, orderWorkerID kernel.UUID, note string) error {
	if o.status != Pending {
		return errs.NewValueIsInvalidErrorWithCause("orderStatus",
			fmt.Errorf("%s is not a valid status to raise a bypass", o.status.String()))
	}
	if o.AllItemsMatch() {
		return ErrBypassNotAllowed
	}
	if o.OpenBypass() != nil {
		return ErrBypassAlreadyOpen
	}

	bypass, err := NewBypassRequest(id, orderWorkerID, note)
	if err != nil {
		return err
	}

	o.bypasses = append(o.bypasses, bypass)
	o.touch()
	return nil
}

// ResolveBypass records the admin decision on the open bypass request.
// Returns ErrNoOpenBypass when nothing is pending.
func (o *Order) ResolveBypass(approve bool) error {
	bypass := o.OpenBypass()
	if bypass == nil {
		return ErrNoOpenBypass
	}

	var err error
	if approve {
		err = bypass.Approve()
	} else {
		err = bypass.Reject()
	}
	if err != nil {
		return err
	}

	o.touch()
	return nil
}

// Process moves the order from Pending to Processing.
//
// The hard mutual-exclusion invariant of reconciliation: processing is allowed
// if and only if every count matches, or an admin approved a bypass. A pending
// or rejected bypass does not unblock it (ErrProcessingBlocked).
func (o *Order) Process() error {
	newStatus, err := o.status.Process()
	if err != nil {
		return err
	}

	if !o.AllItemsMatch() && !o.HasApprovedBypass() {
		return ErrProcessingBlocked
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Complete marks the laundry as processed and ready for delivery.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Cancel abandons an order that has not started processing.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// ScheduleDelivery links the delivery errand returning the laundry to the
// customer. Only completed orders can schedule a delivery, and only once.
func (o *Order) ScheduleDelivery(deliveryRequestID kernel.UUID) error {
	if o.status != Completed {
		return errs.NewValueIsInvalidErrorWithCause("orderStatus",
			fmt.Errorf("%s is not a valid status to schedule delivery", o.status.String()))
	}
	if o.deliveryRequestID != nil {
		return ErrDeliveryAlreadyScheduled
	}
	if err := deliveryRequestID.Validate(); err != nil {
		return err
	}

	o.deliveryRequestID = &deliveryRequestID
	o.touch()
	return nil
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setPickupRequestID(pickupRequestID kernel.UUID) error {
	if err := pickupRequestID.Validate(); err != nil {
		return err
	}
	o.pickupRequestID = pickupRequestID
	return nil
}
