package services

import (
	"launderly/internal/core/domain/model/order"
)

// ReconciliationResult is the outcome of comparing physical counts against
// declared quantities for one order.
//
// AllMatch is true iff every item's counted quantity strictly equals its
// expected quantity. Mismatches holds exactly the unequal items, preserving
// their original order; it is empty when AllMatch is true.
type ReconciliationResult struct {
	AllMatch   bool
	Mismatches []*order.OrderItem
}

// Reconciler is the domain service deciding whether an order's physical count
// matches its declared line items.
//
// The decision drives a hard mutual exclusion in the worker workflow: a fully
// matched order may be processed, a mismatched order may only fork into the
// bypass approval sub-flow. Never both, never neither.
//
// Example usage:
//
//	reconciler := services.NewReconciler()
//	result := reconciler.Reconcile(order.Items())
//	if result.AllMatch {
//	    // offer "Process Order"
//	} else {
//	    // offer "Request Bypass", list result.Mismatches
//	}
type Reconciler struct{}

// NewReconciler creates a new Reconciler instance.
func NewReconciler() Reconciler {
	return Reconciler{}
}

// Reconcile compares every item's counted quantity against its expected
// quantity using strict equality.
//
// Properties:
//   - An empty item list matches vacuously (AllMatch true, no mismatches)
//   - A count left at its initial zero against a positive expectation is a
//     mismatch, not an unanswered field
//   - Pure and idempotent: the same unchanged items yield the same result
func (r Reconciler) Reconcile(items []*order.OrderItem) ReconciliationResult {
	mismatches := make([]*order.OrderItem, 0)
	for _, item := range items {
		if !item.Matches() {
			mismatches = append(mismatches, item)
		}
	}

	return ReconciliationResult{
		AllMatch:   len(mismatches) == 0,
		Mismatches: mismatches,
	}
}
