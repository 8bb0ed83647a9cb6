// Package order provides domain entities and business logic for laundry order
// management. It implements the Order aggregate root covering intake at the
// outlet, quantity reconciliation by a worker, the bypass approval sub-flow,
// and processing through to completion.
//
// The package includes:
//   - Order: The aggregate root created once a pickup reaches outlet custody
//   - OrderItem: A line item with a declared and a physically counted quantity
//   - BypassRequest: An exception-approval record raised when counts mismatch
//   - Status: A state machine for the coarse outlet/worker-facing order lifecycle
//
// Key business rules:
//   - An order starts in ArrivedAtOutlet; intake (items, weight, price) is only
//     possible from that status and moves the order to Pending
//   - Counted quantities default to zero; a zero count against a positive
//     expectation is a mismatch, not an unanswered field
//   - Processing and bypass are mutually exclusive: a fully matched order may
//     be processed, a mismatched order may only raise a bypass
//   - At most one bypass request may be open per order; an approved bypass
//     unblocks processing, a rejected one does not
package order
