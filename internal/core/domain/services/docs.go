// Package services provides domain services that orchestrate business
// operations across the laundry fulfillment domain. It implements logic that
// does not naturally belong to a single aggregate root.
//
// The package includes:
//   - Reconciler: A domain service comparing worker-counted quantities against
//     the quantities declared at order intake
//
// Domain services are pure: they hold no state and produce the same result for
// the same input, which keeps them trivially testable in isolation.
package services
