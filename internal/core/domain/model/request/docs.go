// Package request provides domain entities and business logic for pickup and
// delivery errands in the laundry fulfillment system. It implements the Request
// aggregate root together with the status vocabulary that drives the
// driver-facing workflow.
//
// The package includes:
//   - Request: The aggregate root for a single physical movement of laundry
//     between a customer address and an outlet
//   - Kind: The closed set of errand kinds (pickup, delivery)
//   - Status: The closed set of errand statuses and the transition function
//     between them
//
// Key business rules:
//   - A pickup moves customer -> outlet: WAITING_FOR_DRIVER ->
//     ON_THE_WAY_TO_CUSTOMER -> ON_THE_WAY_TO_OUTLET -> RECEIVED_BY_OUTLET
//   - A delivery moves outlet -> customer: WAITING_FOR_DRIVER ->
//     ON_THE_WAY_TO_OUTLET -> ON_THE_WAY_TO_CUSTOMER -> RECEIVED_BY_CUSTOMER
//   - The two paths reuse the ON_THE_WAY_* literals in reversed order, so every
//     transition is keyed by (kind, status), never by status alone
//   - Advancing past a terminal status fails loudly with an invalid-transition
//     error instead of echoing the current status back
//   - Each successful advance bumps the aggregate version; mutations against a
//     stale version are rejected with a version conflict
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package request
