// Package order provides domain entities and business logic for order
// management in the fulfillment system. It implements the Order aggregate
// root with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, line items and lifecycle
//   - LineItem: One ordered product line with quantity, price and shelf location
//   - Status: A state machine that enforces the fixed fulfillment sequence
//
// Key business rules:
//   - Orders must have a valid identifier, a non-empty customer and at least one item
//   - Order status follows the fixed forward-only workflow:
//     pending -> intake_review -> picked -> packed -> shipped
//   - Every transition must target the immediate successor; no skipping, no regression
//   - Totals are computed at creation and immutable thereafter
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
