// Package intake models incoming merchandise receipts tracked at the intake
// station: product, quantity, supplier and shelf location moving through
// received -> verified -> stocked.
//
// The receipt flow is informational and entirely independent of customer
// orders; it never gates an order's status transitions.
package intake
