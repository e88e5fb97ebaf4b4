// Package services contains domain services that implement business logic
// spanning more than one aggregate, such as recommending a handling tool for
// an order's load.
package services
