// Package kernel provides core domain primitives and utilities for the
// fulfillment system. It implements fundamental building blocks following
// Domain-Driven Design principles that are used throughout the domain model.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - ShelfLocation: A value object representing a validated warehouse storage location code
//
// Both types are immutable value objects whose zero values are invalid; they
// must be created through their constructor functions.
package kernel
