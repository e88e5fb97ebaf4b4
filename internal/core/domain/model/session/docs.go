// Package session provides the worker identity model for the fulfillment
// simulator: the UserSession entity plus the Role and Availability enums.
//
// Key business rules:
//   - A session must have a valid identifier, a non-empty display name and a
//     valid worker role
//   - Availability is forced to busy while a session is active and restored
//     to available when it ends
//   - Single-active-session exclusivity is owned by the application-level
//     session manager, not by this package
package session
