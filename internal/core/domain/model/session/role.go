package session

import (
	"fmt"

	"atlas/internal/pkg/errs"
)

// Role is the worker capability class that gates which commands a session may
// issue. Every station command checks the active session's role inside the
// core, so the gate holds regardless of the caller.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleCustomer places orders through the online storefront.
	RoleCustomer

	// RoleIntakeOperator processes pending orders and receives merchandise
	// at the intake station.
	RoleIntakeOperator

	// RolePicker works intake-reviewed orders at the picking station.
	RolePicker

	// RolePacker works picked orders at the packing station.
	RolePacker

	// RoleDriver delivers packed orders.
	RoleDriver
)

// getRoleStrings returns a map of Role values to their string representations.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:        "unknown",
		RoleCustomer:       "customer",
		RoleIntakeOperator: "intake_operator",
		RolePicker:         "picker",
		RolePacker:         "packer",
		RoleDriver:         "driver",
	}
}

// getValidRoleStrings returns a map of only valid Role values.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleCustomer:       "customer",
		RoleIntakeOperator: "intake_operator",
		RolePicker:         "picker",
		RolePacker:         "packer",
		RoleDriver:         "driver",
	}
}

// Validate checks if the Role value is valid.
// Valid roles are: customer, intake_operator, picker, packer, driver.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the snake_case name of the role.
// Implements the fmt.Stringer interface and is safe to call on any Role
// value, including invalid ones.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
