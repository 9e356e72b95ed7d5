package account

import (
	"fmt"

	"ordertrack/internal/pkg/errs"
)

// Role is a closed tagged variant describing what an authenticated user is
// allowed to do. Role is immutable after account creation; capability checks
// dispatch on it rather than repeating ad hoc conditionals per view.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleVendor may create orders and assign delivery partners.
	RoleVendor

	// RoleDeliveryPartner may start deliveries, report location, and mark
	// orders delivered.
	RoleDeliveryPartner

	// RoleCustomer may only observe the tracking view.
	RoleCustomer
)

// getRoleStrings returns wire/storage representations for all roles.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:         "unknown",
		RoleVendor:          "vendor",
		RoleDeliveryPartner: "delivery_partner",
		RoleCustomer:        "customer",
	}
}

// RoleFromString parses the wire representation of a role.
func RoleFromString(s string) (Role, error) {
	for role, str := range getRoleStrings() {
		if role != RoleUnknown && str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}

// Validate checks that the Role is one of the three defined variants.
func (r Role) Validate() error {
	if r != RoleVendor && r != RoleDeliveryPartner && r != RoleCustomer {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire representation. Implements fmt.Stringer.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
