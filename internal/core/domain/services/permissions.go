package services

import (
	"ordertrack/internal/core/domain/model/account"
	"ordertrack/internal/pkg/errs"
)

// Capability names an operation a caller may be allowed to perform.
type Capability int

const (
	// CapabilityUnknown is the zero value and is never granted.
	CapabilityUnknown Capability = iota

	// CapabilityCreateOrder allows creating new orders.
	CapabilityCreateOrder

	// CapabilityAssignPartner allows assigning a delivery partner to an order.
	CapabilityAssignPartner

	// CapabilityReportDelivery allows starting a delivery, streaming location
	// samples and marking an order delivered.
	CapabilityReportDelivery

	// CapabilityViewVendorOrders allows listing the orders a vendor created.
	CapabilityViewVendorOrders

	// CapabilityViewPartnerOrders allows listing the orders assigned to a partner.
	CapabilityViewPartnerOrders

	// CapabilityTrackOrder allows reading a single order's tracking snapshot.
	CapabilityTrackOrder
)

func getCapabilityStrings() map[Capability]string {
	return map[Capability]string{
		CapabilityUnknown:           "unknown",
		CapabilityCreateOrder:       "create order",
		CapabilityAssignPartner:     "assign partner",
		CapabilityReportDelivery:    "report delivery",
		CapabilityViewVendorOrders:  "view vendor orders",
		CapabilityViewPartnerOrders: "view partner orders",
		CapabilityTrackOrder:        "track order",
	}
}

// String returns the human readable name of the capability.
func (c Capability) String() string {
	if name, ok := getCapabilityStrings()[c]; ok {
		return name
	}
	return getCapabilityStrings()[CapabilityUnknown]
}

// PermissionChecker is a domain service that decides which capabilities each
// account role holds. Vendors manage orders they created, delivery partners
// act on orders assigned to them, and customers may only track.
//
// Ownership checks (whether THIS vendor owns THIS order) live on the order
// aggregate itself. PermissionChecker only answers the coarser question of
// whether the role may attempt the operation at all.
type PermissionChecker struct{}

// NewPermissionChecker creates a new PermissionChecker instance.
func NewPermissionChecker() PermissionChecker {
	return PermissionChecker{}
}

func getRoleCapabilities() map[account.Role][]Capability {
	return map[account.Role][]Capability{
		account.RoleVendor: {
			CapabilityCreateOrder,
			CapabilityAssignPartner,
			CapabilityViewVendorOrders,
			CapabilityTrackOrder,
		},
		account.RoleDeliveryPartner: {
			CapabilityReportDelivery,
			CapabilityViewPartnerOrders,
			CapabilityTrackOrder,
		},
		account.RoleCustomer: {
			CapabilityTrackOrder,
		},
	}
}

// Allows reports whether the given role holds the given capability.
func (p PermissionChecker) Allows(role account.Role, capability Capability) bool {
	for _, c := range getRoleCapabilities()[role] {
		if c == capability {
			return true
		}
	}
	return false
}

// Check validates that the role holds the capability and returns a
// NotAuthorizedError naming the actor when it does not.
func (p PermissionChecker) Check(role account.Role, capability Capability, actor string) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if !p.Allows(role, capability) {
		return errs.NewNotAuthorizedError(capability.String(), actor)
	}
	return nil
}
