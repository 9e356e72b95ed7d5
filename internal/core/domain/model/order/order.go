package order

import (
	"errors"
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Operation names used in authorization failures.
const (
	opAssignPartner  = "assign partner"
	opStartDelivery  = "start delivery"
	opReportLocation = "report location"
	opMarkDelivered  = "mark delivered"
)

// Order represents a customer's delivery request tracked through a fixed
// status sequence. It is the aggregate root and the single authority over its
// own status and location: every mutation goes through a method that enforces
// role/ownership rules and the lifecycle state machine.
//
// Order maintains these invariants:
//   - the assigned partner id is set if and only if the order has left Pending,
//     and once set it is never cleared
//   - the last-known location is absent until the first accepted sample; once
//     present, latitude and longitude are always present together
//   - status transitions are monotonic along
//     Pending -> Assigned -> OutForDelivery -> Delivered
//   - an order is created with at least one item
//
// Location merges are last-write-wins: the aggregate does not compare sample
// timestamps, so a delayed older sample overwrites a newer one. Observers
// reconcile by updated-at and tolerate transient regressions.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// vendorID is the owning vendor's ID
	vendorID kernel.UUID

	// partnerID is the assigned delivery partner's ID (nil until assigned)
	partnerID *kernel.UUID

	// customerName identifies the customer the delivery is for
	customerName string

	// customerEmail is optional contact data (empty when not provided)
	customerEmail string

	// deliveryAddress is the destination street address
	deliveryAddress string

	// items holds the ordered lines in insertion order
	items []Item

	// status is the current state in the order lifecycle
	status Status

	// location is the last known partner position (nil until first sample)
	location *kernel.GeoPoint

	// createdAt and updatedAt track record timestamps
	createdAt time.Time
	updatedAt time.Time

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Pending order owned by the given vendor.
//
// Validation rules:
//   - id and vendorID must be valid UUIDs
//   - customerName and deliveryAddress must be non-empty
//   - items must contain at least one validated item
//
// customerEmail may be empty. The order starts in Pending status with no
// partner and no location; createdAt and updatedAt are both set to now.
func NewOrder(
	id kernel.UUID,
	vendorID kernel.UUID,
	customerName string,
	customerEmail string,
	deliveryAddress string,
	items []Item,
	now time.Time,
) (*Order, error) {
	order := &Order{
		customerEmail: customerEmail,
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setVendorID(vendorID),
		order.setCustomerName(customerName),
		order.setDeliveryAddress(deliveryAddress),
		order.setItems(items),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an order from persistence without applying
// creation-time rules. It still validates identifier integrity, the stored
// status, and the status/partner consistency invariant.
//
// Unlike NewOrder, an empty items slice is accepted: a partial item-insert
// failure leaves a valid but items-incomplete order behind, and such orders
// must remain loadable.
func RestoreOrder(
	id kernel.UUID,
	vendorID kernel.UUID,
	partnerID *kernel.UUID,
	customerName string,
	customerEmail string,
	deliveryAddress string,
	items []Item,
	status Status,
	location *kernel.GeoPoint,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		vendorID.Validate(),
		status.Validate(),
		status.ValidateCanHavePartner(partnerID != nil),
	); err != nil {
		return nil, err
	}

	if partnerID != nil {
		if err := partnerID.Validate(); err != nil {
			return nil, err
		}
	}

	if location != nil {
		if err := location.Validate(); err != nil {
			return nil, err
		}
	}

	return &Order{
		id:              id,
		vendorID:        vendorID,
		partnerID:       partnerID,
		customerName:    customerName,
		customerEmail:   customerEmail,
		deliveryAddress: deliveryAddress,
		items:           items,
		status:          status,
		location:        location,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
		isConstructed:   true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed for directly instantiated structs.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// VendorID returns the owning vendor's identifier.
func (o *Order) VendorID() kernel.UUID {
	return o.vendorID
}

// Partner returns the assigned delivery partner's ID, or nil if unassigned.
func (o *Order) Partner() *kernel.UUID {
	return o.partnerID
}

// CustomerName returns the customer's display name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// CustomerEmail returns the optional customer email ("" when absent).
func (o *Order) CustomerEmail() string {
	return o.customerEmail
}

// DeliveryAddress returns the destination address.
func (o *Order) DeliveryAddress() string {
	return o.deliveryAddress
}

// Items returns the order lines in insertion order.
// The returned slice is a copy; mutating it does not affect the order.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Location returns the last known partner position, or nil before the first
// accepted sample.
func (o *Order) Location() *kernel.GeoPoint {
	return o.location
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last-update timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Assign assigns the order to a delivery partner on behalf of a vendor and
// moves the status from Pending to Assigned.
//
// Business rules:
//   - only the owning vendor may assign (requestingVendorID must match)
//   - the partner ID must be a valid UUID
//   - the order must be Pending; any other status is an invalid transition
//
// On failure the order is left unmodified.
func (o *Order) Assign(requestingVendorID kernel.UUID, partnerID kernel.UUID, now time.Time) error {
	if err := partnerID.Validate(); err != nil {
		return err
	}

	if !o.vendorID.IsEqual(requestingVendorID) {
		return errs.NewNotAuthorizedError(opAssignPartner, requestingVendorID.String())
	}

	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.partnerID = &partnerID
	o.updatedAt = now
	return nil
}

// StartDelivery moves an Assigned order to OutForDelivery on behalf of its
// assigned partner. It does not set a location; the first accepted sample
// does that.
func (o *Order) StartDelivery(requestingPartnerID kernel.UUID, now time.Time) error {
	if err := o.ensureAssignedPartner(requestingPartnerID, opStartDelivery); err != nil {
		return err
	}

	newStatus, err := o.status.StartDelivery()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// ReportLocation merges a location sample into the order.
//
// Business rules:
//   - only the assigned partner may report
//   - the order must be Assigned or OutForDelivery; Delivered orders reject
//     further samples
//
// The merge is last-write-wins: the current location and updatedAt are
// overwritten with the sample regardless of its timestamp. The aggregate does
// not enforce sample ordering; the reporter is trusted to send monotonically.
func (o *Order) ReportLocation(requestingPartnerID kernel.UUID, point kernel.GeoPoint, sampledAt time.Time) error {
	if err := point.Validate(); err != nil {
		return err
	}

	if err := o.ensureAssignedPartner(requestingPartnerID, opReportLocation); err != nil {
		return err
	}

	if err := o.status.ValidateTracking(); err != nil {
		return err
	}

	o.location = &point
	o.updatedAt = sampledAt
	return nil
}

// MarkDelivered moves an OutForDelivery order to Delivered on behalf of its
// assigned partner. Delivered is terminal: a second call fails with an
// invalid-transition error and changes nothing.
func (o *Order) MarkDelivered(requestingPartnerID kernel.UUID, now time.Time) error {
	if err := o.ensureAssignedPartner(requestingPartnerID, opMarkDelivered); err != nil {
		return err
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// ensureAssignedPartner checks that the requesting partner is the one assigned
// to this order.
func (o *Order) ensureAssignedPartner(requestingPartnerID kernel.UUID, operation string) error {
	if err := requestingPartnerID.Validate(); err != nil {
		return err
	}

	if o.partnerID == nil || !o.partnerID.IsEqual(requestingPartnerID) {
		return errs.NewNotAuthorizedError(operation, requestingPartnerID.String())
	}

	return nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setVendorID validates and sets the owning vendor.
func (o *Order) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}
	o.vendorID = vendorID
	return nil
}

func (o *Order) setCustomerName(customerName string) error {
	if customerName == "" {
		return errs.NewValueIsRequiredError("customer name")
	}
	o.customerName = customerName
	return nil
}

func (o *Order) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return errs.NewValueIsRequiredError("delivery address")
	}
	o.deliveryAddress = deliveryAddress
	return nil
}

// setItems validates that creation carries at least one valid item and copies
// the slice to keep the aggregate owner of its state.
func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
