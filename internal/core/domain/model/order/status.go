package order

import (
	"fmt"

	"ordertrack/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a state
// machine whose transitions are monotonic along the delivery workflow:
//
//	Pending ──> Assigned ──> OutForDelivery ──> Delivered
//
// No backward transition is permitted, Pending is the sole initial state and
// Delivered is the sole terminal state. Status is a value object that validates
// transitions and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of a freshly created order, waiting for
	// the vendor to assign a delivery partner.
	Pending

	// Assigned indicates the order has been assigned to a delivery partner
	// who has not started the delivery yet.
	Assigned

	// OutForDelivery indicates the assigned partner is en route and may be
	// streaming location updates.
	OutForDelivery

	// Delivered indicates the order reached the customer.
	// This is a final state with no further transitions allowed.
	Delivered
)

// getStatusStrings returns string representations for all statuses,
// including Unknown.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "Unknown",
		Pending:        "Pending",
		Assigned:       "Assigned",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
	}
}

// getValidStatusStrings returns only statuses a stored order may carry.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "Pending",
		Assigned:       "Assigned",
		OutForDelivery: "OutForDelivery",
		Delivered:      "Delivered",
	}
}

// Validate checks that the Status value is one of the four defined lifecycle
// states. Used when reconstructing orders from external sources.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status. It implements
// fmt.Stringer and is safe to call on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Assign transitions the status to Assigned.
//
// The only valid source state is Pending; assigning an already assigned,
// out-for-delivery, or delivered order fails. Returns the new status on
// success or an invalid-transition error naming both states.
func (s Status) Assign() (Status, error) {
	if s != Pending {
		return 0, errs.NewInvalidTransitionError(s.String(), Assigned.String())
	}

	return Assigned, nil
}

// StartDelivery transitions the status to OutForDelivery.
// The only valid source state is Assigned.
func (s Status) StartDelivery() (Status, error) {
	if s != Assigned {
		return 0, errs.NewInvalidTransitionError(s.String(), OutForDelivery.String())
	}

	return OutForDelivery, nil
}

// Deliver transitions the status to Delivered.
// The only valid source state is OutForDelivery. Delivered is terminal:
// calling Deliver on a Delivered order fails without side effects.
func (s Status) Deliver() (Status, error) {
	if s != OutForDelivery {
		return 0, errs.NewInvalidTransitionError(s.String(), Delivered.String())
	}

	return Delivered, nil
}

// ValidateTracking checks whether the status accepts location samples.
//
// Samples are accepted while Assigned (the reporter's first fix can race the
// StartDelivery acknowledgment) and while OutForDelivery. Pending orders have
// no partner to report and Delivered orders reject further samples so stale
// trackers cannot move a completed delivery.
func (s Status) ValidateTracking() error {
	if s != Assigned && s != OutForDelivery {
		return errs.NewInvalidTransitionErrorWithCause(
			s.String(),
			OutForDelivery.String(),
			fmt.Errorf("%s does not accept location updates", s.String()),
		)
	}
	return nil
}

// ValidateCanHavePartner validates consistency between order status and
// partner assignment: a partner is present if and only if the order has left
// Pending. Once assigned, the partner is never cleared.
func (s Status) ValidateCanHavePartner(partner bool) error {
	if partner && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have a partner", s.String()),
		)
	}

	if !partner && s != Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to have no partner", s.String()),
		)
	}

	return nil
}
