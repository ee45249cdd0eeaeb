package order

import (
	"fmt"

	"supplymitra/internal/core/domain/model/account"
	"supplymitra/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with a fixed, actor-gated transition table to
// ensure orders follow the correct fulfilment workflow.
//
// State transitions:
//
//	pending ──> confirmed ──> packed ──> in_transit ──> out_for_delivery ──> delivered
//	   │            │
//	   └────────────┴──> cancelled
//
// cancelled is reachable only from pending (by the vendor or the supplier)
// and from confirmed (by the supplier). delivered and cancelled are terminal.
//
// Status is a value object that validates state transitions and provides
// string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is first placed.
	// Only pending orders may be cancelled by the vendor.
	Pending

	// Confirmed indicates the supplier has accepted the order.
	Confirmed

	// Packed indicates the supplier has packed the order for shipment.
	Packed

	// InTransit indicates the order has left the supplier's location.
	InTransit

	// OutForDelivery indicates the order is on its final delivery leg.
	OutForDelivery

	// Delivered indicates the order reached the vendor.
	// This is a terminal state with no further transitions allowed.
	Delivered

	// Cancelled indicates the order was called off before fulfilment.
	// This is a terminal state, not a removal of the order.
	Cancelled
)

// getStatusStrings returns a map of Status values to their wire names.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Pending:        "pending",
		Confirmed:      "confirmed",
		Packed:         "packed",
		InTransit:      "in_transit",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "pending",
		Confirmed:      "confirmed",
		Packed:         "packed",
		InTransit:      "in_transit",
		OutForDelivery: "out_for_delivery",
		Delivered:      "delivered",
		Cancelled:      "cancelled",
	}
}

// transition is one row of the lifecycle transition table: a reachable target
// status and the marketplace roles allowed to request it.
type transition struct {
	to       Status
	vendor   bool
	supplier bool
}

// getTransitions returns the complete transition table of the order
// lifecycle. Any (from, to) pair absent from this table is an invalid
// transition regardless of the actor.
func getTransitions() map[Status][]transition {
	return map[Status][]transition{
		Pending: {
			{to: Confirmed, supplier: true},
			{to: Cancelled, vendor: true, supplier: true},
		},
		Confirmed: {
			{to: Packed, supplier: true},
			{to: Cancelled, supplier: true},
		},
		Packed: {
			{to: InTransit, supplier: true},
		},
		InTransit: {
			{to: OutForDelivery, supplier: true},
		},
		OutForDelivery: {
			{to: Delivered, supplier: true},
		},
	}
}

// StatusFromString parses a status from its wire name ("pending",
// "confirmed", "packed", "in_transit", "out_for_delivery", "delivered",
// "cancelled"). Returns an error for any other input.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Pending, Confirmed, Packed, InTransit, OutForDelivery,
// Delivered, Cancelled. Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status.
// This method implements the fmt.Stringer interface and is safe to call on
// any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status has no outgoing transitions.
// Delivered and Cancelled are terminal.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// AllowedNext returns the statuses reachable from s for any actor, in table
// order. Terminal and invalid statuses return an empty slice.
func (s Status) AllowedNext() []Status {
	rules := getTransitions()[s]
	next := make([]Status, 0, len(rules))
	for _, rule := range rules {
		next = append(next, rule.to)
	}
	return next
}

// AllowedNextStrings returns the wire names of the statuses reachable from s.
// Used to report the legal options alongside an invalid-transition error.
func (s Status) AllowedNextStrings() []string {
	next := s.AllowedNext()
	names := make([]string, 0, len(next))
	for _, status := range next {
		names = append(names, status.String())
	}
	return names
}

// TransitionTo validates a requested status change against the transition
// table and returns the new status.
//
// Returns:
//   - (target, nil) when the table contains (s, target) and the actor's role
//     is allowed to request it
//   - (0, InvalidTransitionError) when (s, target) is not in the table; the
//     error names both states and lists the allowed targets
//   - (0, ForbiddenError) when the pair is legal but the actor's role is not
//     permitted to perform it
//
// The receiver is never modified; callers apply the returned status.
func (s Status) TransitionTo(target Status, actor account.Role) (Status, error) {
	if err := s.Validate(); err != nil {
		return 0, err
	}
	if err := target.Validate(); err != nil {
		return 0, err
	}

	for _, rule := range getTransitions()[s] {
		if rule.to != target {
			continue
		}
		if (actor == account.RoleVendor && rule.vendor) ||
			(actor == account.RoleSupplier && rule.supplier) {
			return target, nil
		}
		return 0, errs.NewForbiddenError(actor.String(),
			fmt.Sprintf("move order from %s to %s", s, target))
	}

	return 0, errs.NewInvalidTransitionError(s.String(), target.String(), s.AllowedNextStrings())
}
