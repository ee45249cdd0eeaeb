package order

import (
	"errors"
	"fmt"
	"time"

	"supplymitra/internal/core/domain/model/account"
	"supplymitra/internal/core/domain/model/kernel"
	"supplymitra/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a vendor's purchase request against one supplier's
// materials. It is the aggregate root that owns the fulfilment lifecycle from
// placement through delivery or cancellation.
//
// Order follows these invariants:
//   - Both participants and both address references are set at creation and
//     are immutable thereafter
//   - Line items are non-empty with positive quantities
//   - The total always equals the sum of quantity × unit price over the line
//     items; it is computed here, never accepted from a caller
//   - Status changes only through the lifecycle transition table
//   - The status history is append-only and its last entry always matches the
//     current status
//   - Orders are never deleted; cancellation is a terminal status
type Order struct {
	id                kernel.UUID
	vendorID          kernel.UUID
	supplierID        kernel.UUID
	vendorAddressID   kernel.UUID
	supplierAddressID kernel.UUID
	lineItems         []LineItem
	totalAmount       kernel.Money
	status            Status
	history           []HistoryEntry
	createdAt         time.Time
	expectedDelivery  *time.Time
	deliveredAt       *time.Time
	cancelledAt       *time.Time

	isConstructed bool
}

// NewOrder creates a new Order in the pending status.
//
// All participant and address identifiers must be valid, the vendor and
// supplier must be distinct accounts, and at least one line item is required.
// The order total is computed from the line items. The creation time is
// recorded as the first (and only) history entry.
//
// Parameters:
//   - id: Unique identifier for the order
//   - vendorID, supplierID: The two participant accounts
//   - vendorAddressID, supplierAddressID: Delivery and pickup addresses
//   - lineItems: Materials being ordered with catalog-sourced unit prices
//   - expectedDelivery: Optional expected delivery time
//   - now: Server-assigned creation time
func NewOrder(
	id kernel.UUID,
	vendorID kernel.UUID,
	supplierID kernel.UUID,
	vendorAddressID kernel.UUID,
	supplierAddressID kernel.UUID,
	lineItems []LineItem,
	expectedDelivery *time.Time,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:           Pending,
		expectedDelivery: expectedDelivery,
		isConstructed:    true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setParticipants(vendorID, supplierID),
		o.setAddresses(vendorAddressID, supplierAddressID),
		o.setLineItems(lineItems),
		o.setCreatedAt(now),
	); err != nil {
		return nil, err
	}

	total, err := computeTotal(o.lineItems)
	if err != nil {
		return nil, err
	}
	o.totalAmount = total

	placed, err := NewHistoryEntry(Pending, now, "order placed")
	if err != nil {
		return nil, err
	}
	o.history = []HistoryEntry{placed}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence.
//
// The stored status, history, and total are trusted to have been produced by
// this aggregate, but structural invariants (valid identifiers, non-empty
// items and history, history tail matching the status) are still verified so
// corrupted rows surface as errors instead of invalid aggregates.
func RestoreOrder(
	id kernel.UUID,
	vendorID kernel.UUID,
	supplierID kernel.UUID,
	vendorAddressID kernel.UUID,
	supplierAddressID kernel.UUID,
	lineItems []LineItem,
	totalAmount kernel.Money,
	status Status,
	history []HistoryEntry,
	createdAt time.Time,
	expectedDelivery *time.Time,
	deliveredAt *time.Time,
	cancelledAt *time.Time,
) (*Order, error) {
	o := &Order{
		expectedDelivery: expectedDelivery,
		deliveredAt:      deliveredAt,
		cancelledAt:      cancelledAt,
		isConstructed:    true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setParticipants(vendorID, supplierID),
		o.setAddresses(vendorAddressID, supplierAddressID),
		o.setLineItems(lineItems),
		o.setCreatedAt(createdAt),
		o.setStatus(status),
		o.setTotalAmount(totalAmount),
		o.setHistory(history, status),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder. This prevents bypassing validation by directly
// instantiating the struct.
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

// VendorID returns the purchasing vendor's account identifier.
func (o *Order) VendorID() kernel.UUID {
	return o.vendorID
}

// SupplierID returns the fulfilling supplier's account identifier.
func (o *Order) SupplierID() kernel.UUID {
	return o.supplierID
}

// VendorAddressID returns the vendor's delivery address reference.
func (o *Order) VendorAddressID() kernel.UUID {
	return o.vendorAddressID
}

// SupplierAddressID returns the supplier's pickup address reference.
func (o *Order) SupplierAddressID() kernel.UUID {
	return o.supplierAddressID
}

// LineItems returns a copy of the order's line items.
func (o *Order) LineItems() []LineItem {
	items := make([]LineItem, len(o.lineItems))
	copy(items, o.lineItems)
	return items
}

// TotalAmount returns the server-computed order total.
func (o *Order) TotalAmount() kernel.Money {
	return o.totalAmount
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// History returns a copy of the append-only status history, oldest first.
// The last entry always matches the current status.
func (o *Order) History() []HistoryEntry {
	history := make([]HistoryEntry, len(o.history))
	copy(history, o.history)
	return history
}

// CreatedAt returns the order placement time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ExpectedDelivery returns the expected delivery time, if one was given.
func (o *Order) ExpectedDelivery() *time.Time {
	return o.expectedDelivery
}

// DeliveredAt returns the delivery time, set when the order reaches Delivered.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// CancelledAt returns the cancellation time, set when the order is cancelled.
func (o *Order) CancelledAt() *time.Time {
	return o.cancelledAt
}

// RoleOf resolves which side of this order the given account is on.
//
// Returns:
//   - (RoleVendor, nil) when the account is the order's vendor
//   - (RoleSupplier, nil) when the account is the order's supplier
//   - (RoleUnknown, ForbiddenError) for any other account — a non-participant
//     has no access to the order at all
func (o *Order) RoleOf(actorID kernel.UUID) (account.Role, error) {
	if err := actorID.Validate(); err != nil {
		return account.RoleUnknown, err
	}
	if o.vendorID.IsEqual(actorID) {
		return account.RoleVendor, nil
	}
	if o.supplierID.IsEqual(actorID) {
		return account.RoleSupplier, nil
	}
	return account.RoleUnknown, errs.NewForbiddenError(actorID.String(),
		fmt.Sprintf("access order %s", o.id))
}

// ChangeStatus applies a requested status transition on behalf of an actor.
//
// The transition is validated against the lifecycle table; on success the
// status is updated, exactly one history entry is appended with the
// server-assigned time and the optional note, and the delivered/cancelled
// timestamps are set when a terminal state is entered. On failure the order
// is left completely unchanged.
func (o *Order) ChangeStatus(target Status, actor account.Role, note string, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(target, actor)
	if err != nil {
		return err
	}

	entry, err := NewHistoryEntry(newStatus, now, note)
	if err != nil {
		return err
	}

	o.status = newStatus
	o.history = append(o.history, entry)

	switch newStatus {
	case Delivered:
		at := now
		o.deliveredAt = &at
	case Cancelled:
		at := now
		o.cancelledAt = &at
	default:
	}

	return nil
}

// LastHistoryEntry returns the most recent history entry.
// The aggregate guarantees the history is never empty.
func (o *Order) LastHistoryEntry() HistoryEntry {
	return o.history[len(o.history)-1]
}

// computeTotal sums quantity × unit price over the line items.
func computeTotal(items []LineItem) (kernel.Money, error) {
	total, err := kernel.NewMoney(0)
	if err != nil {
		return kernel.Money{}, err
	}
	for _, item := range items {
		line, lineErr := item.Total()
		if lineErr != nil {
			return kernel.Money{}, lineErr
		}
		total, err = total.Add(line)
		if err != nil {
			return kernel.Money{}, err
		}
	}
	return total, nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setParticipants(vendorID kernel.UUID, supplierID kernel.UUID) error {
	if err := errors.Join(vendorID.Validate(), supplierID.Validate()); err != nil {
		return err
	}
	if vendorID.IsEqual(supplierID) {
		return errs.NewValueIsInvalidErrorWithCause("supplierId",
			errors.New("vendor and supplier must be distinct accounts"))
	}
	o.vendorID = vendorID
	o.supplierID = supplierID
	return nil
}

func (o *Order) setAddresses(vendorAddressID kernel.UUID, supplierAddressID kernel.UUID) error {
	if err := errors.Join(vendorAddressID.Validate(), supplierAddressID.Validate()); err != nil {
		return err
	}
	o.vendorAddressID = vendorAddressID
	o.supplierAddressID = supplierAddressID
	return nil
}

func (o *Order) setLineItems(lineItems []LineItem) error {
	if len(lineItems) == 0 {
		return errs.NewValueIsRequiredError("lineItems")
	}
	items := make([]LineItem, len(lineItems))
	for i, item := range lineItems {
		if err := item.Validate(); err != nil {
			return err
		}
		items[i] = item
	}
	o.lineItems = items
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = createdAt
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setTotalAmount(totalAmount kernel.Money) error {
	if err := totalAmount.Validate(); err != nil {
		return err
	}
	computed, err := computeTotal(o.lineItems)
	if err != nil {
		return err
	}
	if !totalAmount.IsEqual(computed) {
		return errs.NewValueIsInvalidErrorWithCause("totalAmount",
			fmt.Errorf("stored total %s does not match line items total %s", totalAmount, computed))
	}
	o.totalAmount = totalAmount
	return nil
}

func (o *Order) setHistory(history []HistoryEntry, status Status) error {
	if len(history) == 0 {
		return errs.NewValueIsRequiredError("statusHistory")
	}
	entries := make([]HistoryEntry, len(history))
	for i, entry := range history {
		if err := entry.Validate(); err != nil {
			return err
		}
		entries[i] = entry
	}
	if entries[len(entries)-1].Status() != status {
		return errs.NewValueIsInvalidErrorWithCause("statusHistory",
			fmt.Errorf("last history status %s does not match order status %s",
				entries[len(entries)-1].Status(), status))
	}
	o.history = entries
	return nil
}
