package order

import (
	"errors"
	"time"

	"supplymitra/internal/pkg/errs"
	"supplymitra/internal/pkg/guard"
)

// ErrHistoryEntryIsNotConstructed is returned when a HistoryEntry was not
// created via the NewHistoryEntry constructor.
var ErrHistoryEntryIsNotConstructed = errors.New("HistoryEntry must be created via NewHistoryEntry constructor")

// HistoryEntry records one status the order has held: the status, the
// server-assigned time it was entered, and an optional human-readable note.
// An order's history is append-only; entries are never edited or removed.
type HistoryEntry struct { //nolint:recvcheck //using for validation
	status Status
	at     time.Time
	note   string

	guard guard.ConstructorGuard
}

// NewHistoryEntry creates a validated history entry.
// The timestamp is always assigned by the server, never taken from a client.
func NewHistoryEntry(status Status, at time.Time, note string) (HistoryEntry, error) {
	entry := HistoryEntry{
		note:  note,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(entry.setStatus(status), entry.setAt(at)); err != nil {
		return HistoryEntry{}, err
	}

	return entry, nil
}

// Validate ensures the entry was created through the constructor.
func (e HistoryEntry) Validate() error {
	return e.guard.Validate(ErrHistoryEntryIsNotConstructed)
}

// Status returns the status the order entered.
func (e HistoryEntry) Status() Status {
	return e.status
}

// At returns the server-assigned time the status was entered.
func (e HistoryEntry) At() time.Time {
	return e.at
}

// Note returns the optional note attached to the transition, possibly empty.
func (e HistoryEntry) Note() string {
	return e.note
}

func (e *HistoryEntry) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	e.status = status
	return nil
}

func (e *HistoryEntry) setAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("at")
	}
	e.at = at
	return nil
}
