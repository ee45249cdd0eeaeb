// Package order contains the Order aggregate and its lifecycle state machine.
//
// An order is a vendor's purchase request against one supplier's materials.
// It is created in the pending status with a server-computed total and then
// progresses through a fixed, actor-gated transition table until it reaches a
// terminal status (delivered or cancelled). Every successful transition
// appends exactly one entry to the order's append-only status history.
//
// The transition table is the single source of truth for which status changes
// are legal and which marketplace role may perform them; any transition not in
// the table fails and leaves the order unchanged.
package order
