package model

import "time"

// UpdateEvent is one immutable entry of the seat-update ledger. An
// event is appended on every status change and never mutated or
// deleted, forming the full audit trail of a seat. The seat's current
// status is always equal to the status of its newest event.
//
// Fields:
//  ID         – primary key identifier.
//  SeatID     – seat whose status changed.
//  AccountID  – actor responsible for the change.
//  Status     – status recorded by this change ("free" or "occupied").
//  RecordedAt – instant of the change; equals the seat's UpdatedAt.
type UpdateEvent struct {
	ID         uint64    // seat_updates.id
	SeatID     uint64    // seat_updates.seat_id
	AccountID  uint64    // seat_updates.account_id
	Status     string    // seat_updates.status
	RecordedAt time.Time // seat_updates.recorded_at
}
