package model

import "time"

// Seat status values. A seat has exactly two states with a single
// bidirectional transition; every seat starts out free.
const (
	StatusFree     = "free"     // seat is unoccupied
	StatusOccupied = "occupied" // seat is taken
)

// ValidStatus reports whether s is one of the two recognized seat
// statuses. Status strings are matched exactly; callers normalize
// before validating.
func ValidStatus(s string) bool {
	return s == StatusFree || s == StatusOccupied
}

// Seat describes a single trackable occupancy unit in a room. Seats
// are uniquely identified by their room and seat number. The Status
// field is a denormalized copy of the newest ledger entry for this
// seat; SetStatus keeps both in sync within one transaction.
//
// Fields:
//  ID         – primary key identifier.
//  RoomID     – room to which this seat belongs.
//  SeatNumber – position within the room (1-based, unique per room).
//  Status     – current status ("free" or "occupied").
//  UpdatedAt  – instant of the last status change.
type Seat struct {
	ID         uint64    // seats.id
	RoomID     uint64    // seats.room_id
	SeatNumber uint32    // seats.seat_number
	Status     string    // seats.status
	UpdatedAt  time.Time // seats.updated_at
}
