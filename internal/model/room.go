package model

import "time"

// Room represents a classroom with a fixed seat capacity. Rooms are
// created once at provisioning and never modified: exactly Capacity
// seats exist per room, numbered 1..Capacity with no gaps.
//
// Fields:
//  ID        – primary key identifier.
//  Name      – display name of the classroom.
//  Capacity  – fixed number of seats in the room (positive).
//  CreatedAt – creation timestamp.
type Room struct {
	ID        uint64    // rooms.id
	Name      string    // rooms.name
	Capacity  uint32    // rooms.capacity
	CreatedAt time.Time // rooms.created_at
}
