// Package repository implements data access for accounts, rooms, seats
// and the seat-update ledger on top of database/sql. Sentinel errors
// defined here let handlers distinguish failure scenarios and map them
// to HTTP statuses without inspecting driver-specific errors.
package repository

import "errors"

// ErrUsernameExists is returned by account creation when the username
// is already taken. Handlers translate this into HTTP 409.
var ErrUsernameExists = errors.New("username already exists")

// ErrRoomNotFound is returned when a room lookup yields no rows.
var ErrRoomNotFound = errors.New("room not found")

// ErrSeatNotFound is returned when a seat lookup yields no rows.
var ErrSeatNotFound = errors.New("seat not found")

// ErrInvalidStatus is returned when a status value is neither "free"
// nor "occupied". Handlers translate this into HTTP 400.
var ErrInvalidStatus = errors.New("invalid seat status")
