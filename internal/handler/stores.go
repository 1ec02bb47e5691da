package handler

import (
	"context"

	"github.com/classtrack/occupancy-tracker/internal/model"
)

// The store interfaces declare exactly what the handlers consume from
// the repository layer. The concrete *Repo types in internal/repository
// satisfy them; tests substitute lightweight fakes.

// AccountStore provides account registration and authentication.
type AccountStore interface {
	Create(ctx context.Context, username, password string, cost int) (uint64, error)
	Authenticate(ctx context.Context, username, password string) (model.Account, error)
	GetByID(ctx context.Context, id uint64) (model.Account, error)
}

// RoomStore provides read access to the room registry.
type RoomStore interface {
	List(ctx context.Context) ([]model.Room, error)
	GetByID(ctx context.Context, id uint64) (*model.Room, error)
}

// SeatStore provides seat reads and the single mutating entry point.
type SeatStore interface {
	ListByRoom(ctx context.Context, roomID uint64) ([]model.Seat, error)
	GetByID(ctx context.Context, id uint64) (*model.Seat, error)
	CountByStatus(ctx context.Context, roomID uint64, status string) (int, error)
	SetStatus(ctx context.Context, seatID uint64, status string, actorID uint64) (*model.Seat, error)
}

// LedgerStore provides read access to a seat's audit trail.
type LedgerStore interface {
	History(ctx context.Context, seatID uint64) ([]model.UpdateEvent, error)
}
