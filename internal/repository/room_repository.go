package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/classtrack/occupancy-tracker/internal/model"
)

// RoomRepo provides read access to the rooms table and the one-time
// provisioning operation that creates a room together with its seats.
type RoomRepo struct {
	db *sql.DB
}

// NewRoomRepo constructs a RoomRepo with the given DB handle.
func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

// List returns all rooms ordered by id ascending. The order is stable
// because rooms are never deleted or renumbered.
func (r *RoomRepo) List(ctx context.Context) ([]model.Room, error) {
	const q = `SELECT id, name, capacity, created_at FROM rooms ORDER BY id`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Room
	for rows.Next() {
		var rm model.Room
		if err := rows.Scan(&rm.ID, &rm.Name, &rm.Capacity, &rm.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByID retrieves a room by its id.
func (r *RoomRepo) GetByID(ctx context.Context, id uint64) (*model.Room, error) {
	const q = `SELECT id, name, capacity, created_at FROM rooms WHERE id = ?`
	var rm model.Room
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&rm.ID, &rm.Name, &rm.Capacity, &rm.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &rm, nil
}

// Count returns the number of rooms. Used as the provisioning guard:
// seeding only runs against an empty registry.
func (r *RoomRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM rooms`).Scan(&n)
	return n, err
}

// Provision creates a room and its full set of seats in a single
// transaction. Seats are numbered 1..capacity and start out free. On
// success the room's ID is populated.
func (r *RoomRepo) Provision(ctx context.Context, rm *model.Room) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx,
		`INSERT INTO rooms (name, capacity) VALUES (?, ?)`,
		rm.Name, rm.Capacity)
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		_ = tx.Rollback()
		return err
	}
	rm.ID = uint64(id)

	if rm.Capacity > 0 {
		query := `INSERT INTO seats (room_id, seat_number, status) VALUES `
		args := make([]interface{}, 0, int(rm.Capacity)*3)
		for i := uint32(1); i <= rm.Capacity; i++ {
			if i > 1 {
				query += ","
			}
			query += "(?, ?, ?)"
			args = append(args, rm.ID, i, model.StatusFree)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}
