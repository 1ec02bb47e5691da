package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/classtrack/occupancy-tracker/internal/model"
)

// SeatRepo provides methods to work with seats in the database. The
// single mutating entry point is SetStatus, which pairs the seat-row
// update with a ledger append inside one transaction.
type SeatRepo struct {
	db     *sql.DB
	ledger *LedgerRepo
}

// NewSeatRepo constructs a SeatRepo. The ledger repo is used for the
// transactional append performed by SetStatus.
func NewSeatRepo(db *sql.DB, ledger *LedgerRepo) *SeatRepo {
	return &SeatRepo{db: db, ledger: ledger}
}

// ListByRoom retrieves all seats of a room ordered by seat number
// ascending. Immediately after provisioning this is exactly
// capacity seats numbered 1..capacity.
func (r *SeatRepo) ListByRoom(ctx context.Context, roomID uint64) ([]model.Seat, error) {
	const q = `SELECT id, room_id, seat_number, status, updated_at
	           FROM seats
	           WHERE room_id = ?
	           ORDER BY seat_number`
	rows, err := r.db.QueryContext(ctx, q, roomID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Seat
	for rows.Next() {
		var s model.Seat
		if err := rows.Scan(&s.ID, &s.RoomID, &s.SeatNumber, &s.Status, &s.UpdatedAt); err != nil {
			return nil, err
		}
		result = append(result, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// GetByID retrieves a seat by its id.
func (r *SeatRepo) GetByID(ctx context.Context, id uint64) (*model.Seat, error) {
	const q = `SELECT id, room_id, seat_number, status, updated_at FROM seats WHERE id = ?`
	var s model.Seat
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&s.ID, &s.RoomID, &s.SeatNumber, &s.Status, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSeatNotFound
		}
		return nil, err
	}
	return &s, nil
}

// CountByStatus returns the live number of seats in a room with the
// given status. It scans current seat rows, never the ledger, so the
// result is always consistent with the seat table at read time.
func (r *SeatRepo) CountByStatus(ctx context.Context, roomID uint64, status string) (int, error) {
	if !model.ValidStatus(status) {
		return 0, ErrInvalidStatus
	}
	const q = `SELECT COUNT(*) FROM seats WHERE room_id = ? AND status = ?`
	var n int
	err := r.db.QueryRowContext(ctx, q, roomID, status).Scan(&n)
	return n, err
}

// SetStatus overwrites a seat's status and appends the matching ledger
// entry, both inside one transaction. If either write fails neither is
// applied. The row lock is taken before the timestamp: per seat the
// stamps are monotone in commit order, so after a successful commit the
// seat's status always equals the status of its newest UpdateEvent.
// Concurrent callers are serialized by the lock; last writer wins.
func (r *SeatRepo) SetStatus(ctx context.Context, seatID uint64, status string, actorID uint64) (*model.Seat, error) {
	if !model.ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}

	// Lock the seat row first, then stamp. A timestamp taken before the
	// lock could commit out of order with a concurrent writer's, leaving
	// the ledger's time order disagreeing with the seat row.
	var locked uint64
	if err := tx.QueryRowContext(ctx,
		`SELECT id FROM seats WHERE id = ? FOR UPDATE`, seatID).Scan(&locked); err != nil {
		_ = tx.Rollback()
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSeatNotFound
		}
		return nil, err
	}
	now := time.Now().UTC().Truncate(time.Microsecond)

	const upd = `UPDATE seats SET status = ?, updated_at = ? WHERE id = ?`
	if _, err := tx.ExecContext(ctx, upd, status, now, seatID); err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	if err := r.ledger.AppendTx(ctx, tx, seatID, actorID, status, now); err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	var s model.Seat
	const sel = `SELECT id, room_id, seat_number, status, updated_at FROM seats WHERE id = ?`
	if err := tx.QueryRowContext(ctx, sel, seatID).
		Scan(&s.ID, &s.RoomID, &s.SeatNumber, &s.Status, &s.UpdatedAt); err != nil {
		_ = tx.Rollback()
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &s, nil
}
