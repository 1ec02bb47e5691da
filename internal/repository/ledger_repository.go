package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/classtrack/occupancy-tracker/internal/model"
)

// LedgerRepo provides access to the append-only seat_updates table.
// Entries are inserted on every status change and never mutated or
// deleted, so the table is the system's only durable record of
// occupancy over time.
type LedgerRepo struct {
	db *sql.DB
}

// NewLedgerRepo constructs a LedgerRepo with the given DB handle.
func NewLedgerRepo(db *sql.DB) *LedgerRepo { return &LedgerRepo{db: db} }

// AppendTx inserts one ledger entry within an existing transaction.
// The caller owns the transaction; the seat-state write and the ledger
// append must share it so neither is durable without the other.
func (r *LedgerRepo) AppendTx(ctx context.Context, tx *sql.Tx, seatID, accountID uint64, status string, at time.Time) error {
	const q = `INSERT INTO seat_updates (seat_id, account_id, status, recorded_at) VALUES (?, ?, ?, ?)`
	_, err := tx.ExecContext(ctx, q, seatID, accountID, status, at)
	return err
}

// Append inserts one ledger entry outside any transaction. It fails
// only on referential-integrity violations (unknown seat or account)
// or storage errors.
func (r *LedgerRepo) Append(ctx context.Context, seatID, accountID uint64, status string, at time.Time) error {
	const q = `INSERT INTO seat_updates (seat_id, account_id, status, recorded_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q, seatID, accountID, status, at)
	return err
}

// History returns the full audit trail of one seat ordered by recorded
// time ascending, with the insertion id as tiebreaker so entries that
// share a timestamp keep their write order. The query is a plain
// SELECT and can be re-run at any time.
func (r *LedgerRepo) History(ctx context.Context, seatID uint64) ([]model.UpdateEvent, error) {
	const q = `SELECT id, seat_id, account_id, status, recorded_at
	           FROM seat_updates
	           WHERE seat_id = ?
	           ORDER BY recorded_at, id`
	rows, err := r.db.QueryContext(ctx, q, seatID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.UpdateEvent
	for rows.Next() {
		var e model.UpdateEvent
		if err := rows.Scan(&e.ID, &e.SeatID, &e.AccountID, &e.Status, &e.RecordedAt); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
