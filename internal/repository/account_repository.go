package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/classtrack/occupancy-tracker/internal/model"
	"github.com/classtrack/occupancy-tracker/internal/utils"
)

// AccountRepo provides access to the accounts table. Accounts are
// write-once: there are no update or delete methods.
type AccountRepo struct{ DB *sql.DB }

// NewAccountRepo constructs an AccountRepo with the given DB handle.
func NewAccountRepo(db *sql.DB) *AccountRepo { return &AccountRepo{DB: db} }

// Create hashes the password with bcrypt and inserts the account,
// returning its ID. Usernames are matched exactly (case-sensitive);
// uniqueness is enforced by the unique index, surfaced as
// ErrUsernameExists via MySQL error 1062.
func (r *AccountRepo) Create(ctx context.Context, username, password string, cost int) (uint64, error) {
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO accounts (username, password_hash) VALUES (?,?)",
		username, hash)
	if err != nil {
		if strings.Contains(err.Error(), "1062") {
			return 0, ErrUsernameExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

// GetByUsername fetches an account by exact username.
func (r *AccountRepo) GetByUsername(ctx context.Context, username string) (model.Account, error) {
	var a model.Account
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, username, password_hash, created_at FROM accounts WHERE username=? LIMIT 1",
		username).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt)
	return a, err
}

// GetByID fetches an account by id.
func (r *AccountRepo) GetByID(ctx context.Context, id uint64) (model.Account, error) {
	var a model.Account
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, username, password_hash, created_at FROM accounts WHERE id=? LIMIT 1",
		id).Scan(&a.ID, &a.Username, &a.PasswordHash, &a.CreatedAt)
	return a, err
}

// Authenticate verifies a username/password pair and returns the
// account on success. Unknown usernames and wrong passwords both yield
// ErrInvalidCredentials so the result never leaks whether the account
// exists.
func (r *AccountRepo) Authenticate(ctx context.Context, username, password string) (model.Account, error) {
	a, err := r.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Account{}, ErrInvalidCredentials
		}
		return model.Account{}, err
	}
	if !utils.VerifyPassword(a.PasswordHash, password) {
		return model.Account{}, ErrInvalidCredentials
	}
	return a, nil
}

// ErrInvalidCredentials is returned by Authenticate for both unknown
// usernames and wrong passwords. Handlers translate this into a
// uniform HTTP 401.
var ErrInvalidCredentials = errors.New("invalid credentials")
