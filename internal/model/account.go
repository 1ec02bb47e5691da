package model

import "time"

// Account represents an application user record as stored in the
// `accounts` table. Accounts are created at registration and are
// immutable afterwards; there are no update or delete operations.
// JSON tags are omitted because these structs are used by the
// repository layer; handlers define their own response types.
//
// Fields:
//  ID           – primary key identifier of the account.
//  Username     – unique username (case-sensitive exact match).
//  PasswordHash – bcrypt hashed password; the plaintext is never stored.
//  CreatedAt    – timestamp of registration.
type Account struct {
	ID           uint64    // accounts.id
	Username     string    // accounts.username
	PasswordHash string    // accounts.password_hash
	CreatedAt    time.Time // accounts.created_at
}
