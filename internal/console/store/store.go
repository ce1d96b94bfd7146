package store

import (
	"context"
	"errors"

	"github.com/tigaron/partner-admin/internal/console/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement this. Sub-repositories keep concerns tidy and testable.
type Store interface {
	Sessions() Sessions

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources (optional for sqlite).
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Sessions interface {
	// CreateSession persists a new admin session (id is provided by the
	// service via a random token). The bearer token is encrypted at rest.
	CreateSession(ctx context.Context, s domain.Session) error

	// GetSessionByID loads a session regardless of expiry; callers decide
	// what expired means for them.
	GetSessionByID(ctx context.Context, id string) (domain.Session, error)

	// GetSessionByTokenFingerprint looks a session up by the SHA-256
	// fingerprint of its bearer token.
	GetSessionByTokenFingerprint(ctx context.Context, fingerprint string) (domain.Session, error)

	// DeleteSession removes a session by ID. Deleting a missing session is
	// not an error.
	DeleteSession(ctx context.Context, id string) error

	// DeleteSessionsByTokenFingerprint removes every session holding the
	// given token. Used when the backend reports the token invalid.
	DeleteSessionsByTokenFingerprint(ctx context.Context, fingerprint string) error

	// DeleteExpiredSessions is periodic housekeeping.
	DeleteExpiredSessions(ctx context.Context) error
}
