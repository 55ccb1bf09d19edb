package ports

import (
	"context"
	"time"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

type Account struct {
	AccountID    string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Session is the request-scoped proof of an authenticated account. It is
// reconstructed from the bearer token on every request and never persisted.
type Session struct {
	AccountID string
	Expiry    time.Time
	NotBefore time.Time
}

type TokenPair struct {
	Token   string
	Session Session
}

type AccountRepository interface {
	// CreateAccount persists a new account. Returns the domain duplicate-email
	// error when the unique index rejects the row.
	CreateAccount(ctx context.Context, account Account) error
	// GetAccountByEmail returns the domain wrong-credentials error when the
	// email is unknown.
	GetAccountByEmail(ctx context.Context, email string) (Account, error)
}

// PasswordHasher is CPU-heavy on Hash and Compare; implementations bound
// their own concurrency so hashing cannot starve other request goroutines.
type PasswordHasher interface {
	Hash(ctx context.Context, password string) (string, error)
	Compare(ctx context.Context, hash string, password string) error
}

// TokenCodec issues and verifies the opaque session token. Verify is pure:
// no I/O beyond cryptographic verification.
type TokenCodec interface {
	Issue(accountID string, now time.Time) (string, Session, error)
	Verify(token string, now time.Time) (Session, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, eventType string, entityType string, entityID string, payload any) error
}
