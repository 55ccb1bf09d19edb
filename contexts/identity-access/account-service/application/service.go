package application

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	domainerrors "minerva/contexts/identity-access/account-service/domain/errors"
	"minerva/contexts/identity-access/account-service/ports"
	"minerva/internal/shared/events"
)

type Service struct {
	Accounts ports.AccountRepository
	Hasher   ports.PasswordHasher
	Tokens   ports.TokenCodec
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Events   ports.EventPublisher
	Logger   *slog.Logger
}

// Register creates an account with a one-way password hash. The raw password
// never reaches the repository or the logs.
func (s Service) Register(ctx context.Context, email string, password string) (ports.Account, error) {
	email = normalizeEmail(email)
	if email == "" || !strings.Contains(email, "@") || password == "" {
		return ports.Account{}, domainerrors.ErrInvalidAccountInput
	}

	hash, err := s.Hasher.Hash(ctx, password)
	if err != nil {
		return ports.Account{}, err
	}

	accountID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return ports.Account{}, err
	}

	account := ports.Account{
		AccountID:    accountID,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    s.now(),
	}
	if err := s.Accounts.CreateAccount(ctx, account); err != nil {
		return ports.Account{}, err
	}

	if s.Logger != nil {
		s.Logger.Info("account registered",
			"event", "account_registered",
			"module", "contexts/identity-access/account-service",
			"layer", "application",
			"account_id", account.AccountID,
		)
	}
	s.publish(ctx, events.TypeAccountRegistered, account.AccountID, events.AccountPayload{AccountID: account.AccountID})

	return account, nil
}

// Login authenticates by email and password and issues a session token.
// A missing account and a wrong password return the identical error.
func (s Service) Login(ctx context.Context, email string, password string) (ports.TokenPair, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return ports.TokenPair{}, domainerrors.ErrWrongCredentials
	}

	account, err := s.Accounts.GetAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrWrongCredentials) {
			return ports.TokenPair{}, domainerrors.ErrWrongCredentials
		}
		return ports.TokenPair{}, err
	}

	if err := s.Hasher.Compare(ctx, account.PasswordHash, password); err != nil {
		return ports.TokenPair{}, domainerrors.ErrWrongCredentials
	}

	token, session, err := s.Tokens.Issue(account.AccountID, s.now())
	if err != nil {
		return ports.TokenPair{}, err
	}
	return ports.TokenPair{Token: token, Session: session}, nil
}

// VerifySession decodes a bearer token into a Session. Every failure mode
// collapses into the unauthorized error.
func (s Service) VerifySession(token string) (ports.Session, error) {
	token = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(token), "Bearer "))
	if token == "" {
		return ports.Session{}, domainerrors.ErrUnauthorized
	}
	return s.Tokens.Verify(token, s.now())
}

func (s Service) publish(ctx context.Context, eventType string, entityID string, payload any) {
	if s.Events == nil {
		return
	}
	// Event publishing is observability, not part of the request contract.
	if err := s.Events.Publish(ctx, eventType, "account", entityID, payload); err != nil && s.Logger != nil {
		s.Logger.Warn("event publish failed",
			"event", "account_event_publish_failed",
			"module", "contexts/identity-access/account-service",
			"layer", "application",
			"event_type", eventType,
			"error", err.Error(),
		)
	}
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
