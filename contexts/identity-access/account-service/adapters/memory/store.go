package memory

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	domainerrors "minerva/contexts/identity-access/account-service/domain/errors"
	"minerva/contexts/identity-access/account-service/ports"
)

// Store is the in-memory account repository used in development and tests.
type Store struct {
	mu       sync.RWMutex
	accounts map[string]ports.Account // keyed by lowercased email
}

func NewStore() *Store {
	return &Store{accounts: make(map[string]ports.Account)}
}

func (s *Store) CreateAccount(_ context.Context, account ports.Account) error {
	email := strings.ToLower(strings.TrimSpace(account.Email))
	if email == "" {
		return domainerrors.ErrInvalidAccountInput
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[email]; exists {
		return domainerrors.ErrDuplicateEmail
	}
	s.accounts[email] = account
	return nil
}

func (s *Store) GetAccountByEmail(_ context.Context, email string) (ports.Account, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return ports.Account{}, domainerrors.ErrWrongCredentials
	}
	return account, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
