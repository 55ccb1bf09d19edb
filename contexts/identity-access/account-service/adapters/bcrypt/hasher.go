package bcryptadapter

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/semaphore"

	domainerrors "minerva/contexts/identity-access/account-service/domain/errors"
)

// Hasher wraps bcrypt behind a weighted semaphore so the CPU-heavy work is
// capped at GOMAXPROCS concurrent hashes and cannot starve the goroutines
// handling other requests.
type Hasher struct {
	sem  *semaphore.Weighted
	cost int
}

func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{
		sem:  semaphore.NewWeighted(int64(runtime.GOMAXPROCS(0))),
		cost: cost,
	}
}

func (h *Hasher) Hash(ctx context.Context, password string) (string, error) {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return "", fmt.Errorf("acquire hashing slot: %w", err)
	}
	defer h.sem.Release(1)

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

func (h *Hasher) Compare(ctx context.Context, hash string, password string) error {
	if err := h.sem.Acquire(ctx, 1); err != nil {
		return fmt.Errorf("acquire hashing slot: %w", err)
	}
	defer h.sem.Release(1)

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return domainerrors.ErrWrongCredentials
	}
	return nil
}
