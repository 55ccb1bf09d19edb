package application

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	domainerrors "minerva/contexts/trust-safety/moderation-service/domain/errors"
)

// echoClassifier passes every text through, rejecting any that contain the
// marker word. It records how many classifications ran.
type echoClassifier struct {
	calls atomic.Int64
	delay time.Duration
}

func (c *echoClassifier) Classify(ctx context.Context, text string) (string, error) {
	c.calls.Add(1)
	if c.delay > 0 {
		select {
		case <-time.After(c.delay):
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	if strings.Contains(text, "crap") {
		return "", domainerrors.ErrRejected
	}
	return text, nil
}

func TestCheckEmptyText(t *testing.T) {
	svc := Service{Classifier: &echoClassifier{}}

	for _, text := range []string{"", "   ", "\t\n"} {
		if _, err := svc.Check(context.Background(), text); !errors.Is(err, domainerrors.ErrEmptyText) {
			t.Fatalf("text %q: expected empty-text error, got %v", text, err)
		}
	}
}

func TestCheckPassesCleanText(t *testing.T) {
	svc := Service{Classifier: &echoClassifier{}}

	cleaned, err := svc.Check(context.Background(), "a perfectly fine sentence")
	if err != nil {
		t.Fatalf("check failed: %v", err)
	}
	if cleaned != "a perfectly fine sentence" {
		t.Fatalf("expected pass-through text, got %q", cleaned)
	}
}

func TestCheckAllPreservesInputOrder(t *testing.T) {
	svc := Service{Classifier: &echoClassifier{}}

	cleaned, err := svc.CheckAll(context.Background(), "first", "second", "third")
	if err != nil {
		t.Fatalf("check all failed: %v", err)
	}
	want := []string{"first", "second", "third"}
	for i, text := range want {
		if cleaned[i] != text {
			t.Fatalf("position %d: expected %q, got %q", i, text, cleaned[i])
		}
	}
}

func TestCheckAllFailsFastOnRejection(t *testing.T) {
	svc := Service{Classifier: &echoClassifier{}}

	_, err := svc.CheckAll(context.Background(), "fine title", "crap content")
	if !errors.Is(err, domainerrors.ErrRejected) {
		t.Fatalf("expected rejection, got %v", err)
	}
}

func TestCheckAllCancelsSiblingsOnFailure(t *testing.T) {
	classifier := &echoClassifier{delay: 50 * time.Millisecond}
	svc := Service{Classifier: classifier}

	start := time.Now()
	_, err := svc.CheckAll(context.Background(), "crap", "slow sibling")
	if !errors.Is(err, domainerrors.ErrRejected) {
		t.Fatalf("expected rejection, got %v", err)
	}
	// The immediate rejection must not wait for the slow sibling's full delay
	// to elapse unobserved; the group context cancels it.
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("check all took %v, cancellation did not propagate", elapsed)
	}
}

func TestCheckAllEmptyFieldIsInvalid(t *testing.T) {
	svc := Service{Classifier: &echoClassifier{}}

	_, err := svc.CheckAll(context.Background(), "ok", "   ")
	if !errors.Is(err, domainerrors.ErrEmptyText) {
		t.Fatalf("expected empty-text error, got %v", err)
	}
}
