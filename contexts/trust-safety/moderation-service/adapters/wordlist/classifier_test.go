package wordlist

import (
	"context"
	"errors"
	"testing"

	domainerrors "minerva/contexts/trust-safety/moderation-service/domain/errors"
)

func TestClassifyPassesCleanText(t *testing.T) {
	classifier := NewClassifier()

	text := "How do I structure a Go module?"
	cleaned, err := classifier.Classify(context.Background(), text)
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}
	if cleaned != text {
		t.Fatalf("expected pass-through text, got %q", cleaned)
	}
}

func TestClassifyFlagsBlockedWord(t *testing.T) {
	classifier := NewClassifier()

	_, err := classifier.Classify(context.Background(), "this framework is crap")
	if !errors.Is(err, domainerrors.ErrRejected) {
		t.Fatalf("expected rejection, got %v", err)
	}
}

func TestClassifyIsCaseInsensitiveAndPunctuationAware(t *testing.T) {
	classifier := NewClassifier()

	_, err := classifier.Classify(context.Background(), "total CRAP, honestly!")
	if !errors.Is(err, domainerrors.ErrRejected) {
		t.Fatalf("expected rejection, got %v", err)
	}
}

func TestClassifyMatchesWholeWordsOnly(t *testing.T) {
	classifier := NewClassifier()

	// "crappy" and "classic" contain blocked substrings but are not listed
	// words themselves.
	if _, err := classifier.Classify(context.Background(), "scrappy classic assessment"); err != nil {
		t.Fatalf("expected substring-only text to pass, got %v", err)
	}
}

func TestClassifyHonorsExtraWords(t *testing.T) {
	classifier := NewClassifier("Banana")

	_, err := classifier.Classify(context.Background(), "banana for scale")
	if !errors.Is(err, domainerrors.ErrRejected) {
		t.Fatalf("expected rejection for extra word, got %v", err)
	}
}
