package wordlist

import (
	"context"
	"fmt"
	"strings"

	domainerrors "minerva/contexts/trust-safety/moderation-service/domain/errors"
)

// Classifier is the offline fallback used when no classifier API key is
// configured. It matches whole lowercased words against a fixed list.
type Classifier struct {
	blocked map[string]struct{}
}

var defaultBlocked = []string{
	"shitty",
	"crap",
	"ass",
	"bastard",
	"moron",
	"idiot",
}

func NewClassifier(extra ...string) *Classifier {
	blocked := make(map[string]struct{}, len(defaultBlocked)+len(extra))
	for _, word := range defaultBlocked {
		blocked[word] = struct{}{}
	}
	for _, word := range extra {
		word = strings.ToLower(strings.TrimSpace(word))
		if word != "" {
			blocked[word] = struct{}{}
		}
	}
	return &Classifier{blocked: blocked}
}

func (c *Classifier) Classify(_ context.Context, text string) (string, error) {
	flagged := 0
	for _, word := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z' || '0' <= r && r <= '9' || r == '\'')
	}) {
		if _, ok := c.blocked[word]; ok {
			flagged++
		}
	}
	if flagged > 0 {
		return "", fmt.Errorf("%w: %d flagged terms", domainerrors.ErrRejected, flagged)
	}
	return text, nil
}
