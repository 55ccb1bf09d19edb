package application

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	domainerrors "minerva/contexts/trust-safety/moderation-service/domain/errors"
	"minerva/contexts/trust-safety/moderation-service/ports"
)

type Service struct {
	Classifier ports.Classifier
	Logger     *slog.Logger
}

// Check runs a single text through the classifier.
func (s Service) Check(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", domainerrors.ErrEmptyText
	}

	cleaned, err := s.Classifier.Classify(ctx, text)
	if err != nil {
		if errors.Is(err, domainerrors.ErrServiceUnavailable) && s.Logger != nil {
			s.Logger.Error("content classifier unavailable",
				"event", "moderation_classifier_unavailable",
				"module", "contexts/trust-safety/moderation-service",
				"layer", "application",
				"error", err.Error(),
			)
		}
		return "", err
	}
	return cleaned, nil
}

// CheckAll classifies every text concurrently. The first failure cancels the
// sibling checks and is returned without waiting for them; on success the
// cleaned texts come back in input order.
func (s Service) CheckAll(ctx context.Context, texts ...string) ([]string, error) {
	cleaned := make([]string, len(texts))

	group, groupCtx := errgroup.WithContext(ctx)
	for i, text := range texts {
		group.Go(func() error {
			result, err := s.Check(groupCtx, text)
			if err != nil {
				return err
			}
			cleaned[i] = result
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return cleaned, nil
}
