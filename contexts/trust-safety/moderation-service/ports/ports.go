package ports

import "context"

// Classifier is the external text-classification collaborator. Implementations
// return the cleaned text on a pass verdict, domainerrors.ErrRejected on a
// violation verdict and domainerrors.ErrServiceUnavailable when no verdict
// could be produced.
type Classifier interface {
	Classify(ctx context.Context, text string) (string, error)
}
