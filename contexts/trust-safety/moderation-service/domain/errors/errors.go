package errors

import "errors"

var (
	// ErrRejected means the classifier flagged the text. Terminal; callers
	// must not retry.
	ErrRejected = errors.New("content violates policy")

	// ErrServiceUnavailable means the classifier could not produce a verdict
	// (transport failure, 5xx, rate limit exhausted). Retryable by caller.
	ErrServiceUnavailable = errors.New("content policy service unavailable")

	ErrEmptyText = errors.New("text is required")
)
