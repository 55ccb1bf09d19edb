package errors

import "errors"

var (
	ErrInvalidQuestionInput = errors.New("title and content are required")
	ErrInvalidAnswerInput   = errors.New("content and question id are required")
	ErrInvalidPagination    = errors.New("invalid pagination parameters")

	ErrQuestionNotFound = errors.New("question not found")

	// ErrForbidden means the acting account is not the owner of the resource
	// it tries to mutate.
	ErrForbidden = errors.New("not the resource owner")

	// ErrContentRejected is the terminal content-policy violation verdict.
	ErrContentRejected = errors.New("content violates policy")

	// ErrContentCheckUnavailable means no policy verdict could be produced;
	// the operation is aborted without writing.
	ErrContentCheckUnavailable = errors.New("content policy check unavailable")
)
