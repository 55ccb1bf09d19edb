package ports

import (
	"context"
	"time"

	"minerva/contexts/knowledge-base/qna-service/domain/entities"
	"minerva/contexts/knowledge-base/qna-service/domain/pagination"
)

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

type NewQuestion struct {
	Title   string
	Content string
	Tags    []string
}

// QuestionPatch is a full replacement of the mutable fields. QuestionID and
// OwnerID are immutable.
type QuestionPatch struct {
	Title   string
	Content string
	Tags    []string
}

type NewAnswer struct {
	Content    string
	QuestionID string
}

type QuestionRepository interface {
	// ListQuestions returns questions in stored order, windowed by page.
	// An offset past the end yields an empty slice.
	ListQuestions(ctx context.Context, page pagination.Page) ([]entities.Question, error)
	GetQuestion(ctx context.Context, questionID string) (entities.Question, error)
	CreateQuestion(ctx context.Context, question entities.Question) error
	// UpdateQuestion replaces title/content/tags of an existing row. Returns
	// the domain not-found error when the row no longer exists.
	UpdateQuestion(ctx context.Context, question entities.Question) error
	// DeleteQuestion removes the row. A second delete of the same id returns
	// the domain not-found error.
	DeleteQuestion(ctx context.Context, questionID string) error
}

type AnswerRepository interface {
	// CreateAnswer persists the answer. When the referenced question does not
	// exist it returns the domain question-not-found error and writes nothing.
	CreateAnswer(ctx context.Context, answer entities.Answer) error
	ListAnswers(ctx context.Context, questionID string, page pagination.Page) ([]entities.Answer, error)
}

// ContentModerator gates free-text fields. Implementations return the cleaned
// texts in input order, ErrContentRejected on a violation and
// ErrContentCheckUnavailable when no verdict could be produced; multiple
// fields are checked concurrently with fail-fast semantics.
type ContentModerator interface {
	CheckAll(ctx context.Context, texts ...string) ([]string, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, eventType string, entityType string, entityID string, payload any) error
}
