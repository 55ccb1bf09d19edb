package application

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"minerva/contexts/knowledge-base/qna-service/domain/entities"
	domainerrors "minerva/contexts/knowledge-base/qna-service/domain/errors"
	"minerva/contexts/knowledge-base/qna-service/domain/pagination"
	"minerva/contexts/knowledge-base/qna-service/ports"
	"minerva/internal/shared/events"
)

type Service struct {
	Questions ports.QuestionRepository
	Answers   ports.AnswerRepository
	Moderator ports.ContentModerator
	Clock     ports.Clock
	IDGen     ports.IDGenerator
	Events    ports.EventPublisher
	Logger    *slog.Logger
}

func (s Service) ListQuestions(ctx context.Context, page pagination.Page) ([]entities.Question, error) {
	return s.Questions.ListQuestions(ctx, page)
}

func (s Service) GetQuestion(ctx context.Context, questionID string) (entities.Question, error) {
	if strings.TrimSpace(questionID) == "" {
		return entities.Question{}, domainerrors.ErrQuestionNotFound
	}
	return s.Questions.GetQuestion(ctx, questionID)
}

func (s Service) CreateQuestion(ctx context.Context, input ports.NewQuestion, ownerID string) (entities.Question, error) {
	title := strings.TrimSpace(input.Title)
	content := strings.TrimSpace(input.Content)
	if title == "" || content == "" {
		return entities.Question{}, domainerrors.ErrInvalidQuestionInput
	}

	cleaned, err := s.Moderator.CheckAll(ctx, title, content)
	if err != nil {
		return entities.Question{}, err
	}

	questionID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.Question{}, err
	}

	now := s.now()
	question := entities.Question{
		QuestionID: questionID,
		Title:      cleaned[0],
		Content:    cleaned[1],
		Tags:       normalizeTags(input.Tags),
		OwnerID:    ownerID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Questions.CreateQuestion(ctx, question); err != nil {
		return entities.Question{}, err
	}

	s.publish(ctx, events.TypeQuestionCreated, question.QuestionID, questionPayload(question))
	return question, nil
}

// UpdateQuestion fully replaces the mutable fields of a question owned by the
// acting account. A missing question reports not-found before any ownership
// verdict.
func (s Service) UpdateQuestion(ctx context.Context, questionID string, patch ports.QuestionPatch, actingAccountID string) (entities.Question, error) {
	title := strings.TrimSpace(patch.Title)
	content := strings.TrimSpace(patch.Content)
	if title == "" || content == "" {
		return entities.Question{}, domainerrors.ErrInvalidQuestionInput
	}

	stored, err := s.Questions.GetQuestion(ctx, questionID)
	if err != nil {
		return entities.Question{}, err
	}
	if stored.OwnerID != actingAccountID {
		return entities.Question{}, domainerrors.ErrForbidden
	}

	cleaned, err := s.Moderator.CheckAll(ctx, title, content)
	if err != nil {
		return entities.Question{}, err
	}

	updated := entities.Question{
		QuestionID: stored.QuestionID,
		Title:      cleaned[0],
		Content:    cleaned[1],
		Tags:       normalizeTags(patch.Tags),
		OwnerID:    stored.OwnerID,
		CreatedAt:  stored.CreatedAt,
		UpdatedAt:  s.now(),
	}
	if err := s.Questions.UpdateQuestion(ctx, updated); err != nil {
		return entities.Question{}, err
	}

	s.publish(ctx, events.TypeQuestionUpdated, updated.QuestionID, questionPayload(updated))
	return updated, nil
}

// DeleteQuestion removes a question owned by the acting account. Deletion is
// not idempotent: a second call for the same id reports not-found.
func (s Service) DeleteQuestion(ctx context.Context, questionID string, actingAccountID string) error {
	stored, err := s.Questions.GetQuestion(ctx, questionID)
	if err != nil {
		return err
	}
	if stored.OwnerID != actingAccountID {
		return domainerrors.ErrForbidden
	}

	if err := s.Questions.DeleteQuestion(ctx, questionID); err != nil {
		return err
	}

	s.publish(ctx, events.TypeQuestionDeleted, questionID, questionPayload(stored))
	return nil
}

func (s Service) CreateAnswer(ctx context.Context, input ports.NewAnswer, ownerID string) (entities.Answer, error) {
	content := strings.TrimSpace(input.Content)
	questionID := strings.TrimSpace(input.QuestionID)
	if content == "" || questionID == "" {
		return entities.Answer{}, domainerrors.ErrInvalidAnswerInput
	}

	cleaned, err := s.Moderator.CheckAll(ctx, content)
	if err != nil {
		return entities.Answer{}, err
	}

	answerID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return entities.Answer{}, err
	}

	answer := entities.Answer{
		AnswerID:   answerID,
		Content:    cleaned[0],
		QuestionID: questionID,
		OwnerID:    ownerID,
		CreatedAt:  s.now(),
	}
	if err := s.Answers.CreateAnswer(ctx, answer); err != nil {
		return entities.Answer{}, err
	}

	s.publish(ctx, events.TypeAnswerCreated, answer.AnswerID, events.AnswerPayload{
		AnswerID:   answer.AnswerID,
		QuestionID: answer.QuestionID,
		OwnerID:    answer.OwnerID,
	})
	return answer, nil
}

func (s Service) ListAnswers(ctx context.Context, questionID string, page pagination.Page) ([]entities.Answer, error) {
	if strings.TrimSpace(questionID) == "" {
		return nil, domainerrors.ErrQuestionNotFound
	}
	return s.Answers.ListAnswers(ctx, questionID, page)
}

func (s Service) publish(ctx context.Context, eventType string, entityID string, payload any) {
	if s.Events == nil {
		return
	}
	entityType := "question"
	if eventType == events.TypeAnswerCreated {
		entityType = "answer"
	}
	if err := s.Events.Publish(ctx, eventType, entityType, entityID, payload); err != nil && s.Logger != nil {
		s.Logger.Warn("event publish failed",
			"event", "qna_event_publish_failed",
			"module", "contexts/knowledge-base/qna-service",
			"layer", "application",
			"event_type", eventType,
			"error", err.Error(),
		)
	}
}

func questionPayload(question entities.Question) events.QuestionPayload {
	return events.QuestionPayload{
		QuestionID: question.QuestionID,
		Title:      question.Title,
		Tags:       question.Tags,
		OwnerID:    question.OwnerID,
	}
}

func (s Service) now() time.Time {
	if s.Clock == nil {
		return time.Now().UTC()
	}
	return s.Clock.Now().UTC()
}

// normalizeTags trims, drops empties and deduplicates while preserving the
// caller's order.
func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	normalized := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		normalized = append(normalized, tag)
	}
	return normalized
}
