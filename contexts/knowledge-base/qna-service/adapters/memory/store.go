package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"minerva/contexts/knowledge-base/qna-service/domain/entities"
	domainerrors "minerva/contexts/knowledge-base/qna-service/domain/errors"
	"minerva/contexts/knowledge-base/qna-service/domain/pagination"
)

// Store is the in-memory question/answer repository used in development and
// tests. Listing preserves insertion order, matching the relational
// adapter's stored-order guarantee.
type Store struct {
	mu        sync.RWMutex
	questions map[string]entities.Question
	order     []string
	answers   map[string][]entities.Answer // keyed by question id
}

func NewStore() *Store {
	return &Store{
		questions: make(map[string]entities.Question),
		answers:   make(map[string][]entities.Answer),
	}
}

func (s *Store) ListQuestions(_ context.Context, page pagination.Page) ([]entities.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if page.Offset >= len(s.order) {
		return []entities.Question{}, nil
	}

	ids := s.order[page.Offset:]
	if page.Limit != nil && *page.Limit < len(ids) {
		ids = ids[:*page.Limit]
	}

	items := make([]entities.Question, 0, len(ids))
	for _, id := range ids {
		items = append(items, s.questions[id])
	}
	return items, nil
}

func (s *Store) GetQuestion(_ context.Context, questionID string) (entities.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	question, ok := s.questions[questionID]
	if !ok {
		return entities.Question{}, domainerrors.ErrQuestionNotFound
	}
	return question, nil
}

func (s *Store) CreateQuestion(_ context.Context, question entities.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.questions[question.QuestionID]; !exists {
		s.order = append(s.order, question.QuestionID)
	}
	s.questions[question.QuestionID] = question
	return nil
}

func (s *Store) UpdateQuestion(_ context.Context, question entities.Question) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.questions[question.QuestionID]; !exists {
		return domainerrors.ErrQuestionNotFound
	}
	s.questions[question.QuestionID] = question
	return nil
}

func (s *Store) DeleteQuestion(_ context.Context, questionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.questions[questionID]; !exists {
		return domainerrors.ErrQuestionNotFound
	}
	delete(s.questions, questionID)
	delete(s.answers, questionID)
	for i, id := range s.order {
		if id == questionID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func (s *Store) CreateAnswer(_ context.Context, answer entities.Answer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.questions[answer.QuestionID]; !exists {
		return domainerrors.ErrQuestionNotFound
	}
	s.answers[answer.QuestionID] = append(s.answers[answer.QuestionID], answer)
	return nil
}

func (s *Store) ListAnswers(_ context.Context, questionID string, page pagination.Page) ([]entities.Answer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored := s.answers[questionID]
	if page.Offset >= len(stored) {
		return []entities.Answer{}, nil
	}

	items := stored[page.Offset:]
	if page.Limit != nil && *page.Limit < len(items) {
		items = items[:*page.Limit]
	}
	return append([]entities.Answer(nil), items...), nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}

func (s *Store) NewID(_ context.Context) (string, error) {
	return uuid.NewString(), nil
}
