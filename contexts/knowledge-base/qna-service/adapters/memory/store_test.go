package memory

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"minerva/contexts/knowledge-base/qna-service/domain/entities"
	domainerrors "minerva/contexts/knowledge-base/qna-service/domain/errors"
	"minerva/contexts/knowledge-base/qna-service/domain/pagination"
)

func seedQuestions(t *testing.T, store *Store, n int) []string {
	t.Helper()
	ids := make([]string, 0, n)
	for i := 0; i < n; i++ {
		id := fmt.Sprintf("q-%d", i)
		err := store.CreateQuestion(context.Background(), entities.Question{
			QuestionID: id,
			Title:      fmt.Sprintf("title %d", i),
			Content:    "content",
			OwnerID:    "owner",
			CreatedAt:  time.Date(2026, time.March, 1, 0, 0, i, 0, time.UTC),
		})
		if err != nil {
			t.Fatalf("seed create failed: %v", err)
		}
		ids = append(ids, id)
	}
	return ids
}

func TestListQuestionsPreservesInsertionOrder(t *testing.T) {
	store := NewStore()
	ids := seedQuestions(t, store, 5)

	listed, err := store.ListQuestions(context.Background(), pagination.Page{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(listed) != 5 {
		t.Fatalf("expected 5 questions, got %d", len(listed))
	}
	for i, question := range listed {
		if question.QuestionID != ids[i] {
			t.Fatalf("position %d: expected %s, got %s", i, ids[i], question.QuestionID)
		}
	}
}

func TestListQuestionsWindow(t *testing.T) {
	store := NewStore()
	seedQuestions(t, store, 5)
	limit := 2

	listed, err := store.ListQuestions(context.Background(), pagination.Page{Limit: &limit, Offset: 1})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(listed) != 2 || listed[0].QuestionID != "q-1" || listed[1].QuestionID != "q-2" {
		t.Fatalf("expected window [q-1 q-2], got %v", listed)
	}
}

func TestListQuestionsOffsetPastEnd(t *testing.T) {
	store := NewStore()
	seedQuestions(t, store, 2)

	listed, err := store.ListQuestions(context.Background(), pagination.Page{Offset: 7})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if listed == nil || len(listed) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", listed)
	}
}

func TestListQuestionsLimitBeyondRemainder(t *testing.T) {
	store := NewStore()
	seedQuestions(t, store, 3)
	limit := 10

	listed, err := store.ListQuestions(context.Background(), pagination.Page{Limit: &limit, Offset: 2})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(listed) != 1 || listed[0].QuestionID != "q-2" {
		t.Fatalf("expected the single trailing question, got %v", listed)
	}
}

func TestDeleteQuestionRemovesFromOrderAndAnswers(t *testing.T) {
	store := NewStore()
	seedQuestions(t, store, 2)

	err := store.CreateAnswer(context.Background(), entities.Answer{
		AnswerID:   "a-1",
		Content:    "answer",
		QuestionID: "q-0",
		OwnerID:    "helper",
	})
	if err != nil {
		t.Fatalf("create answer failed: %v", err)
	}

	if err := store.DeleteQuestion(context.Background(), "q-0"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := store.DeleteQuestion(context.Background(), "q-0"); !errors.Is(err, domainerrors.ErrQuestionNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}

	listed, err := store.ListQuestions(context.Background(), pagination.Page{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(listed) != 1 || listed[0].QuestionID != "q-1" {
		t.Fatalf("expected only q-1 to remain, got %v", listed)
	}

	answers, err := store.ListAnswers(context.Background(), "q-0", pagination.Page{})
	if err != nil {
		t.Fatalf("list answers failed: %v", err)
	}
	if len(answers) != 0 {
		t.Fatalf("expected answers removed with their question, got %v", answers)
	}
}

func TestUpdateQuestionMissing(t *testing.T) {
	store := NewStore()

	err := store.UpdateQuestion(context.Background(), entities.Question{QuestionID: "ghost"})
	if !errors.Is(err, domainerrors.ErrQuestionNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestCreateAnswerRequiresExistingQuestion(t *testing.T) {
	store := NewStore()

	err := store.CreateAnswer(context.Background(), entities.Answer{
		AnswerID:   "a-1",
		Content:    "answer",
		QuestionID: "ghost",
	})
	if !errors.Is(err, domainerrors.ErrQuestionNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
