package application

import (
	"context"
	"errors"
	"strings"
	"testing"

	"minerva/contexts/knowledge-base/qna-service/adapters/memory"
	domainerrors "minerva/contexts/knowledge-base/qna-service/domain/errors"
	"minerva/contexts/knowledge-base/qna-service/domain/pagination"
	"minerva/contexts/knowledge-base/qna-service/ports"
)

// passModerator returns every text unchanged unless it contains a blocked
// marker, in which case it reports the policy verdict for that text.
type passModerator struct{}

func (passModerator) CheckAll(_ context.Context, texts ...string) ([]string, error) {
	cleaned := make([]string, len(texts))
	for i, text := range texts {
		if strings.Contains(text, "crap") {
			return nil, domainerrors.ErrContentRejected
		}
		cleaned[i] = text
	}
	return cleaned, nil
}

type unavailableModerator struct{}

func (unavailableModerator) CheckAll(context.Context, ...string) ([]string, error) {
	return nil, domainerrors.ErrContentCheckUnavailable
}

func newTestService() Service {
	store := memory.NewStore()
	return Service{
		Questions: store,
		Answers:   store,
		Moderator: passModerator{},
		Clock:     store,
		IDGen:     store,
	}
}

func TestCreateQuestionTrimsAndStores(t *testing.T) {
	svc := newTestService()

	created, err := svc.CreateQuestion(context.Background(), ports.NewQuestion{
		Title:   "  How do goroutines leak?  ",
		Content: "  I keep seeing growth in pprof.  ",
		Tags:    []string{" go ", "go", "", "pprof"},
	}, "acct-1")
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.Title != "How do goroutines leak?" {
		t.Fatalf("expected trimmed title, got %q", created.Title)
	}
	if created.OwnerID != "acct-1" {
		t.Fatalf("expected owner acct-1, got %q", created.OwnerID)
	}
	if len(created.Tags) != 2 || created.Tags[0] != "go" || created.Tags[1] != "pprof" {
		t.Fatalf("expected deduplicated tags [go pprof], got %v", created.Tags)
	}

	stored, err := svc.GetQuestion(context.Background(), created.QuestionID)
	if err != nil {
		t.Fatalf("get after create failed: %v", err)
	}
	if stored.Title != created.Title {
		t.Fatalf("stored title %q does not match created %q", stored.Title, created.Title)
	}
}

func TestCreateQuestionRequiresTitleAndContent(t *testing.T) {
	svc := newTestService()

	_, err := svc.CreateQuestion(context.Background(), ports.NewQuestion{Title: "   ", Content: "body"}, "acct-1")
	if !errors.Is(err, domainerrors.ErrInvalidQuestionInput) {
		t.Fatalf("expected invalid input for blank title, got %v", err)
	}
	_, err = svc.CreateQuestion(context.Background(), ports.NewQuestion{Title: "title", Content: ""}, "acct-1")
	if !errors.Is(err, domainerrors.ErrInvalidQuestionInput) {
		t.Fatalf("expected invalid input for empty content, got %v", err)
	}
}

func TestCreateQuestionRejectedContentWritesNothing(t *testing.T) {
	svc := newTestService()

	_, err := svc.CreateQuestion(context.Background(), ports.NewQuestion{
		Title:   "ok title",
		Content: "this is crap",
	}, "acct-1")
	if !errors.Is(err, domainerrors.ErrContentRejected) {
		t.Fatalf("expected content rejected, got %v", err)
	}

	listed, err := svc.ListQuestions(context.Background(), pagination.Page{})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("expected no stored questions after rejection, got %d", len(listed))
	}
}

func TestCreateQuestionModeratorUnavailableAborts(t *testing.T) {
	svc := newTestService()
	svc.Moderator = unavailableModerator{}

	_, err := svc.CreateQuestion(context.Background(), ports.NewQuestion{Title: "t", Content: "c"}, "acct-1")
	if !errors.Is(err, domainerrors.ErrContentCheckUnavailable) {
		t.Fatalf("expected check unavailable, got %v", err)
	}
}

func TestUpdateQuestionMissingReportsNotFoundBeforeOwnership(t *testing.T) {
	svc := newTestService()

	_, err := svc.UpdateQuestion(context.Background(), "missing", ports.QuestionPatch{
		Title:   "new title",
		Content: "new content",
	}, "someone-else")
	if !errors.Is(err, domainerrors.ErrQuestionNotFound) {
		t.Fatalf("expected not found for missing question, got %v", err)
	}
}

func TestUpdateQuestionByNonOwnerForbidden(t *testing.T) {
	svc := newTestService()

	created, err := svc.CreateQuestion(context.Background(), ports.NewQuestion{Title: "t", Content: "c"}, "owner")
	if err != nil {
		t.Fatalf("seed create failed: %v", err)
	}

	_, err = svc.UpdateQuestion(context.Background(), created.QuestionID, ports.QuestionPatch{
		Title:   "hijacked",
		Content: "hijacked",
	}, "intruder")
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected forbidden for non-owner, got %v", err)
	}

	stored, err := svc.GetQuestion(context.Background(), created.QuestionID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if stored.Title != "t" {
		t.Fatalf("expected unchanged title after forbidden update, got %q", stored.Title)
	}
}

func TestUpdateQuestionReplacesFieldsAndKeepsIdentity(t *testing.T) {
	svc := newTestService()

	created, err := svc.CreateQuestion(context.Background(), ports.NewQuestion{
		Title:   "old",
		Content: "old content",
		Tags:    []string{"old"},
	}, "owner")
	if err != nil {
		t.Fatalf("seed create failed: %v", err)
	}

	updated, err := svc.UpdateQuestion(context.Background(), created.QuestionID, ports.QuestionPatch{
		Title:   "new",
		Content: "new content",
	}, "owner")
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.QuestionID != created.QuestionID || updated.OwnerID != "owner" {
		t.Fatalf("expected identity preserved, got id=%q owner=%q", updated.QuestionID, updated.OwnerID)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("expected created timestamp preserved")
	}
	// Omitted tags are a full replacement with the empty set.
	if len(updated.Tags) != 0 {
		t.Fatalf("expected tags cleared on replacement, got %v", updated.Tags)
	}
}

func TestDeleteQuestionNotIdempotent(t *testing.T) {
	svc := newTestService()

	created, err := svc.CreateQuestion(context.Background(), ports.NewQuestion{Title: "t", Content: "c"}, "owner")
	if err != nil {
		t.Fatalf("seed create failed: %v", err)
	}

	if err := svc.DeleteQuestion(context.Background(), created.QuestionID, "owner"); err != nil {
		t.Fatalf("first delete failed: %v", err)
	}
	err = svc.DeleteQuestion(context.Background(), created.QuestionID, "owner")
	if !errors.Is(err, domainerrors.ErrQuestionNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestDeleteQuestionByNonOwnerForbidden(t *testing.T) {
	svc := newTestService()

	created, err := svc.CreateQuestion(context.Background(), ports.NewQuestion{Title: "t", Content: "c"}, "owner")
	if err != nil {
		t.Fatalf("seed create failed: %v", err)
	}

	err = svc.DeleteQuestion(context.Background(), created.QuestionID, "intruder")
	if !errors.Is(err, domainerrors.ErrForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if _, err := svc.GetQuestion(context.Background(), created.QuestionID); err != nil {
		t.Fatalf("question should survive forbidden delete: %v", err)
	}
}

func TestCreateAnswerForMissingQuestion(t *testing.T) {
	svc := newTestService()

	_, err := svc.CreateAnswer(context.Background(), ports.NewAnswer{
		Content:    "an answer",
		QuestionID: "missing",
	}, "acct-1")
	if !errors.Is(err, domainerrors.ErrQuestionNotFound) {
		t.Fatalf("expected not found for dangling answer, got %v", err)
	}
}

func TestCreateAnswerAndList(t *testing.T) {
	svc := newTestService()

	question, err := svc.CreateQuestion(context.Background(), ports.NewQuestion{Title: "t", Content: "c"}, "asker")
	if err != nil {
		t.Fatalf("seed create failed: %v", err)
	}

	answer, err := svc.CreateAnswer(context.Background(), ports.NewAnswer{
		Content:    "  try pprof  ",
		QuestionID: question.QuestionID,
	}, "helper")
	if err != nil {
		t.Fatalf("create answer failed: %v", err)
	}
	if answer.Content != "try pprof" {
		t.Fatalf("expected trimmed content, got %q", answer.Content)
	}

	listed, err := svc.ListAnswers(context.Background(), question.QuestionID, pagination.Page{})
	if err != nil {
		t.Fatalf("list answers failed: %v", err)
	}
	if len(listed) != 1 || listed[0].AnswerID != answer.AnswerID {
		t.Fatalf("expected the created answer in listing, got %v", listed)
	}
}

func TestListQuestionsPastEndIsEmpty(t *testing.T) {
	svc := newTestService()

	if _, err := svc.CreateQuestion(context.Background(), ports.NewQuestion{Title: "t", Content: "c"}, "owner"); err != nil {
		t.Fatalf("seed create failed: %v", err)
	}

	listed, err := svc.ListQuestions(context.Background(), pagination.Page{Offset: 10})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if listed == nil || len(listed) != 0 {
		t.Fatalf("expected empty non-nil result past the end, got %v", listed)
	}
}
