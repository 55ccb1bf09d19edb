package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	qnaerrors "minerva/contexts/knowledge-base/qna-service/domain/errors"
	qnahttp "minerva/contexts/knowledge-base/qna-service/transport/http"
)

func (s *Server) handleListQuestions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	resp, err := s.qna.Handler.ListQuestionsHandler(r.Context(), query.Get("limit"), query.Get("offset"))
	if err != nil {
		s.writeQnaDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetQuestion(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("question_id")
	resp, err := s.qna.Handler.GetQuestionHandler(r.Context(), questionID)
	if err != nil {
		s.writeQnaDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateQuestion(w http.ResponseWriter, r *http.Request) {
	session, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	var req qnahttp.CreateQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.qna.Handler.CreateQuestionHandler(r.Context(), session.AccountID, req)
	if err != nil {
		s.writeQnaDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateQuestion(w http.ResponseWriter, r *http.Request) {
	session, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	var req qnahttp.UpdateQuestionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	questionID := r.PathValue("question_id")
	resp, err := s.qna.Handler.UpdateQuestionHandler(r.Context(), questionID, session.AccountID, req)
	if err != nil {
		s.writeQnaDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteQuestion(w http.ResponseWriter, r *http.Request) {
	session, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	questionID := r.PathValue("question_id")
	if err := s.qna.Handler.DeleteQuestionHandler(r.Context(), questionID, session.AccountID); err != nil {
		s.writeQnaDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

func (s *Server) handleCreateAnswer(w http.ResponseWriter, r *http.Request) {
	session, ok := s.authenticate(w, r)
	if !ok {
		return
	}

	var req qnahttp.CreateAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.qna.Handler.CreateAnswerHandler(r.Context(), session.AccountID, req)
	if err != nil {
		s.writeQnaDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListAnswers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	questionID := r.PathValue("question_id")
	resp, err := s.qna.Handler.ListAnswersHandler(r.Context(), questionID, query.Get("limit"), query.Get("offset"))
	if err != nil {
		s.writeQnaDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// writeQnaDomainError maps every failure kind of the question/answer flows to
// its stable status. Ownership failures share the authentication-failure
// signal so the endpoint leaks nothing about resource ownership.
func (s *Server) writeQnaDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, qnaerrors.ErrQuestionNotFound):
		writeError(w, http.StatusNotFound, "question_not_found", err.Error())
	case errors.Is(err, qnaerrors.ErrForbidden):
		writeError(w, http.StatusUnauthorized, "unauthorized", "invalid or missing session token")
	case errors.Is(err, qnaerrors.ErrInvalidQuestionInput):
		writeError(w, http.StatusBadRequest, "invalid_question", err.Error())
	case errors.Is(err, qnaerrors.ErrInvalidAnswerInput):
		writeError(w, http.StatusBadRequest, "invalid_answer", err.Error())
	case errors.Is(err, qnaerrors.ErrInvalidPagination):
		writeError(w, http.StatusBadRequest, "invalid_pagination", err.Error())
	case errors.Is(err, qnaerrors.ErrContentRejected):
		writeError(w, http.StatusUnprocessableEntity, "content_rejected", "content violates policy")
	default:
		s.logger.Error("qna request failed",
			"event", "qna_request_failed",
			"module", "internal/platform/httpserver",
			"layer", "platform",
			"error", err.Error(),
		)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
