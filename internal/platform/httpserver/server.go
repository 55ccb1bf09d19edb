package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	accountservice "minerva/contexts/identity-access/account-service"
	accountports "minerva/contexts/identity-access/account-service/ports"
	qnaservice "minerva/contexts/knowledge-base/qna-service"

	httpSwagger "github.com/swaggo/http-swagger"

	_ "minerva/internal/platform/httpserver/docs"
)

type Server struct {
	mux      *http.ServeMux
	logger   *slog.Logger
	addr     string
	qna      qnaservice.Module
	accounts accountservice.Module
}

func New(
	qna qnaservice.Module,
	accounts accountservice.Module,
	logger *slog.Logger,
	addr string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:      http.NewServeMux(),
		logger:   logger,
		addr:     addr,
		qna:      qna,
		accounts: accounts,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("POST /registration", s.handleRegister)
	s.mux.HandleFunc("POST /login", s.handleLogin)

	s.mux.HandleFunc("GET /questions", s.handleListQuestions)
	s.mux.HandleFunc("GET /questions/{question_id}", s.handleGetQuestion)
	s.mux.HandleFunc("POST /questions", s.handleCreateQuestion)
	s.mux.HandleFunc("PUT /questions/{question_id}", s.handleUpdateQuestion)
	s.mux.HandleFunc("DELETE /questions/{question_id}", s.handleDeleteQuestion)

	s.mux.HandleFunc("GET /questions/{question_id}/answers", s.handleListAnswers)
	s.mux.HandleFunc("POST /answers", s.handleCreateAnswer)
}

// authenticate resolves the bearer token into a session. On failure it writes
// the 401 response and reports false; missing, malformed and expired tokens
// are indistinguishable to the caller.
func (s *Server) authenticate(w http.ResponseWriter, r *http.Request) (accountports.Session, bool) {
	session, err := s.accounts.Handler.VerifySessionHandler(r.Header.Get("Authorization"))
	if err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized", "invalid or missing session token")
		return accountports.Session{}, false
	}
	return session, true
}

func writeError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, map[string]string{
		"code":    code,
		"message": message,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
