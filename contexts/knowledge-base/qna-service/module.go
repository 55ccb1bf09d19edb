package qnaservice

import (
	"log/slog"

	httpadapter "minerva/contexts/knowledge-base/qna-service/adapters/http"
	"minerva/contexts/knowledge-base/qna-service/adapters/memory"
	"minerva/contexts/knowledge-base/qna-service/application"
	"minerva/contexts/knowledge-base/qna-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Questions ports.QuestionRepository
	Answers   ports.AnswerRepository
	Moderator ports.ContentModerator
	Clock     ports.Clock
	IDGen     ports.IDGenerator
	Events    ports.EventPublisher
	Logger    *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Questions: deps.Questions,
		Answers:   deps.Answers,
		Moderator: deps.Moderator,
		Clock:     deps.Clock,
		IDGen:     deps.IDGen,
		Events:    deps.Events,
		Logger:    deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
	}
}

// NewInMemoryModule wires the in-memory repository. Development and tests
// only; the moderator still has to be supplied by the caller.
func NewInMemoryModule(moderator ports.ContentModerator, logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Questions: store,
		Answers:   store,
		Moderator: moderator,
		Clock:     store,
		IDGen:     store,
		Logger:    logger,
	})
	module.Store = store
	return module
}
