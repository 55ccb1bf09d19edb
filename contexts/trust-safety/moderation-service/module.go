package moderationservice

import (
	"log/slog"

	"minerva/contexts/trust-safety/moderation-service/adapters/wordlist"
	"minerva/contexts/trust-safety/moderation-service/application"
	"minerva/contexts/trust-safety/moderation-service/ports"
)

type Module struct {
	Service application.Service
}

type Dependencies struct {
	Classifier ports.Classifier
	Logger     *slog.Logger
}

func NewModule(deps Dependencies) Module {
	return Module{
		Service: application.Service{
			Classifier: deps.Classifier,
			Logger:     deps.Logger,
		},
	}
}

// NewWordlistModule wires the offline classifier. Used in development and
// tests when no classifier API key is configured.
func NewWordlistModule(logger *slog.Logger) Module {
	return NewModule(Dependencies{
		Classifier: wordlist.NewClassifier(),
		Logger:     logger,
	})
}
