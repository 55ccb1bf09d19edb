package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	accountservice "minerva/contexts/identity-access/account-service"
	accountbcrypt "minerva/contexts/identity-access/account-service/adapters/bcrypt"
	accountpaseto "minerva/contexts/identity-access/account-service/adapters/paseto"
	accountpostgres "minerva/contexts/identity-access/account-service/adapters/postgres"
	qnaservice "minerva/contexts/knowledge-base/qna-service"
	qnapostgres "minerva/contexts/knowledge-base/qna-service/adapters/postgres"
	qnaerrors "minerva/contexts/knowledge-base/qna-service/domain/errors"
	moderationservice "minerva/contexts/trust-safety/moderation-service"
	"minerva/contexts/trust-safety/moderation-service/adapters/apilayer"
	"minerva/contexts/trust-safety/moderation-service/adapters/wordlist"
	moderationapp "minerva/contexts/trust-safety/moderation-service/application"
	moderationerrors "minerva/contexts/trust-safety/moderation-service/domain/errors"
	"minerva/internal/platform/config"
	"minerva/internal/platform/db"
	"minerva/internal/platform/httpserver"
	"minerva/internal/platform/messaging"
	"minerva/internal/shared/events"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	bus      *messaging.Bus
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}
	if len(cfg.TokenSecret) == 0 {
		return nil, errors.New("TOKEN_SECRET_HEX is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}
	if err := pg.Migrate(accountpostgres.Migrate, qnapostgres.Migrate); err != nil {
		_ = pg.Close()
		return nil, err
	}

	bus := messaging.NewBus(logger)
	publisher := messaging.NewPublisher(bus, cfg.ServiceName)

	moderation := buildModeration(cfg, logger)

	tokens, err := accountpaseto.NewCodec(cfg.TokenSecret)
	if err != nil {
		_ = pg.Close()
		return nil, err
	}

	accountRepo := accountpostgres.NewRepository(pg.DB, logger)
	accounts := accountservice.NewModule(accountservice.Dependencies{
		Accounts: accountRepo,
		Hasher:   accountbcrypt.NewHasher(cfg.BcryptCost),
		Tokens:   tokens,
		Clock:    accountpostgres.SystemClock{},
		IDGen:    accountpostgres.UUIDGenerator{},
		Events:   publisher,
		Logger:   logger,
	})

	qnaRepo := qnapostgres.NewRepository(pg.DB, logger)
	qna := qnaservice.NewModule(qnaservice.Dependencies{
		Questions: qnaRepo,
		Answers:   qnaRepo,
		Moderator: moderationBridge{service: moderation.Service},
		Clock:     qnapostgres.SystemClock{},
		IDGen:     qnapostgres.UUIDGenerator{},
		Events:    publisher,
		Logger:    logger,
	})

	startEventLogger(bus, logger)

	server := httpserver.New(qna, accounts, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		bus:      bus,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run() error {
	defer func() { _ = a.postgres.Close() }()
	return a.server.Start()
}

func buildModeration(cfg config.Config, logger *slog.Logger) moderationservice.Module {
	if cfg.BadWordsAPIKey == "" {
		logger.Warn("no classifier api key configured, using wordlist classifier",
			"event", "moderation_wordlist_fallback",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
		return moderationservice.NewModule(moderationservice.Dependencies{
			Classifier: wordlist.NewClassifier(),
			Logger:     logger,
		})
	}
	return moderationservice.NewModule(moderationservice.Dependencies{
		Classifier: apilayer.NewClient(apilayer.Config{
			APIURL: cfg.BadWordsAPIURL,
			APIKey: cfg.BadWordsAPIKey,
		}, logger),
		Logger: logger,
	})
}

// moderationBridge exposes the moderation module through the qna context's
// ContentModerator port, translating sentinels across the context boundary.
type moderationBridge struct {
	service moderationapp.Service
}

func (b moderationBridge) CheckAll(ctx context.Context, texts ...string) ([]string, error) {
	cleaned, err := b.service.CheckAll(ctx, texts...)
	switch {
	case err == nil:
		return cleaned, nil
	case errors.Is(err, moderationerrors.ErrRejected):
		return nil, qnaerrors.ErrContentRejected
	case errors.Is(err, moderationerrors.ErrEmptyText):
		return nil, qnaerrors.ErrInvalidQuestionInput
	default:
		return nil, qnaerrors.ErrContentCheckUnavailable
	}
}

// startEventLogger drains every lifecycle topic so published events are
// visible in the process log even with no other consumer attached.
func startEventLogger(bus *messaging.Bus, logger *slog.Logger) {
	topics := []string{
		events.TypeQuestionCreated,
		events.TypeQuestionUpdated,
		events.TypeQuestionDeleted,
		events.TypeAnswerCreated,
		events.TypeAccountRegistered,
	}
	for _, topic := range topics {
		ch := bus.Subscribe(topic)
		go func() {
			for event := range ch {
				logger.Info("event observed",
					"event", "bus_event_observed",
					"module", "internal/app/bootstrap",
					"layer", "platform",
					"event_type", event.EventType,
					"entity_type", event.EntityType,
					"entity_id", event.EntityID,
				)
			}
		}()
	}
}

func normalizeAddr(port string) string {
	port = strings.TrimSpace(port)
	if port == "" {
		return ":8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return ":" + port
}
