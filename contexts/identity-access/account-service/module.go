package accountservice

import (
	"log/slog"

	bcryptadapter "minerva/contexts/identity-access/account-service/adapters/bcrypt"
	httpadapter "minerva/contexts/identity-access/account-service/adapters/http"
	"minerva/contexts/identity-access/account-service/adapters/memory"
	pasetoadapter "minerva/contexts/identity-access/account-service/adapters/paseto"
	"minerva/contexts/identity-access/account-service/application"
	"minerva/contexts/identity-access/account-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Accounts ports.AccountRepository
	Hasher   ports.PasswordHasher
	Tokens   ports.TokenCodec
	Clock    ports.Clock
	IDGen    ports.IDGenerator
	Events   ports.EventPublisher
	Logger   *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Accounts: deps.Accounts,
		Hasher:   deps.Hasher,
		Tokens:   deps.Tokens,
		Clock:    deps.Clock,
		IDGen:    deps.IDGen,
		Events:   deps.Events,
		Logger:   deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
	}
}

// NewInMemoryModule wires the in-memory repository, an ephemeral token key
// and a low bcrypt cost. Development and tests only.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Accounts: store,
		Hasher:   bcryptadapter.NewHasher(4),
		Tokens:   pasetoadapter.NewRandomCodec(),
		Clock:    store,
		IDGen:    store,
		Logger:   logger,
	})
	module.Store = store
	return module
}
