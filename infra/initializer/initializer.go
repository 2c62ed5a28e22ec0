// Package initializer wires the application together: configuration,
// logger, registries, event bus, audit subscribers and the bank service.
package initializer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amirasaad/minibank/pkg/config"
	"github.com/amirasaad/minibank/pkg/domain"
	"github.com/amirasaad/minibank/pkg/domain/events"
	"github.com/amirasaad/minibank/pkg/eventbus"
	"github.com/amirasaad/minibank/pkg/registry"
	"github.com/amirasaad/minibank/pkg/service/bank"
)

// Deps is everything the entrypoint needs to run the application.
type Deps struct {
	Config  *config.App
	Logger  *slog.Logger
	Bus     eventbus.EventBus
	Service *bank.Service
}

// InitializeDependencies loads the configuration and builds the fully
// wired application dependencies.
func InitializeDependencies() (*Deps, error) {
	cfg, err := config.Load(slog.Default())
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	logger := setupLogger(cfg.Log)

	bus := eventbus.NewSimpleEventBus()
	subscribeAuditLog(bus, logger)

	svc, err := bank.New(
		registry.NewClients(),
		registry.NewAccounts(),
		bus,
		logger,
		cfg.Bank,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to build bank service: %w", err)
	}

	return &Deps{
		Config:  cfg,
		Logger:  logger,
		Bus:     bus,
		Service: svc,
	}, nil
}

// subscribeAuditLog attaches the handlers that turn domain events into the
// audit trail.
func subscribeAuditLog(bus eventbus.EventBus, logger *slog.Logger) {
	audit := logger.With("audit", true)
	bus.Subscribe("TransactionExecuted", func(_ context.Context, e domain.Event) {
		ev, ok := e.(events.TransactionExecuted)
		if !ok {
			return
		}
		audit.Info("transaction executed",
			"id", ev.ID,
			"account", ev.AccountNumber,
			"kind", ev.Kind.String(),
			"amount", ev.Amount,
			"at", ev.OccurredAt,
		)
	})
	bus.Subscribe("ClientRegistered", func(_ context.Context, e domain.Event) {
		ev, ok := e.(events.ClientRegistered)
		if !ok {
			return
		}
		audit.Info("client registered", "id", ev.ID, "cpf", ev.CPF, "name", ev.Name)
	})
	bus.Subscribe("AccountOpened", func(_ context.Context, e domain.Event) {
		ev, ok := e.(events.AccountOpened)
		if !ok {
			return
		}
		audit.Info("account opened", "id", ev.ID, "number", ev.AccountNumber, "cpf", ev.CPF)
	})
}
