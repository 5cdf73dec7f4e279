// Package persistence selects the phone store backend from configuration.
package persistence

import (
	"log/slog"

	"booking/config"
	"booking/internal/domain/repository"
	"booking/internal/infra/persistence/memory"
	"booking/internal/infra/persistence/postgres"

	"go.uber.org/fx"
)

// Params holds dependencies for the phone store, injected by Fx.
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewPhoneRepository creates the PhoneRepository for the configured storage driver.
func NewPhoneRepository(params Params) (repository.PhoneRepository, error) {
	if !params.Config.UsesPostgres() {
		params.Logger.Info("Using in-memory phone store")

		return memory.NewPhoneRepository(), nil
	}

	db, err := postgres.New(postgres.Params{
		Lifecycle: params.Lc,
		Config:    params.Config,
		Logger:    params.Logger,
	})
	if err != nil {
		return nil, err
	}

	params.Logger.Info("Using PostgreSQL phone store")

	return postgres.NewPhoneRepository(db), nil
}
