package preferencesfx

import (
	"context"
	"os"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"itinera/internal/infra"
	"itinera/internal/repositories"
	"itinera/internal/services"
)

var Module = fx.Provide(
	providePreferenceRepo,
	services.NewPreferenceService,
)

// providePreferenceRepo picks the durable Postgres store when POSTGRES_URL
// is set and the process-lifetime in-memory store otherwise.
func providePreferenceRepo(lc fx.Lifecycle, logger *zap.Logger) repositories.PreferenceRepositoryInterface {
	dsn := os.Getenv("POSTGRES_URL")
	if dsn == "" {
		logger.Info("using in-memory preference store")
		return repositories.NewInMemoryPreferenceRepository()
	}

	db, err := infra.InitPostgresql(dsn)
	if err != nil {
		logger.Warn("postgres unavailable, falling back to in-memory preference store", zap.Error(err))
		return repositories.NewInMemoryPreferenceRepository()
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return infra.ClosePostgresql(db)
		},
	})

	logger.Info("using postgres preference store")
	return repositories.NewPostgresPreferenceRepository(db)
}
