//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"hotprospects/internal"
	"hotprospects/internal/controllers"
	"hotprospects/internal/persistence"
	"hotprospects/internal/providers"
	"hotprospects/internal/reminders"
	"hotprospects/internal/reminders/interfaces"
	"hotprospects/internal/services"
	"hotprospects/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewCacheProvider,

		persistence.NewCompressor,
		persistence.NewBackend,
		services.NewProspectService,
		services.NewScanService,
		reminders.NewLocalCenter,
		wire.Bind(new(interfaces.NotificationCenterInterface), new(*reminders.LocalCenter)),
		reminders.NewScheduler,
		controllers.NewProspectController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewHandler,
		internal.NewApp,
	)

	return nil, nil
}
