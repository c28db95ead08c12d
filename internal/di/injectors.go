//go:build wireinject
// +build wireinject

package di

import (
	wire "github.com/google/wire"
	"telemetryd/internal"
	"telemetryd/internal/controllers"
	"telemetryd/internal/providers"
	"telemetryd/internal/services"
	"telemetryd/internal/structures"
)

func InitApp(cfg *structures.CliFlags) (*internal.App, error) {

	wire.Build(
		providers.NewConfigProvider,
		providers.NewLogProvider,
		providers.NewMetricsProvider,
		providers.NewInstrumentedCacheProvider,
		providers.NewStorageProvider,

		services.NewTelemetryService,
		services.NewAuthService,
		controllers.NewApiController,
		controllers.NewHealthController,
		internal.InitRoutes,
		internal.NewApp,
	)

	return nil, nil
}
