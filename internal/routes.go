package internal

import (
	"net/http"
	"telemetryd/internal/controllers"
	"telemetryd/internal/providers"
)

func InitRoutes(apiController *controllers.ApiController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/readings", http.HandlerFunc(apiController.ListReadings))
	routers.Post("/readings", http.HandlerFunc(apiController.ReceiveReading))
	routers.Get("/thresholds", http.HandlerFunc(apiController.GetThresholds))
	routers.Post("/thresholds", http.HandlerFunc(apiController.SetThresholds))
	routers.Post("/login", http.HandlerFunc(apiController.Login))
	return routers
}
