package api

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"fishreg/internal/api/controller"
	"fishreg/internal/pkg/constants"
	"fishreg/internal/pkg/logger"
	"fishreg/internal/pkg/store"
	"fishreg/internal/service/auth"
	"fishreg/internal/service/registry"
	"fishreg/internal/service/report"
)

type APIService struct {
	router          *echo.Echo
	reportService   *report.Service
	registryService *registry.Service
	authService     *auth.Service
}

func (svc *APIService) Serve(addr string) {
	logger.Fatal(context.Background(), svc.router.Start(addr))
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewAPIService(store store.Store) (*APIService, error) {
	svc := &APIService{router: echo.New()}

	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.JSONSerializer = sonicSerializer{}
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.Logger())
	svc.router.Use(svc.RequestIDMiddleware)
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{viper.GetString(constants.ViperCORSOrigin)},
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	svc.reportService = report.NewReportService(store)
	svc.registryService = registry.NewRegistryService(store)
	svc.authService = auth.NewService(store)

	api := svc.router.Group("/api/v1")
	cntrl := controller.NewController(svc.reportService, svc.registryService, svc.authService)

	authGroup := api.Group("/auth")
	authGroup.POST("/login", cntrl.Login)

	reports := api.Group("/reports", svc.AuthMiddleware)
	reports.GET("/expiring-licenses", cntrl.GetExpiringLicenses)
	reports.GET("/amateur-ranking", cntrl.GetAmateurRanking)
	reports.GET("/ship-catch-analysis/:year", cntrl.GetShipCatchAnalysis)
	reports.GET("/ship-fuel-efficiency/:year", cntrl.GetShipFuelEfficiency, svc.InspectorMiddleware)
	reports.GET("/inspections", cntrl.GetInspectionsByPeriod, svc.InspectorMiddleware)
	reports.GET("/fisher-statistics/:year", cntrl.GetFisherStatistics)

	ships := api.Group("/ships", svc.AuthMiddleware)
	ships.GET("", cntrl.GetShips)
	ships.GET("/:id", cntrl.GetShip)

	licenses := api.Group("/licenses", svc.AuthMiddleware)
	licenses.GET("", cntrl.GetLicenses)
	licenses.POST("", cntrl.CreateLicense)

	inspections := api.Group("/inspections", svc.AuthMiddleware)
	inspections.GET("", cntrl.GetInspections)
	inspections.POST("", cntrl.CreateInspection, svc.InspectorMiddleware)

	api.GET("/fishers", cntrl.GetFishers, svc.AuthMiddleware)

	return svc, nil
}
