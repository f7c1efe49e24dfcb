package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	appanalytics "github.com/tu-usuario/registries-console/internal/application/analytics"
	infrapdf "github.com/tu-usuario/registries-console/internal/infrastructure/pdf"
	"github.com/tu-usuario/registries-console/internal/infrastructure/registryhttp"
	httpRouter "github.com/tu-usuario/registries-console/internal/interfaces/http"
	"github.com/tu-usuario/registries-console/pkg/config"
	"github.com/tu-usuario/registries-console/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Str("registry", cfg.Registry.BaseURL).
		Msg("iniciando aplicación")

	registryClient := registryhttp.NewClient(cfg.Registry)

	dashboardUC := appanalytics.NewDashboardUseCase(registryClient, cfg.Dashboard, log)
	priceLevelsUC := appanalytics.NewPriceLevelsUseCase(registryClient)
	stockTakingUC := appanalytics.NewStockTakingUseCase(registryClient)
	snapshotPDF := infrapdf.NewMarotoSnapshotGenerator()

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 30, // la exportación a PDF puede tardar más que un JSON
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Registries Console API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		DashboardUC:   dashboardUC,
		PriceLevelsUC: priceLevelsUC,
		StockTakingUC: stockTakingUC,
		SnapshotPDF:   snapshotPDF,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
