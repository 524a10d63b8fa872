package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/sitta-api/internal/application/auth"
	"github.com/jhoicas/sitta-api/internal/application/notify"
	appstock "github.com/jhoicas/sitta-api/internal/application/stock"
	apptracking "github.com/jhoicas/sitta-api/internal/application/tracking"
	"github.com/jhoicas/sitta-api/internal/domain/stock"
	"github.com/jhoicas/sitta-api/internal/infrastructure/memory"
	infrapdf "github.com/jhoicas/sitta-api/internal/infrastructure/pdf"
	"github.com/jhoicas/sitta-api/internal/infrastructure/seed"
	"github.com/jhoicas/sitta-api/internal/infrastructure/xlsx"
	httpRouter "github.com/jhoicas/sitta-api/internal/interfaces/http"
	"github.com/jhoicas/sitta-api/pkg/config"
	"github.com/jhoicas/sitta-api/pkg/logger"
)

const swaggerFile = "./docs/swagger.json"

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.App.LogLevel,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if cfg.JWT.Secret == "" {
		log.Warn().Msg("JWT_SECRET vacío: el login fallará hasta configurarlo")
	}

	loc, err := cfg.Catalog.Location()
	if err != nil {
		log.Fatal().Err(err).Msg("zona horaria")
	}
	profile, err := stock.ProfileByName(cfg.UI.StockStatusProfile)
	if err != nil {
		log.Fatal().Err(err).Msg("perfil de estado de stok")
	}

	catalog, source, err := seed.Load(cfg.Catalog.SeedPath, loc)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Catalog.SeedPath).Msg("cargar catálogo")
	}
	if err := seed.Check(catalog); err != nil {
		log.Fatal().Err(err).Str("path", cfg.Catalog.SeedPath).Msg("catálogo inválido")
	}
	log.Info().
		Str("source", string(source)).
		Str("path", cfg.Catalog.SeedPath).
		Int("stock", len(catalog.Stock)).
		Int("tracking", len(catalog.Tracking)).
		Msg("catálogo cargado")

	store := memory.NewStore(catalog)
	clock := notify.SystemClock{}

	authUC := auth.NewAuthUseCase(store.Users(), auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	stockVM := appstock.NewViewModel(
		store.StockItems(), store.Reference(),
		notify.NewBoard(cfg.UI.AlertDuration(), clock),
		profile, log.Component("stock"),
	)
	trackingVM := apptracking.NewViewModel(apptracking.Deps{
		Records:  store.Tracking(),
		Refs:     store.Reference(),
		Stock:    store.StockItems(),
		Alerts:   notify.NewBoard(cfg.UI.AlertDuration(), clock),
		Clock:    clock,
		Location: loc,
		Log:      log.Component("tracking"),
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	if _, err := os.Stat(swaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			BasePath: "/",
			FilePath: swaggerFile,
			Path:     "docs",
			Title:    "SITTA API",
		}))
	}

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:     authUC,
		StockVM:    stockVM,
		TrackingVM: trackingVM,
		Exporter:   xlsx.NewStockExporter(),
		Slips:      infrapdf.NewMarotoSlipGenerator(""),

		Service:       cfg.App.Name,
		CatalogSource: string(source),
		Store:         store,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
