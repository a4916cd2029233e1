package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/Pizzeria-api/internal/application/comisiones"
	"github.com/jhoicas/Pizzeria-api/internal/application/inventario"
	"github.com/jhoicas/Pizzeria-api/internal/application/vendedores"
	"github.com/jhoicas/Pizzeria-api/internal/application/ventas"
	"github.com/jhoicas/Pizzeria-api/internal/domain/repository"
	"github.com/jhoicas/Pizzeria-api/internal/infrastructure/memoria"
	infrapdf "github.com/jhoicas/Pizzeria-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Pizzeria-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Pizzeria-api/internal/infrastructure/sheets"
	"github.com/jhoicas/Pizzeria-api/internal/infrastructure/tabular"
	httpRouter "github.com/jhoicas/Pizzeria-api/internal/interfaces/http"
	"github.com/jhoicas/Pizzeria-api/pkg/config"
	"github.com/jhoicas/Pizzeria-api/pkg/logger"
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
		Str("store", cfg.Store.Driver).
		Msg("iniciando aplicación")

	ctx := context.Background()

	var store repository.RowStore
	switch cfg.Store.Driver {
	case config.StoreSheets:
		store, err = sheets.NewStore(ctx, cfg.Sheets)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Google Sheets")
		}
	case config.StorePostgres:
		pool, perr := postgres.NewPool(ctx, cfg.DB)
		if perr != nil {
			log.Fatal().Err(perr).Msg("conexión a PostgreSQL")
		}
		defer pool.Close()
		store, err = postgres.NewStore(ctx, pool)
		if err != nil {
			log.Fatal().Err(err).Msg("esquema de PostgreSQL")
		}
	case config.StoreMemoria:
		store = memoria.NewStoreCompleto()
		log.Warn().Msg("row-store en memoria: los datos no sobreviven al proceso")
	}

	vendedorRepo := tabular.NewVendedorRepository(store)
	asignacionRepo := tabular.NewAsignacionRepository(store)
	ventaRepo := tabular.NewVentaRepository(store)
	devolucionRepo := tabular.NewDevolucionRepository(store)
	pagoRepo := tabular.NewPagoComisionRepository(store)

	vendedoresUC := vendedores.NewUseCase(vendedorRepo, log)
	inventarioUC := inventario.NewUseCase(vendedorRepo, asignacionRepo, ventaRepo, devolucionRepo, log)
	ventasUC := ventas.NewUseCase(vendedorRepo, asignacionRepo, ventaRepo, devolucionRepo, log)

	reportePDF := infrapdf.NewMarotoReporteGenerator(cfg.App.Name)
	comisionesUC := comisiones.NewUseCase(vendedorRepo, asignacionRepo, ventaRepo, pagoRepo, reportePDF, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Pizzería API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	// Consola del operador (lector RFID)
	app.Static("/", "./public")

	httpRouter.Router(app, httpRouter.RouterDeps{
		VendedoresUC: vendedoresUC,
		InventarioUC: inventarioUC,
		VentasUC:     ventasUC,
		ComisionesUC: comisionesUC,
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
