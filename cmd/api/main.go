// @title           API de Facturación
// @version         1.0
// @description     Motor de cálculo de IVA español (Ley 37/1992, RD 1619/2012): facturas con desglose por tipos, recargo de equivalencia, retención IRPF, menciones obligatorias y exportación Facturae.
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	_ "github.com/Mackewinsson/facturacion-module-sub000/docs"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/application/auth"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/application/facturacion"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/application/usecase"
	infrafacturae "github.com/Mackewinsson/facturacion-module-sub000/internal/infrastructure/facturae"
	infrapdf "github.com/Mackewinsson/facturacion-module-sub000/internal/infrastructure/pdf"
	"github.com/Mackewinsson/facturacion-module-sub000/internal/infrastructure/postgres"
	httpRouter "github.com/Mackewinsson/facturacion-module-sub000/internal/interfaces/http"
	"github.com/Mackewinsson/facturacion-module-sub000/pkg/config"
	"github.com/Mackewinsson/facturacion-module-sub000/pkg/logger"
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
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	empresaRepo := postgres.NewEmpresaRepository(pool)
	usuarioRepo := postgres.NewUsuarioRepository(pool)
	clienteRepo := postgres.NewClienteRepository(pool)
	facturaRepo := postgres.NewFacturaRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	empresaUC := usecase.NewEmpresaUseCase(empresaRepo)
	clienteUC := facturacion.NewClienteUseCase(clienteRepo)
	crearFacturaUC := facturacion.NewCrearFacturaUseCase(txRunner, facturaRepo, clienteRepo, empresaRepo)
	emitirFacturaUC := facturacion.NewEmitirFacturaUseCase(txRunner, facturaRepo, clienteRepo)
	previewUC := facturacion.NewPreviewUseCase(clienteRepo, empresaRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	facturaPDFUC := facturacion.NewPDFUseCase(facturaRepo, empresaRepo, clienteRepo, pdfGenerator)

	exportador := infrafacturae.NewExporter()
	facturaeUC := facturacion.NewFacturaeUseCase(facturaRepo, empresaRepo, clienteRepo, exportador)

	authUC := auth.NewAuthUseCase(usuarioRepo, empresaRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "API de Facturación",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		EmpresaUC:     empresaUC,
		ClienteUC:     clienteUC,
		CrearFactura:  crearFacturaUC,
		EmitirFactura: emitirFacturaUC,
		Preview:       previewUC,
		FacturaPDF:    facturaPDFUC,
		Facturae:      facturaeUC,
		AuthUC:        authUC,
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
