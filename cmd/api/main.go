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
	"github.com/jquiroga/tienda-api/internal/application/auth"
	"github.com/jquiroga/tienda-api/internal/application/usecase"
	"github.com/jquiroga/tienda-api/internal/application/validate"
	"github.com/jquiroga/tienda-api/internal/infrastructure/postgres"
	"github.com/jquiroga/tienda-api/internal/infrastructure/storage"
	httpRouter "github.com/jquiroga/tienda-api/internal/interfaces/http"
	"github.com/jquiroga/tienda-api/pkg/config"
	"github.com/jquiroga/tienda-api/pkg/logger"
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

	if err := postgres.Migrate(pool); err != nil {
		log.Fatal().Err(err).Msg("migraciones")
	}

	files, err := storage.NewLocalStore(cfg.Storage.Dir)
	if err != nil {
		log.Fatal().Err(err).Msg("almacenamiento local")
	}

	productRepo := postgres.NewProductRepository(pool)
	pairRepo := postgres.NewProductColorRepository(pool)
	colorRepo := postgres.NewColorRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	brandRepo := postgres.NewBrandRepository(pool)
	promotionRepo := postgres.NewPromotionRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	val := validate.New()
	productUC := usecase.NewProductUseCase(productRepo, pairRepo, colorRepo, promotionRepo, txRunner, files, val)
	colorUC := usecase.NewColorUseCase(colorRepo, pairRepo, val)
	categoryUC := usecase.NewCategoryUseCase(categoryRepo, productRepo, val)
	brandUC := usecase.NewBrandUseCase(brandRepo, productRepo, files, val)
	promotionUC := usecase.NewPromotionUseCase(promotionRepo, productRepo, files, val)
	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, val)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		BodyLimit:    10 * 1024 * 1024, // subida de imágenes
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.HTTP.CORSOrigin,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Tienda API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		ProductUC:   productUC,
		ColorUC:     colorUC,
		CategoryUC:  categoryUC,
		BrandUC:     brandUC,
		PromotionUC: promotionUC,
		AuthUC:      authUC,
		JWTSecret:   cfg.JWT.Secret,
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
