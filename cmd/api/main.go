package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/jhoicas/tienda-pos/internal/application/auth"
	"github.com/jhoicas/tienda-pos/internal/application/cart"
	"github.com/jhoicas/tienda-pos/internal/application/ledger"
	"github.com/jhoicas/tienda-pos/internal/application/purchase"
	"github.com/jhoicas/tienda-pos/internal/application/transfer"
	"github.com/jhoicas/tienda-pos/internal/application/usecase"
	"github.com/jhoicas/tienda-pos/internal/infrastructure/blobstore"
	"github.com/jhoicas/tienda-pos/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/tienda-pos/internal/interfaces/http"
	"github.com/jhoicas/tienda-pos/pkg/config"
	"github.com/jhoicas/tienda-pos/pkg/logger"
)

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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	docs := blobstore.NewRedisStore(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB, cfg.Redis.KeyPrefix)
	if err := docs.Ping(ctx); err != nil {
		log.Fatal().Err(err).Msg("conexión a Redis")
	}

	// Catálogo, stock por tienda y usuarios en PostgreSQL.
	productRepo := postgres.NewProductRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	storeRepo := postgres.NewStoreRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	// Documentos JSON (compras, traslados, carrito, reglas) en Redis.
	purchaseRepo := blobstore.NewPurchaseRepository(docs)
	transferRepo := blobstore.NewTransferRepository(docs)
	ruleRepo := blobstore.NewPriceRuleRepository(docs)
	cartRepo := blobstore.NewCartRepository(docs)

	stockLedger := ledger.NewStockLedger(txRunner)

	authUC := auth.NewUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo, stockRepo)
	storeUC := usecase.NewStoreUseCase(storeRepo)
	ruleUC := usecase.NewPriceRuleUseCase(ruleRepo)
	purchaseUC := purchase.NewUseCase(stockLedger, purchaseRepo, productRepo, storeRepo, log)
	transferUC := transfer.NewUseCase(stockLedger, transferRepo, productRepo, storeRepo, log)
	cartUC := cart.NewUseCase(cartRepo, productRepo, stockRepo, storeRepo, ruleRepo, stockLedger, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		ProductUC:   productUC,
		StoreUC:     storeUC,
		PriceRuleUC: ruleUC,
		PurchaseUC:  purchaseUC,
		TransferUC:  transferUC,
		CartUC:      cartUC,
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
