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

	"github.com/jhoicas/compras-api/internal/application/auth"
	"github.com/jhoicas/compras-api/internal/application/purchasing"
	"github.com/jhoicas/compras-api/internal/application/sales"
	"github.com/jhoicas/compras-api/internal/application/stock"
	"github.com/jhoicas/compras-api/internal/application/tenant"
	"github.com/jhoicas/compras-api/internal/application/usecase"
	"github.com/jhoicas/compras-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/compras-api/internal/interfaces/http"
	"github.com/jhoicas/compras-api/pkg/config"
	"github.com/jhoicas/compras-api/pkg/jwt"
	"github.com/jhoicas/compras-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:     cfg.App.Env,
		Level:   "info",
		Service: cfg.App.Name,
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

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	linkRepo := postgres.NewCompanyUserRepository(pool)
	brandRepo := postgres.NewBrandRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	supplierRepo := postgres.NewSupplierRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	movementRepo := postgres.NewStockMovementRepository(pool)
	invoiceRepo := postgres.NewPurchaseInvoiceRepository(pool)
	payableRepo := postgres.NewPayableAccountRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	resolver := tenant.NewResolver(linkRepo)

	authUC := auth.NewAuthUseCase(txRunner, userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, jwt.Generate)
	companyUC := usecase.NewCompanyUseCase(txRunner, companyRepo)
	membershipUC := usecase.NewMembershipUseCase(txRunner, linkRepo, userRepo, companyRepo)
	brandUC := usecase.NewBrandUseCase(resolver, brandRepo)
	categoryUC := usecase.NewCategoryUseCase(resolver, categoryRepo)
	productUC := usecase.NewProductUseCase(resolver, productRepo, brandRepo, categoryRepo)
	supplierUC := usecase.NewSupplierUseCase(resolver, supplierRepo)
	customerUC := usecase.NewCustomerUseCase(resolver, customerRepo)
	ledgerUC := stock.NewLedgerUseCase(txRunner, resolver, productRepo, movementRepo, supplierRepo, customerRepo)
	purchaseUC := purchasing.NewPurchaseUseCase(txRunner, resolver, ledgerUC, supplierRepo, productRepo, invoiceRepo, payableRepo)
	payableUC := purchasing.NewPayableUseCase(resolver, payableRepo)
	saleUC := sales.NewSaleUseCase(txRunner, resolver, ledgerUC, customerRepo, productRepo, saleRepo)

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
		Title:    "Compras API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		CompanyUC:    companyUC,
		MembershipUC: membershipUC,
		BrandUC:      brandUC,
		CategoryUC:   categoryUC,
		ProductUC:    productUC,
		SupplierUC:   supplierUC,
		CustomerUC:   customerUC,
		LedgerUC:     ledgerUC,
		PurchaseUC:   purchaseUC,
		PayableUC:    payableUC,
		SaleUC:       saleUC,
		Resolver:     resolver,
		JWTSecret:    cfg.JWT.Secret,
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
