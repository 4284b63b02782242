// Package app wires configuration, storage, services and HTTP routes into a runnable server.
package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"furniro/config"
	"furniro/internal/handlers"
	"furniro/internal/metrics"
	"furniro/internal/middleware"
	"furniro/internal/repositories"
	"furniro/internal/seed"
	"furniro/internal/services"
	"furniro/pkg/media"
	"furniro/pkg/rabbitmq"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type repos struct {
	products repositories.ProductRepository
	users    repositories.UserRepository
	orders   repositories.OrderRepository
	states   repositories.StateRepository
}

// App is a fully wired storefront.
type App struct {
	Fiber     *fiber.App
	Products  *services.ProductService
	Shop      *services.ShopService
	Orders    *services.OrderService
	Auth      *services.AuthService
	Dashboard *services.DashboardService
	Metrics   *metrics.Metrics

	cfg    *config.Config
	db     *gorm.DB
	broker *rabbitmq.Client
}

// New builds the storefront described by cfg. A configured broker is dialled here; ctx bounds
// the dial retries.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	a := &App{cfg: cfg, Metrics: metrics.New()}

	r, err := a.openStorage()
	if err != nil {
		return nil, err
	}

	var uploader media.Uploader = media.Noop{}
	if cfg.CloudinaryURL != "" {
		cld, err := media.NewCloudinary(cfg.CloudinaryURL, cfg.CloudinaryFolder)
		if err != nil {
			return nil, err
		}
		uploader = cld
	}

	var publisher services.OrderPublisher
	if cfg.RabbitMQURL != "" {
		a.broker, err = rabbitmq.NewClient(ctx, rabbitmq.Config{URL: cfg.RabbitMQURL, DialRetries: cfg.RabbitMQRetries})
		if err != nil {
			return nil, err
		}
		publisher = a.broker
	} else {
		log.Println("RABBITMQ_URL not set, stock is adjusted during checkout")
	}

	a.Products = services.NewProductService(r.products, uploader)
	if cfg.SeedProducts {
		if err := a.Products.Seed(seed.Products()); err != nil {
			return nil, err
		}
	}
	a.Shop = services.NewShopService(a.Products, r.states, services.ShopOptions{
		ItemsPerPage: cfg.ItemsPerPage,
		MaxPrice:     decimal.NewFromInt(cfg.FilterMaxPrice),
		Metrics:      a.Metrics,
	})
	a.Orders = services.NewOrderService(r.orders, a.Products, a.Shop, publisher, a.Metrics)
	a.Auth = services.NewAuthService(r.users, cfg.JWTSecret, cfg.JWTTTL)
	a.Dashboard = services.NewDashboardService(r.orders, r.users, r.products)

	if err := a.Auth.EnsureAdmin(cfg.AdminEmail, cfg.AdminPassword); err != nil {
		return nil, err
	}

	a.Fiber = a.routes()
	return a, nil
}

func (a *App) openStorage() (repos, error) {
	if a.cfg.DBDriver == config.DriverMemory {
		return repos{
			products: repositories.NewMockProductRepository(),
			users:    repositories.NewMockUserRepository(),
			orders:   repositories.NewMockOrderRepository(),
			states:   repositories.NewMockStateRepository(),
		}, nil
	}

	var dialector gorm.Dialector
	switch a.cfg.DBDriver {
	case config.DriverPostgres:
		dialector = postgres.Open(a.cfg.DBDSN)
	default:
		dsn := a.cfg.DBDSN
		if dsn == "" {
			dsn = fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.New().String())
		}
		dialector = sqlite.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return repos{}, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := repositories.AutoMigrate(db); err != nil {
		return repos{}, err
	}
	a.db = db
	return repos{
		products: repositories.NewGORMProductRepository(db),
		users:    repositories.NewGORMUserRepository(db),
		orders:   repositories.NewGORMOrderRepository(db),
		states:   repositories.NewGORMStateRepository(db),
	}, nil
}

func (a *App) routes() *fiber.App {
	app := fiber.New(fiber.Config{AppName: "furniro"})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(middleware.Metrics(a.Metrics))

	app.Get("/health", func(c *fiber.Ctx) error {
		broker := "disabled"
		if a.broker != nil {
			broker = "connected"
		}
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":   "healthy",
			"time":     time.Now().Format(time.RFC3339),
			"rabbitmq": broker,
			"sessions": a.Shop.SessionCount(),
		})
	})
	app.Get("/metrics", adaptor.HTTPHandler(a.Metrics.Handler()))

	apiV1 := app.Group("/api/v1", middleware.ClientSession())
	authRequired := middleware.AuthRequired(a.Auth)

	productHandler := handlers.NewProductHandler(a.Products, a.Shop)
	orderHandler := handlers.NewOrderHandler(a.Orders)

	handlers.NewAuthHandler(a.Auth).RegisterRoutes(apiV1)
	productHandler.RegisterRoutes(apiV1)
	handlers.NewShopHandler(a.Shop).RegisterRoutes(apiV1)
	handlers.NewCartHandler(a.Shop).RegisterRoutes(apiV1)
	handlers.NewWishlistHandler(a.Shop).RegisterRoutes(apiV1)
	orderHandler.RegisterRoutes(apiV1, authRequired)

	admin := apiV1.Group("/admin", authRequired, middleware.AdminOnly())
	productHandler.RegisterAdminRoutes(admin)
	orderHandler.RegisterAdminRoutes(admin)
	handlers.NewDashboardHandler(a.Dashboard).RegisterAdminRoutes(admin)

	return app
}

// Start runs the background work: the order.placed consumer when a broker is configured and
// the idle session janitor. Both stop with ctx.
func (a *App) Start(ctx context.Context) error {
	if a.broker != nil {
		if err := a.broker.ConsumeOrderEvents(ctx, a.Orders.HandleOrderPlaced); err != nil {
			return fmt.Errorf("failed to start order consumer: %w", err)
		}
	}
	go a.janitor(ctx)
	return nil
}

func (a *App) janitor(ctx context.Context) {
	idle := a.cfg.SessionIdleTimeout
	if idle <= 0 {
		return
	}
	ticker := time.NewTicker(idle / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := a.Shop.EvictIdle(idle); n > 0 {
				log.Printf("Evicted %d idle sessions", n)
			}
		}
	}
}

// Close releases the broker connection and the database.
func (a *App) Close() error {
	var errs []error
	if a.broker != nil {
		if err := a.broker.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("errors while closing app: %v", errs)
	}
	return nil
}
