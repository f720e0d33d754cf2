package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/vaibhavdhanawade/mystore/internal/config"
	"github.com/vaibhavdhanawade/mystore/internal/db"
	httpdelivery "github.com/vaibhavdhanawade/mystore/internal/delivery/http"
	"github.com/vaibhavdhanawade/mystore/internal/repository/jsonfile"
	"github.com/vaibhavdhanawade/mystore/internal/repository/postgres"
)

type App struct {
	f    *fiber.App
	port string
}

func New() *App {
	cfg := config.Load()

	stores, err := buildStores(cfg)
	if err != nil {
		log.Fatalf("store init failed: %v", err)
	}

	f := fiber.New(fiber.Config{
		AppName: "mystore",
	})

	f.Use(recover.New())
	f.Use(logger.New())

	httpdelivery.RegisterRoutes(f, cfg, stores)

	return &App{f: f, port: cfg.Port}
}

func (a *App) Run() error {
	return a.f.Listen(":" + a.port)
}

func buildStores(cfg config.Config) (httpdelivery.Stores, error) {
	switch cfg.StoreDriver {
	case "file":
		fs := jsonfile.New(cfg.DataDir)
		return httpdelivery.Stores{
			Customers: fs.Customers(),
			Sales:     fs.Sales(),
			Payments:  fs.Payments(),
			Ledger:    fs.Ledger(),
		}, nil

	case "postgres":
		pool, err := db.NewPool(cfg.DatabaseURL)
		if err != nil {
			return httpdelivery.Stores{}, fmt.Errorf("db connect: %w", err)
		}

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := db.Migrate(ctx, pool); err != nil {
			return httpdelivery.Stores{}, fmt.Errorf("migrate: %w", err)
		}

		customers := postgres.NewCustomerStoreAdapter(postgres.NewCustomerRepo(pool))
		sales := postgres.NewSaleStoreAdapter(postgres.NewSaleRepo(pool))
		payments := postgres.NewPaymentStoreAdapter(postgres.NewPaymentRepo(pool))
		return httpdelivery.Stores{
			Customers: customers,
			Sales:     sales,
			Payments:  payments,
			Ledger:    postgres.NewLedgerStoreAdapter(customers, sales, payments),
		}, nil

	default:
		return httpdelivery.Stores{}, fmt.Errorf("unknown STORE_DRIVER %q", cfg.StoreDriver)
	}
}
