package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/vaibhavdhanawade/mystore/internal/config"
	authhandler "github.com/vaibhavdhanawade/mystore/internal/delivery/http/handler/auth"
	customerhandler "github.com/vaibhavdhanawade/mystore/internal/delivery/http/handler/customer"
	ledgerhandler "github.com/vaibhavdhanawade/mystore/internal/delivery/http/handler/ledger"
	paymenthandler "github.com/vaibhavdhanawade/mystore/internal/delivery/http/handler/payment"
	salehandler "github.com/vaibhavdhanawade/mystore/internal/delivery/http/handler/sale"
	"github.com/vaibhavdhanawade/mystore/internal/delivery/middleware"
	authuc "github.com/vaibhavdhanawade/mystore/internal/usecase/auth"
	customeruc "github.com/vaibhavdhanawade/mystore/internal/usecase/customer"
	ledgeruc "github.com/vaibhavdhanawade/mystore/internal/usecase/ledger"
	paymentuc "github.com/vaibhavdhanawade/mystore/internal/usecase/payment"
	saleuc "github.com/vaibhavdhanawade/mystore/internal/usecase/sale"
)

// Stores bundles the record store implementations the routes are wired to,
// whichever driver built them.
type Stores struct {
	Customers customeruc.Store
	Sales     saleuc.Store
	Payments  paymentuc.Store
	Ledger    ledgeruc.Store
}

func RegisterRoutes(app *fiber.App, cfg config.Config, stores Stores) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ok": true})
	})

	api := app.Group("/api")

	// Auth wiring
	loginUC := authuc.NewLoginUsecase(cfg.AdminMobile, cfg.AdminPasswordHash, cfg.JWTSecret, cfg.JWTExpiresMinutes)
	loginHandler := authhandler.NewLoginHandler(loginUC)

	// Public route
	api.Post("/admin/login", loginHandler.Handle)

	// Protected admin group
	admin := api.Group("/admin", middleware.RequireAdminJWT(middleware.JWTConfig{
		Secret: cfg.JWTSecret,
	}))

	admin.Get("/me", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"ok":     true,
			"claims": c.Locals("claims"),
		})
	})

	// Customers wiring
	customerH := customerhandler.New(customeruc.New(stores.Customers))
	admin.Get("/customers", customerH.List)
	admin.Post("/customers", customerH.Create)
	admin.Delete("/customers/:id", customerH.Delete)

	// Sales wiring
	saleH := salehandler.New(saleuc.New(stores.Sales))
	admin.Get("/sales", saleH.List)
	admin.Post("/sales", saleH.Create)
	admin.Delete("/sales/:id", saleH.Delete)

	// Payments wiring
	paymentH := paymenthandler.New(paymentuc.New(stores.Payments))
	admin.Get("/payments", paymentH.List)
	admin.Post("/payments", paymentH.Create)
	admin.Delete("/payments/:id", paymentH.Delete)

	// Ledger report
	ledgerH := ledgerhandler.New(ledgeruc.New(stores.Ledger))
	admin.Get("/ledger", ledgerH.Report)
}
