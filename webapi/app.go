// Package webapi assembles the HTTP application.
package webapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/novinbank/ledger/config"
	accountsvc "github.com/novinbank/ledger/pkg/service/account"
	customersvc "github.com/novinbank/ledger/pkg/service/customer"
	accountapi "github.com/novinbank/ledger/webapi/account"
	"github.com/novinbank/ledger/webapi/common"
	customerapi "github.com/novinbank/ledger/webapi/customer"
)

// NewApp builds the fiber application with rate limiting, panic recovery and
// all routes registered.
func NewApp(
	customerSvc *customersvc.Service,
	accountSvc *accountsvc.Service,
	cfg *config.AppConfig,
) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "ledger",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			status := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
			return common.ErrorResponseJSON(c, status, "Internal Server Error", err.Error())
		},
	})

	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit.MaxRequests,
		Expiration: cfg.RateLimit.Window,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return common.ErrorResponseJSON(c, fiber.StatusTooManyRequests, "Too Many Requests", "Rate limit exceeded")
		},
	}))
	app.Use(recover.New())

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Ledger is up")
	})

	customerapi.Routes(app, customerSvc)
	accountapi.Routes(app, accountSvc)

	return app
}
