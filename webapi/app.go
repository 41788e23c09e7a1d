// Package webapi assembles the Fiber application.
package webapi

import (
	"errors"
	"log/slog"

	"github.com/amirasaad/marketplace/pkg/provider/payment"
	"github.com/amirasaad/marketplace/webapi/tenant"
	"github.com/amirasaad/marketplace/webapi/webhook"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// SetupApp builds the Fiber app with middleware and all routes registered.
func SetupApp(
	gateway payment.Gateway,
	processor webhook.Processor,
	onboarder tenant.Onboarder,
	logger *slog.Logger,
) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				code = fe.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	app.Use(recover.New())
	app.Use(requestid.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	webhook.Routes(app, gateway, processor, logger)
	tenant.Routes(app, onboarder, logger)

	return app
}
