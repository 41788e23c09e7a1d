// Package webhook is the HTTP boundary for inbound Stripe events. Per
// request the flow is verify, classify, process, acknowledge; a signature
// failure short-circuits to 400 and a processing failure to 500 so Stripe's
// redelivery becomes the retry path.
package webhook

import (
	"context"
	"log/slog"

	"github.com/amirasaad/marketplace/pkg/provider/payment"
	webhooksvc "github.com/amirasaad/marketplace/pkg/service/webhook"
	"github.com/gofiber/fiber/v2"
	"github.com/stripe/stripe-go/v82"
)

// Processor consumes verified events.
type Processor interface {
	Process(ctx context.Context, event stripe.Event) (webhooksvc.Result, error)
}

// StripeWebhookHandler handles incoming Stripe webhook events.
func StripeWebhookHandler(
	gateway payment.Gateway,
	processor Processor,
	logger *slog.Logger,
) fiber.Handler {
	return func(c *fiber.Ctx) error {
		signature := c.Get("Stripe-Signature")
		if signature == "" {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "missing Stripe-Signature header",
			})
		}

		body := c.Body()
		if len(body) == 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "empty request body",
			})
		}

		event, err := gateway.ConstructEvent(body, signature)
		if err != nil {
			// No event id is trustworthy at this point; the reason stays
			// generic so the response cannot be used as a signing oracle.
			logger.Warn("webhook signature rejected")
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid signature",
			})
		}

		result, err := processor.Process(c.Context(), event)
		if err != nil {
			logger.Error("webhook processing failed",
				"event_id", event.ID,
				"event_type", event.Type,
				"error", err,
			)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "webhook handler failed",
			})
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"message": "received",
			"status":  string(result),
		})
	}
}

// Routes sets up the Stripe webhook routes.
func Routes(
	app *fiber.App,
	gateway payment.Gateway,
	processor Processor,
	logger *slog.Logger,
) {
	app.Post("/api/v1/webhooks/stripe", StripeWebhookHandler(gateway, processor, logger))
}
