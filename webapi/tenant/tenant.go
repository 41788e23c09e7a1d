// Package tenant exposes the seller onboarding endpoints: minting a Stripe
// verification link and reading a tenant's payment readiness.
package tenant

import (
	"context"
	"errors"
	"log/slog"

	"github.com/amirasaad/marketplace/pkg/domain"
	"github.com/amirasaad/marketplace/pkg/dto"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Onboarder is the service surface these handlers consume.
type Onboarder interface {
	OnboardingURL(ctx context.Context, slug string) (string, error)
	Get(ctx context.Context, slug string) (*dto.TenantRead, error)
}

// VerifyRequest asks for a fresh onboarding link for one tenant.
type VerifyRequest struct {
	Slug string `json:"slug" validate:"required"`
}

// VerifyHandler creates a Stripe onboarding link for the tenant so the
// seller can finish submitting their payment details.
func VerifyHandler(svc Onboarder, logger *slog.Logger) fiber.Handler {
	validate := validator.New()
	return func(c *fiber.Ctx) error {
		var req VerifyRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "invalid request body",
			})
		}
		if err := validate.Struct(req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		url, err := svc.OnboardingURL(c.Context(), req.Slug)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": "tenant not found",
				})
			}
			logger.Error("creating onboarding link failed", "tenant_slug", req.Slug, "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to create onboarding link",
			})
		}

		return c.JSON(fiber.Map{"url": url})
	}
}

// GetHandler returns the tenant record for a slug.
func GetHandler(svc Onboarder, logger *slog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		slug := c.Params("slug")

		tenant, err := svc.Get(c.Context(), slug)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
					"error": "tenant not found",
				})
			}
			logger.Error("tenant lookup failed", "tenant_slug", slug, "error", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "failed to look up tenant",
			})
		}

		return c.JSON(fiber.Map{
			"id":                       tenant.ID,
			"name":                     tenant.Name,
			"slug":                     tenant.Slug,
			"stripe_details_submitted": tenant.StripeDetailsSubmitted,
		})
	}
}

// Routes sets up the tenant onboarding routes.
func Routes(app *fiber.App, svc Onboarder, logger *slog.Logger) {
	app.Post("/api/v1/stripe/verify", VerifyHandler(svc, logger))
	app.Get("/api/v1/tenants/:slug", GetHandler(svc, logger))
}
