// Package onboarding serves the seller-facing "verify your account" flow:
// it hands out fresh Stripe onboarding links and exposes a tenant's payment
// readiness.
package onboarding

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amirasaad/marketplace/pkg/domain"
	"github.com/amirasaad/marketplace/pkg/dto"
	"github.com/amirasaad/marketplace/pkg/provider/payment"
	tenantrepo "github.com/amirasaad/marketplace/pkg/repository/tenant"
)

// Service exposes tenant onboarding operations.
type Service struct {
	tenants tenantrepo.Repository
	gateway payment.Gateway
	logger  *slog.Logger
}

// New creates an onboarding service.
func New(tenants tenantrepo.Repository, gateway payment.Gateway, logger *slog.Logger) *Service {
	return &Service{tenants: tenants, gateway: gateway, logger: logger}
}

// OnboardingURL creates a fresh account-onboarding link for the tenant with
// the given slug. Links expire quickly on the Stripe side, so one is minted
// per request.
func (s *Service) OnboardingURL(ctx context.Context, slug string) (string, error) {
	tenant, err := s.tenants.GetBySlug(ctx, slug)
	if err != nil {
		return "", fmt.Errorf("looking up tenant %q: %w", slug, err)
	}
	if tenant == nil {
		return "", domain.ErrNotFound
	}

	url, err := s.gateway.CreateOnboardingLink(ctx, tenant.StripeAccountID)
	if err != nil {
		return "", fmt.Errorf("creating onboarding link for tenant %q: %w", slug, err)
	}

	s.logger.Info("onboarding link created", "tenant_slug", slug)
	return url, nil
}

// Get returns the tenant record for the given slug, including the payment
// readiness flag the storefront gates product creation on.
func (s *Service) Get(ctx context.Context, slug string) (*dto.TenantRead, error) {
	tenant, err := s.tenants.GetBySlug(ctx, slug)
	if err != nil {
		return nil, fmt.Errorf("looking up tenant %q: %w", slug, err)
	}
	if tenant == nil {
		return nil, domain.ErrNotFound
	}
	return tenant, nil
}
