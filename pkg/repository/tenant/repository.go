package tenant

import (
	"context"

	"github.com/amirasaad/marketplace/pkg/dto"
)

// Repository defines the operations the pipeline needs for tenants.
// Tenants are created at onboarding time, outside this pipeline; here they
// are only read and flag-updated.
type Repository interface {
	// GetBySlug returns the tenant with the given slug, or nil if no such
	// tenant exists.
	GetBySlug(ctx context.Context, slug string) (*dto.TenantRead, error)

	// UpdateByStripeAccount applies the update to the tenant whose
	// connected account id matches, returning the number of rows touched.
	// Zero rows means no tenant is linked to that account.
	UpdateByStripeAccount(ctx context.Context, stripeAccountID string, update *dto.TenantUpdate) (int64, error)
}
