package tenant

import (
	"context"
	"errors"

	"github.com/amirasaad/marketplace/pkg/dto"
	tenantrepo "github.com/amirasaad/marketplace/pkg/repository/tenant"
	"gorm.io/gorm"
)

type repository struct {
	db *gorm.DB
}

// New creates a gorm-backed tenant repository.
func New(db *gorm.DB) tenantrepo.Repository {
	return &repository{db: db}
}

func (r *repository) GetBySlug(
	ctx context.Context,
	slug string,
) (*dto.TenantRead, error) {
	var tenant Tenant
	if err := r.db.WithContext(
		ctx,
	).Where("slug = ?", slug).First(&tenant).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return mapModelToDTO(&tenant), nil
}

func (r *repository) UpdateByStripeAccount(
	ctx context.Context,
	stripeAccountID string,
	update *dto.TenantUpdate,
) (int64, error) {
	updates := make(map[string]interface{})

	if update.StripeDetailsSubmitted != nil {
		updates["stripe_details_submitted"] = *update.StripeDetailsSubmitted
	}

	if len(updates) == 0 {
		return 0, nil
	}

	res := r.db.WithContext(ctx).Model(&Tenant{}).
		Where("stripe_account_id = ?", stripeAccountID).
		Updates(updates)
	return res.RowsAffected, res.Error
}

func mapModelToDTO(m *Tenant) *dto.TenantRead {
	return &dto.TenantRead{
		ID:                     m.ID,
		Name:                   m.Name,
		Slug:                   m.Slug,
		StripeAccountID:        m.StripeAccountID,
		StripeDetailsSubmitted: m.StripeDetailsSubmitted,
		CreatedAt:              m.CreatedAt,
	}
}
