package order

import (
	"context"

	"github.com/amirasaad/marketplace/pkg/dto"
	orderrepo "github.com/amirasaad/marketplace/pkg/repository/order"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type repository struct {
	db *gorm.DB
}

// New creates a gorm-backed order repository.
func New(db *gorm.DB) orderrepo.Repository {
	return &repository{db: db}
}

func (r *repository) Create(
	ctx context.Context,
	create *dto.OrderCreate,
) error {
	order := &Order{
		ID:                create.ID,
		CheckoutSessionID: create.CheckoutSessionID,
		ProductID:         create.ProductID,
		StripeAccountID:   create.StripeAccountID,
		UserID:            create.UserID,
		ProductName:       create.ProductName,
	}
	// ON CONFLICT DO NOTHING over the natural key: a redelivered or
	// concurrently delivered session never creates a duplicate row.
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "checkout_session_id"},
			{Name: "product_id"},
		},
		DoNothing: true,
	}).Create(order).Error
}

func (r *repository) ListBySession(
	ctx context.Context,
	checkoutSessionID string,
) ([]*dto.OrderRead, error) {
	var orders []Order
	if err := r.db.WithContext(
		ctx,
	).Where("checkout_session_id = ?", checkoutSessionID).
		Order("created_at").
		Find(&orders).Error; err != nil {
		return nil, err
	}

	result := make([]*dto.OrderRead, 0, len(orders))
	for i := range orders {
		result = append(result, mapModelToDTO(&orders[i]))
	}
	return result, nil
}

func mapModelToDTO(m *Order) *dto.OrderRead {
	return &dto.OrderRead{
		ID:                m.ID,
		CheckoutSessionID: m.CheckoutSessionID,
		StripeAccountID:   m.StripeAccountID,
		UserID:            m.UserID,
		ProductID:         m.ProductID,
		ProductName:       m.ProductName,
		CreatedAt:         m.CreatedAt,
	}
}
