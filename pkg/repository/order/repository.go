package order

import (
	"context"

	"github.com/amirasaad/marketplace/pkg/dto"
)

// Repository defines the write path for orders.
type Repository interface {
	// Create persists one order. Implementations must be idempotent over
	// the (checkout_session_id, product_id) natural key: creating an order
	// that already exists is a no-op, not an error. Webhook redelivery
	// depends on this.
	Create(ctx context.Context, create *dto.OrderCreate) error

	// ListBySession returns all orders materialized from one checkout
	// session, in creation order.
	ListBySession(ctx context.Context, checkoutSessionID string) ([]*dto.OrderRead, error)
}
