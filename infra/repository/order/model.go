package order

import (
	"time"

	"github.com/google/uuid"
)

// Order is the gorm model for materialized orders. The composite unique
// index over (checkout_session_id, product_id) is what makes webhook
// redelivery safe: duplicate inserts collapse to no-ops at the database.
type Order struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	CheckoutSessionID string    `gorm:"not null;uniqueIndex:idx_orders_session_product"`
	ProductID         string    `gorm:"not null;uniqueIndex:idx_orders_session_product"`
	StripeAccountID   *string   `gorm:"index"`
	UserID            uuid.UUID `gorm:"type:uuid;not null;index"`
	ProductName       string    `gorm:"not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (Order) TableName() string { return "orders" }
