package dto

import (
	"time"

	"github.com/google/uuid"
)

// OrderCreate carries the data for one order row, derived from a single
// line item of a completed checkout session.
type OrderCreate struct {
	ID                uuid.UUID
	CheckoutSessionID string
	// StripeAccountID is the connected account the sale settled through.
	// Nil for platform-direct sales.
	StripeAccountID *string
	UserID          uuid.UUID
	ProductID       string
	ProductName     string
}

// OrderRead is the read model for a persisted order.
type OrderRead struct {
	ID                uuid.UUID
	CheckoutSessionID string
	StripeAccountID   *string
	UserID            uuid.UUID
	ProductID         string
	ProductName       string
	CreatedAt         time.Time
}
