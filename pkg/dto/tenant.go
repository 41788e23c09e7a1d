package dto

import (
	"time"

	"github.com/google/uuid"
)

// TenantRead is the read model for a seller tenant.
type TenantRead struct {
	ID                     uuid.UUID
	Name                   string
	Slug                   string
	StripeAccountID        string
	StripeDetailsSubmitted bool
	CreatedAt              time.Time
}

// TenantUpdate carries partial updates to a tenant record. Only non-nil
// fields are applied.
type TenantUpdate struct {
	StripeDetailsSubmitted *bool
}
