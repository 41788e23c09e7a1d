package tenant

import (
	"time"

	"github.com/google/uuid"
)

// Tenant is the gorm model for seller tenants.
type Tenant struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name string    `gorm:"not null"`
	// Slug is the tenant's subdomain on the storefront.
	Slug                   string `gorm:"uniqueIndex;not null"`
	StripeAccountID        string `gorm:"uniqueIndex;not null"`
	StripeDetailsSubmitted bool   `gorm:"not null;default:false"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

func (Tenant) TableName() string { return "tenants" }
