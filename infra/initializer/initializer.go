// Package initializer wires the application's dependencies: logger,
// database, repositories, payment gateway, and services.
package initializer

import (
	"fmt"
	"log/slog"

	"github.com/amirasaad/marketplace/infra"
	"github.com/amirasaad/marketplace/infra/provider/stripepayment"
	orderinfra "github.com/amirasaad/marketplace/infra/repository/order"
	tenantinfra "github.com/amirasaad/marketplace/infra/repository/tenant"
	userinfra "github.com/amirasaad/marketplace/infra/repository/user"
	"github.com/amirasaad/marketplace/pkg/config"
	"github.com/amirasaad/marketplace/pkg/provider/payment"
	"github.com/amirasaad/marketplace/pkg/service/onboarding"
	"github.com/amirasaad/marketplace/pkg/service/webhook"
	"gorm.io/gorm"
)

// Deps holds everything the web layer needs.
type Deps struct {
	Config     *config.App
	Logger     *slog.Logger
	DB         *gorm.DB
	Gateway    payment.Gateway
	Webhook    *webhook.Service
	Onboarding *onboarding.Service
}

// InitializeDependencies builds the full dependency graph from config.
func InitializeDependencies(cfg *config.App) (*Deps, error) {
	logger := setupLogger(cfg.Log)

	db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(
		&userinfra.User{},
		&tenantinfra.Tenant{},
		&orderinfra.Order{},
	); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	users := userinfra.New(db)
	orders := orderinfra.New(db)
	tenants := tenantinfra.New(db)

	gateway := stripepayment.New(cfg.Stripe, logger)

	return &Deps{
		Config:     cfg,
		Logger:     logger,
		DB:         db,
		Gateway:    gateway,
		Webhook:    webhook.New(users, orders, tenants, gateway, logger),
		Onboarding: onboarding.New(tenants, gateway, logger),
	}, nil
}
