// Package stripepayment implements the payment gateway against the Stripe
// API using the official client.
package stripepayment

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amirasaad/marketplace/pkg/config"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

// Provider implements payment.Gateway using Stripe.
type Provider struct {
	client *stripe.Client
	cfg    *config.Stripe
	logger *slog.Logger
}

// New creates a Stripe-backed payment gateway.
func New(cfg *config.Stripe, logger *slog.Logger) *Provider {
	return &Provider{
		client: stripe.NewClient(cfg.ApiKey),
		cfg:    cfg,
		logger: logger,
	}
}

// ConstructEvent verifies the Stripe-Signature header against the raw body
// and parses the event. The verifier checks the HMAC and the timestamp skew;
// callers get a single opaque error so the response never reveals which
// check failed.
func (p *Provider) ConstructEvent(payload []byte, sigHeader string) (stripe.Event, error) {
	if p.cfg.WebhookSecret == "" {
		return stripe.Event{}, fmt.Errorf("webhook signing secret not configured")
	}

	event, err := webhook.ConstructEvent(payload, sigHeader, p.cfg.WebhookSecret)
	if err != nil {
		return stripe.Event{}, fmt.Errorf("webhook signature verification failed")
	}
	return event, nil
}

// RetrieveSession fetches the authoritative session with line items and
// nested product data expanded. For connected-account sales the retrieval
// must run in that account's context; platform-direct sales skip the header.
func (p *Provider) RetrieveSession(
	ctx context.Context,
	id, stripeAccountID string,
) (*stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionRetrieveParams{}
	params.AddExpand("line_items.data.price.product")
	if stripeAccountID != "" {
		params.SetStripeAccount(stripeAccountID)
	}

	session, err := p.client.V1CheckoutSessions.Retrieve(ctx, id, params)
	if err != nil {
		return nil, fmt.Errorf("retrieving checkout session: %w", err)
	}
	return session, nil
}

// CreateOnboardingLink mints a fresh account-onboarding link for the given
// connected account.
func (p *Provider) CreateOnboardingLink(
	ctx context.Context,
	stripeAccountID string,
) (string, error) {
	params := &stripe.AccountLinkCreateParams{
		Account:    stripe.String(stripeAccountID),
		RefreshURL: stripe.String(p.cfg.OnboardingRefreshURL),
		ReturnURL:  stripe.String(p.cfg.OnboardingReturnURL),
		Type:       stripe.String("account_onboarding"),
	}

	link, err := p.client.V1AccountLinks.Create(ctx, params)
	if err != nil {
		return "", fmt.Errorf("failed to create account link: %w", err)
	}
	return link.URL, nil
}
