// Package payment defines the platform's view of the payment provider.
package payment

import (
	"context"

	"github.com/stripe/stripe-go/v82"
)

// Gateway is the set of payment-provider primitives the pipeline consumes.
// The webhook payload itself is never trusted to carry complete line-item
// data; RetrieveSession is the authoritative read.
type Gateway interface {
	// ConstructEvent verifies the signature header against the raw request
	// body and returns the parsed event. Any failure (missing header, bad
	// signature, stale timestamp) is returned as a single opaque error.
	ConstructEvent(payload []byte, sigHeader string) (stripe.Event, error)

	// RetrieveSession re-fetches a checkout session with line items and
	// nested product data expanded. When stripeAccountID is non-empty the
	// retrieval runs in that connected account's context.
	RetrieveSession(ctx context.Context, id, stripeAccountID string) (*stripe.CheckoutSession, error)

	// CreateOnboardingLink creates a fresh account-onboarding link for the
	// given connected account and returns its URL.
	CreateOnboardingLink(ctx context.Context, stripeAccountID string) (string, error)
}
