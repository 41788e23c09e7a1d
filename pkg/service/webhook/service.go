// Package webhook turns verified Stripe events into durable, tenant-attributed
// records: one order per line item of a completed checkout session, and
// readiness-flag updates on tenant records for connected-account changes.
package webhook

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"slices"

	"github.com/amirasaad/marketplace/pkg/dto"
	"github.com/amirasaad/marketplace/pkg/provider/payment"
	orderrepo "github.com/amirasaad/marketplace/pkg/repository/order"
	tenantrepo "github.com/amirasaad/marketplace/pkg/repository/tenant"
	userrepo "github.com/amirasaad/marketplace/pkg/repository/user"
	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"
)

// permittedEvents is the allow-list. Types outside it are acknowledged and
// dropped; types inside it must have a registered handler.
var permittedEvents = []string{
	"checkout.session.completed",
	"account.updated",
}

// Result reports how an event was disposed of.
type Result string

const (
	// ResultProcessed means a handler ran to completion.
	ResultProcessed Result = "processed"
	// ResultIgnored means the type is outside the allow-list; receipt is
	// acknowledged and nothing else happens.
	ResultIgnored Result = "ignored"
)

type handlerFunc func(ctx context.Context, event stripe.Event, log *slog.Logger) error

// Service is the webhook processing pipeline behind the HTTP boundary.
type Service struct {
	users    userrepo.Repository
	orders   orderrepo.Repository
	tenants  tenantrepo.Repository
	gateway  payment.Gateway
	logger   *slog.Logger
	handlers map[string]handlerFunc
}

// New wires the pipeline with its collaborators and registers one handler
// per allow-listed event type.
func New(
	users userrepo.Repository,
	orders orderrepo.Repository,
	tenants tenantrepo.Repository,
	gateway payment.Gateway,
	logger *slog.Logger,
) *Service {
	s := &Service{
		users:   users,
		orders:  orders,
		tenants: tenants,
		gateway: gateway,
		logger:  logger,
	}
	s.handlers = map[string]handlerFunc{
		"checkout.session.completed": s.handleCheckoutSessionCompleted,
		"account.updated":            s.handleAccountUpdated,
	}
	return s
}

// Process classifies and dispatches one verified event. Unlisted types are a
// soft no-op; an allow-listed type with no handler fails loudly.
func (s *Service) Process(ctx context.Context, event stripe.Event) (Result, error) {
	log := s.logger.With(
		"event_id", event.ID,
		"event_type", event.Type,
	)

	if !slices.Contains(permittedEvents, string(event.Type)) {
		log.Info("ignoring event type outside allow-list")
		return ResultIgnored, nil
	}

	handler, ok := s.handlers[string(event.Type)]
	if !ok {
		err := processingErr(
			CodeUnsupportedEventType,
			event.ID,
			fmt.Errorf("permitted event type %q has no handler", event.Type),
		)
		log.Error("allow-listed event type is unhandled", "error", err)
		return "", err
	}

	if err := handler(ctx, event, log); err != nil {
		return "", err
	}
	return ResultProcessed, nil
}

// handleCheckoutSessionCompleted materializes one order per line item of the
// completed session. The session is always re-retrieved from Stripe with
// line items expanded; the webhook payload is not trusted to carry them.
func (s *Service) handleCheckoutSessionCompleted(
	ctx context.Context,
	event stripe.Event,
	log *slog.Logger,
) error {
	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		return fmt.Errorf("parsing checkout.session.completed: %w", err)
	}

	log = log.With("checkout_session_id", session.ID)

	rawUserID, ok := session.Metadata["user_id"]
	if !ok || rawUserID == "" {
		return processingErr(CodeMissingBuyer, event.ID,
			fmt.Errorf("session %s metadata has no user_id", session.ID))
	}
	userID, err := uuid.Parse(rawUserID)
	if err != nil {
		return processingErr(CodeMissingBuyer, event.ID,
			fmt.Errorf("invalid user_id in session %s metadata: %w", session.ID, err))
	}

	buyer, err := s.users.Get(ctx, userID)
	if err != nil {
		return processingErr(CodeUpstreamUnavailable, event.ID,
			fmt.Errorf("looking up user %s: %w", userID, err))
	}
	if buyer == nil {
		return processingErr(CodeUnknownBuyer, event.ID,
			fmt.Errorf("no user with id %s", userID))
	}

	// Connected-account-scoped sessions must be retrieved in that account's
	// context. Platform-direct sales carry no account id.
	expanded, err := s.gateway.RetrieveSession(ctx, session.ID, event.Account)
	if err != nil {
		return processingErr(CodeUpstreamUnavailable, event.ID,
			fmt.Errorf("retrieving session %s: %w", session.ID, err))
	}

	if expanded.LineItems == nil || len(expanded.LineItems.Data) == 0 {
		return processingErr(CodeEmptyOrder, event.ID,
			fmt.Errorf("session %s has no line items", session.ID))
	}

	var stripeAccountID *string
	if event.Account != "" {
		stripeAccountID = &event.Account
	}

	for i, item := range expanded.LineItems.Data {
		if item.Price == nil || item.Price.Product == nil {
			return fmt.Errorf("session %s line item %d is missing expanded product data", session.ID, i)
		}
		product := item.Price.Product
		productID, ok := product.Metadata["id"]
		if !ok || productID == "" {
			return fmt.Errorf("session %s line item %d: product %s has no platform id in metadata", session.ID, i, product.ID)
		}

		create := &dto.OrderCreate{
			ID:                uuid.New(),
			CheckoutSessionID: session.ID,
			StripeAccountID:   stripeAccountID,
			UserID:            buyer.ID,
			ProductID:         productID,
			ProductName:       product.Name,
		}
		// Create is idempotent on (checkout_session_id, product_id), so a
		// redelivery after a partial failure only fills in the missing rows.
		if err := s.orders.Create(ctx, create); err != nil {
			return processingErr(CodeUpstreamUnavailable, event.ID,
				fmt.Errorf("persisting order for product %s: %w", productID, err))
		}
	}

	log.Info("orders materialized",
		"user_id", buyer.ID,
		"line_items", len(expanded.LineItems.Data),
	)
	return nil
}

// handleAccountUpdated propagates a connected account's details_submitted
// flag to the owning tenant. Re-applying the same flag is a no-op.
func (s *Service) handleAccountUpdated(
	ctx context.Context,
	event stripe.Event,
	log *slog.Logger,
) error {
	var account stripe.Account
	if err := json.Unmarshal(event.Data.Raw, &account); err != nil {
		return fmt.Errorf("parsing account.updated: %w", err)
	}

	submitted := account.DetailsSubmitted
	rows, err := s.tenants.UpdateByStripeAccount(ctx, account.ID, &dto.TenantUpdate{
		StripeDetailsSubmitted: &submitted,
	})
	if err != nil {
		return processingErr(CodeUpstreamUnavailable, event.ID,
			fmt.Errorf("updating tenant for account %s: %w", account.ID, err))
	}
	if rows == 0 {
		// A connected account with no tenant indicates an onboarding
		// linkage bug, not a benign race.
		return processingErr(CodeUnlinkedTenant, event.ID,
			fmt.Errorf("no tenant linked to account %s", account.ID))
	}

	log.Info("tenant payment readiness updated",
		"account_id", account.ID,
		"details_submitted", submitted,
	)
	return nil
}
