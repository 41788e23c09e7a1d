package onboarding

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/amirasaad/marketplace/pkg/domain"
	"github.com/amirasaad/marketplace/pkg/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82"
)

type fakeTenants struct {
	bySlug map[string]*dto.TenantRead
}

func (f *fakeTenants) GetBySlug(_ context.Context, slug string) (*dto.TenantRead, error) {
	return f.bySlug[slug], nil
}

func (f *fakeTenants) UpdateByStripeAccount(_ context.Context, _ string, _ *dto.TenantUpdate) (int64, error) {
	return 0, errors.New("not used")
}

type fakeGateway struct {
	lastAccount string
	err         error
}

func (f *fakeGateway) ConstructEvent(_ []byte, _ string) (stripe.Event, error) {
	return stripe.Event{}, errors.New("not used")
}

func (f *fakeGateway) RetrieveSession(_ context.Context, _, _ string) (*stripe.CheckoutSession, error) {
	return nil, errors.New("not used")
}

func (f *fakeGateway) CreateOnboardingLink(_ context.Context, stripeAccountID string) (string, error) {
	f.lastAccount = stripeAccountID
	if f.err != nil {
		return "", f.err
	}
	return "https://connect.stripe.com/setup/s/test", nil
}

func TestOnboardingURL(t *testing.T) {
	tenants := &fakeTenants{bySlug: map[string]*dto.TenantRead{
		"course-shop": {ID: uuid.New(), Slug: "course-shop", StripeAccountID: "acct_9"},
	}}
	gateway := &fakeGateway{}
	svc := New(tenants, gateway, slog.Default())

	url, err := svc.OnboardingURL(context.Background(), "course-shop")
	require.NoError(t, err)
	assert.Equal(t, "https://connect.stripe.com/setup/s/test", url)
	assert.Equal(t, "acct_9", gateway.lastAccount)
}

func TestOnboardingURL_UnknownTenant(t *testing.T) {
	svc := New(&fakeTenants{bySlug: map[string]*dto.TenantRead{}}, &fakeGateway{}, slog.Default())

	_, err := svc.OnboardingURL(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGet(t *testing.T) {
	tenants := &fakeTenants{bySlug: map[string]*dto.TenantRead{
		"course-shop": {ID: uuid.New(), Slug: "course-shop", StripeAccountID: "acct_9", StripeDetailsSubmitted: true},
	}}
	svc := New(tenants, &fakeGateway{}, slog.Default())

	tenant, err := svc.Get(context.Background(), "course-shop")
	require.NoError(t, err)
	assert.True(t, tenant.StripeDetailsSubmitted)

	_, err = svc.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
