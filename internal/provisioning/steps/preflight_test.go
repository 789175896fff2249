package steps

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secureweb/secureweb/internal/platform/azure"
)

func TestPreflight_PopulatesState(t *testing.T) {
	t.Parallel()
	ctx, _ := testContext(&azure.MockClient{})

	err := NewPreflight().Run(ctx)

	require.NoError(t, err)
	assert.Equal(t, "mock-tenant", ctx.State.TenantID)
	assert.Equal(t, "mock-object", ctx.State.ObjectID)
	assert.Equal(t, "Mock Subscription", ctx.State.SubscriptionName)
}

func TestPreflight_RejectsDisabledSubscription(t *testing.T) {
	t.Parallel()
	mock := &azure.MockClient{
		GetSubscriptionFunc: func(_ context.Context) (*azure.Subscription, error) {
			return &azure.Subscription{ID: "sub-id", State: "Disabled"}, nil
		},
	}
	ctx, _ := testContext(mock)

	err := NewPreflight().Run(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not Enabled")
}

func TestPreflight_SubscriptionError(t *testing.T) {
	t.Parallel()
	probeErr := errors.New("credential chain exhausted")
	mock := &azure.MockClient{
		GetSubscriptionFunc: func(_ context.Context) (*azure.Subscription, error) {
			return nil, probeErr
		},
	}
	ctx, _ := testContext(mock)

	err := NewPreflight().Run(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, probeErr)
}

func TestPreflight_PrincipalError(t *testing.T) {
	t.Parallel()
	mock := &azure.MockClient{
		CallerPrincipalFunc: func(_ context.Context) (*azure.Principal, error) {
			return nil, errors.New("token has no oid claim")
		},
	}
	ctx, _ := testContext(mock)

	err := NewPreflight().Run(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "caller principal")
}
