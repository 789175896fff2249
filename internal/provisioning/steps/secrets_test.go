package steps

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secureweb/secureweb/internal/platform/azure"
	"github.com/secureweb/secureweb/internal/provisioning"
)

func TestSecrets_WriteValuesToVault(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name      string
		secret    *Secret
		wantName  string
		wantValue string
	}{
		{
			name:      "django key",
			secret:    NewDjangoKeySecret(),
			wantName:  "django-secret-key",
			wantValue: "generated-django-secret-key",
		},
		{
			name:      "database password",
			secret:    NewDatabasePasswordSecret(),
			wantName:  "database-password",
			wantValue: "Passw0rdPassw0rdPassw0rd",
		},
		{
			name:      "storage key",
			secret:    NewStorageKeySecret(),
			wantName:  "storage-account-key",
			wantValue: "primary-key",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var gotVault, gotName, gotValue string
			mock := &azure.MockClient{
				SetSecretFunc: func(_ context.Context, vaultURI, name, value string) (string, error) {
					gotVault, gotName, gotValue = vaultURI, name, value
					return vaultURI + "secrets/" + name + "/v1", nil
				},
			}
			ctx, _ := testContext(mock)
			ctx.State.VaultURI = "https://app-kv-123456.vault.azure.net/"
			ctx.State.StorageKey = "primary-key"

			err := tt.secret.Run(ctx)

			require.NoError(t, err)
			assert.Equal(t, "https://app-kv-123456.vault.azure.net/", gotVault)
			assert.Equal(t, tt.wantName, gotName)
			assert.Equal(t, tt.wantValue, gotValue)
			assert.Equal(t,
				"https://app-kv-123456.vault.azure.net/secrets/"+tt.wantName+"/v1",
				ctx.State.SecretURI(tt.wantName))
		})
	}
}

func TestSecrets_BestEffort(t *testing.T) {
	t.Parallel()
	for _, secret := range []*Secret{
		NewDjangoKeySecret(),
		NewDatabasePasswordSecret(),
		NewStorageKeySecret(),
	} {
		assert.Equal(t, provisioning.BestEffort, secret.Policy(), secret.Name())
	}
}

func TestSecrets_EmptyValue(t *testing.T) {
	t.Parallel()
	var called bool
	mock := &azure.MockClient{
		SetSecretFunc: func(_ context.Context, _, _, _ string) (string, error) {
			called = true
			return "", nil
		},
	}
	ctx, _ := testContext(mock)
	// The storage step never ran, so there is no key to store.
	ctx.State.StorageKey = ""

	err := NewStorageKeySecret().Run(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no value available for secret storage-account-key")
	assert.False(t, called)
}

func TestSecrets_WriteError(t *testing.T) {
	t.Parallel()
	writeErr := errors.New("vault throttled")
	mock := &azure.MockClient{
		SetSecretFunc: func(_ context.Context, _, _, _ string) (string, error) {
			return "", writeErr
		},
	}
	ctx, _ := testContext(mock)

	err := NewDjangoKeySecret().Run(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, writeErr)
	assert.Empty(t, ctx.State.SecretURIs)
}
