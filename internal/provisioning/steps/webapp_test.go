package steps

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/secureweb/secureweb/internal/platform/azure"
)

func TestWebApp_CreatesPlanAndSite(t *testing.T) {
	t.Parallel()
	var gotPlan azure.PlanOpts
	var gotSite azure.WebAppOpts
	mock := &azure.MockClient{
		CreateAppServicePlanFunc: func(_ context.Context, opts azure.PlanOpts) (string, error) {
			gotPlan = opts
			return "/subscriptions/s/resourceGroups/rg/providers/Microsoft.Web/serverfarms/plan-1", nil
		},
		CreateWebAppFunc: func(_ context.Context, opts azure.WebAppOpts) error {
			gotSite = opts
			return nil
		},
	}
	ctx, _ := testContext(mock)

	err := NewWebApp().Run(ctx)

	require.NoError(t, err)
	assert.Equal(t, "app-production-plan", gotPlan.Name)
	assert.Equal(t, "B1", gotPlan.SKUName)
	assert.Equal(t, "Basic", gotPlan.Tier)
	assert.Equal(t, "app-production-123456", gotSite.Name)
	assert.Equal(t, "PYTHON|3.11", gotSite.LinuxFx)
	// The site must land on the plan that was just created.
	assert.Equal(t, "/subscriptions/s/resourceGroups/rg/providers/Microsoft.Web/serverfarms/plan-1", gotSite.PlanID)
	assert.Equal(t, gotSite.PlanID, ctx.State.PlanID)
}

func TestWebApp_ConfiguresSite(t *testing.T) {
	t.Parallel()
	var gotSettings map[string]string
	var gotCommand string
	var logsEnabled, httpsOnly bool
	mock := &azure.MockClient{
		UpdateAppSettingsFunc: func(_ context.Context, _, site string, settings map[string]string) error {
			assert.Equal(t, "app-production-123456", site)
			gotSettings = settings
			return nil
		},
		SetStartupCommandFunc: func(_ context.Context, _, _, command string) error {
			gotCommand = command
			return nil
		},
		EnableSiteLogsFunc: func(_ context.Context, _, _ string) error {
			logsEnabled = true
			return nil
		},
		SetHTTPSOnlyFunc: func(_ context.Context, _, _ string) error {
			httpsOnly = true
			return nil
		},
	}
	ctx, _ := testContext(mock)
	ctx.State.InstrumentationKey = "ikey-1"

	err := NewWebApp().Run(ctx)

	require.NoError(t, err)
	assert.Equal(t, "startup.sh", gotCommand)
	assert.True(t, logsEnabled)
	assert.True(t, httpsOnly)
	assert.Equal(t, "ikey-1", gotSettings["APPINSIGHTS_INSTRUMENTATIONKEY"])
	assert.Contains(t, gotSettings, "SECRET_KEY")
	assert.Contains(t, gotSettings, "DATABASE_URL")
}

func TestWebApp_GrantsVaultAccessToIdentity(t *testing.T) {
	t.Parallel()
	var gotVault, gotTenant, gotObject string
	var gotPermissions []azure.SecretPermission
	mock := &azure.MockClient{
		AssignSystemIdentityFunc: func(_ context.Context, _, _ string) (string, error) {
			return "principal-1", nil
		},
		AddAccessPolicyFunc: func(_ context.Context, _, vault, tenantID, objectID string, permissions []azure.SecretPermission) error {
			gotVault, gotTenant, gotObject = vault, tenantID, objectID
			gotPermissions = permissions
			return nil
		},
	}
	ctx, _ := testContext(mock)
	ctx.State.TenantID = "tenant-1"

	err := NewWebApp().Run(ctx)

	require.NoError(t, err)
	assert.Equal(t, "principal-1", ctx.State.PrincipalID)
	assert.Equal(t, "app-kv-123456", gotVault)
	assert.Equal(t, "tenant-1", gotTenant)
	assert.Equal(t, "principal-1", gotObject)
	assert.Equal(t, []azure.SecretPermission{azure.SecretGet, azure.SecretList}, gotPermissions)
}

func TestWebApp_Errors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		mock    *azure.MockClient
		wantErr string
	}{
		{
			name: "plan",
			mock: &azure.MockClient{
				CreateAppServicePlanFunc: func(_ context.Context, _ azure.PlanOpts) (string, error) {
					return "", errors.New("quota")
				},
			},
			wantErr: "failed to create app service plan",
		},
		{
			name: "site",
			mock: &azure.MockClient{
				CreateWebAppFunc: func(_ context.Context, _ azure.WebAppOpts) error {
					return errors.New("name taken")
				},
			},
			wantErr: "failed to create web app",
		},
		{
			name: "identity",
			mock: &azure.MockClient{
				AssignSystemIdentityFunc: func(_ context.Context, _, _ string) (string, error) {
					return "", errors.New("no principal")
				},
			},
			wantErr: "failed to assign managed identity",
		},
		{
			name: "access policy",
			mock: &azure.MockClient{
				AddAccessPolicyFunc: func(_ context.Context, _, _, _, _ string, _ []azure.SecretPermission) error {
					return errors.New("denied")
				},
			},
			wantErr: "failed to grant vault access",
		},
		{
			name: "https",
			mock: &azure.MockClient{
				SetHTTPSOnlyFunc: func(_ context.Context, _, _ string) error {
					return errors.New("conflict")
				},
			},
			wantErr: "failed to enforce HTTPS",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ctx, _ := testContext(tt.mock)

			err := NewWebApp().Run(ctx)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
