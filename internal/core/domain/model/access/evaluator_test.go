package access_test

import (
	"testing"

	"parcelflow/internal/core/domain/model/access"
	"parcelflow/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPrincipal(t *testing.T, roleName string, superAdmin bool) access.Principal {
	t.Helper()
	p, err := access.NewPrincipal(kernel.NewUUID(), roleName, superAdmin)
	require.NoError(t, err)
	return p
}

func TestEvaluator_DefaultPolicy(t *testing.T) {
	evaluator := access.NewEvaluator(access.DefaultRolePolicy())

	t.Run("admin_holds_every_permission", func(t *testing.T) {
		admin := newPrincipal(t, access.RoleAdmin, false)
		for _, key := range access.AllPermissionKeys() {
			assert.True(t, evaluator.HasPermission(admin, key), key.String())
		}
	})

	t.Run("manager_lacks_settings_and_users", func(t *testing.T) {
		manager := newPrincipal(t, access.RoleManager, false)

		assert.True(t, evaluator.HasPermission(manager, access.PermissionManageRiders))
		assert.True(t, evaluator.HasPermission(manager, access.PermissionViewReports))
		assert.False(t, evaluator.HasPermission(manager, access.PermissionManageSettings))
		assert.False(t, evaluator.HasPermission(manager, access.PermissionManageUsers))
	})

	t.Run("operator_runs_the_delivery_desk_only", func(t *testing.T) {
		operator := newPrincipal(t, access.RoleOperator, false)

		assert.True(t, evaluator.HasPermission(operator, access.PermissionViewDashboard))
		assert.True(t, evaluator.HasPermission(operator, access.PermissionManageCustomers))
		assert.True(t, evaluator.HasPermission(operator, access.PermissionManageDeliveries))
		assert.False(t, evaluator.HasPermission(operator, access.PermissionManageRiders))
		assert.False(t, evaluator.HasPermission(operator, access.PermissionManagePackages))
	})

	t.Run("viewer_is_read_only", func(t *testing.T) {
		viewer := newPrincipal(t, access.RoleViewer, false)

		assert.True(t, evaluator.HasPermission(viewer, access.PermissionViewDashboard))
		assert.True(t, evaluator.HasPermission(viewer, access.PermissionViewReports))
		assert.False(t, evaluator.HasPermission(viewer, access.PermissionManageDeliveries))
	})

	t.Run("unknown_role_denies", func(t *testing.T) {
		stranger := newPrincipal(t, "intern", false)
		assert.False(t, evaluator.HasPermission(stranger, access.PermissionViewDashboard))
	})

	t.Run("unknown_key_denies_even_for_admin", func(t *testing.T) {
		admin := newPrincipal(t, access.RoleAdmin, false)
		assert.False(t, evaluator.HasPermission(admin, access.PermissionKey(42)))
	})
}

func TestEvaluator_SuperAdminOverride(t *testing.T) {
	evaluator := access.NewEvaluator(access.DefaultRolePolicy())
	root := newPrincipal(t, "intern", true)

	for _, key := range access.AllPermissionKeys() {
		assert.True(t, evaluator.HasPermission(root, key), key.String())
	}
}

func TestEvaluator_CustomRoleWidensPolicyRole(t *testing.T) {
	evaluator := access.NewEvaluator(access.DefaultRolePolicy())

	custom, err := access.NewRole("night_shift", map[access.PermissionKey]bool{
		access.PermissionManagePackages: true,
	})
	require.NoError(t, err)

	t.Run("custom_grant_adds_to_policy_role", func(t *testing.T) {
		viewer, err := access.NewPrincipalWithCustomRole(
			kernel.NewUUID(), access.RoleViewer, custom, false)
		require.NoError(t, err)

		assert.True(t, evaluator.HasPermission(viewer, access.PermissionManagePackages))
		assert.True(t, evaluator.HasPermission(viewer, access.PermissionViewReports))
	})

	t.Run("custom_role_denial_falls_back_to_default_table", func(t *testing.T) {
		viewer, err := access.NewPrincipalWithCustomRole(
			kernel.NewUUID(), access.RoleViewer, custom, false)
		require.NoError(t, err)

		// The custom role does not grant view_dashboard, but the viewer
		// defaults do. The custom role can widen access, never narrow it.
		assert.True(t, evaluator.HasPermission(viewer, access.PermissionViewDashboard))
		assert.False(t, evaluator.HasPermission(viewer, access.PermissionManageSettings))
	})

	t.Run("unknown_policy_role_leaves_only_custom_grants", func(t *testing.T) {
		contractor, err := access.NewPrincipalWithCustomRole(
			kernel.NewUUID(), "contractor", custom, false)
		require.NoError(t, err)

		assert.True(t, evaluator.HasPermission(contractor, access.PermissionManagePackages))
		assert.False(t, evaluator.HasPermission(contractor, access.PermissionViewDashboard))
	})
}

func TestNewRole(t *testing.T) {
	t.Run("rejects_empty_name", func(t *testing.T) {
		_, err := access.NewRole("", nil)
		require.Error(t, err)
	})

	t.Run("rejects_unknown_grant_keys", func(t *testing.T) {
		_, err := access.NewRole("custom", map[access.PermissionKey]bool{
			access.PermissionKey(42): true,
		})
		require.Error(t, err)
	})
}

func TestPermissionKeyFromString(t *testing.T) {
	key, err := access.PermissionKeyFromString("manage_riders")
	require.NoError(t, err)
	assert.Equal(t, access.PermissionManageRiders, key)

	_, err = access.PermissionKeyFromString("launch_rockets")
	require.Error(t, err)
}
