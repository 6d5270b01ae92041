package admin

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// Test helpers
// =============================================================================

// mockSIDGenerator generates predictable short IDs for testing.
func mockSIDGenerator() func() (string, error) {
	counter := 0
	return func() (string, error) {
		counter++
		return fmt.Sprintf("adm_test_%d", counter), nil
	}
}

// reconstructAdmin builds an admin from persistence-shaped data with sane defaults.
func reconstructAdmin(t *testing.T, role Role, overrides []Permission, active bool) *Admin {
	t.Helper()
	a, err := ReconstructAdmin(
		1, "adm_abc123", "auth_xyz",
		"staff@example.com", "Staff Member",
		role, overrides, active,
		"adm_creator", nil,
		time.Now().Add(-24*time.Hour), time.Now(),
	)
	require.NoError(t, err)
	return a
}

func TestEffectivePermissions_NilAdmin(t *testing.T) {
	assert.Empty(t, EffectivePermissions(nil))
}

func TestEffectivePermissions_InactiveAlwaysEmpty(t *testing.T) {
	tests := []struct {
		name      string
		role      Role
		overrides []Permission
	}{
		{"inactive sales admin", RoleSalesAdmin, nil},
		{"inactive finance admin with overrides", RoleFinanceAdmin, []Permission{PermOrdersDeleteItems}},
		{"inactive super admin", RoleSuperAdmin, nil},
		{"inactive super admin with overrides", RoleSuperAdmin, []Permission{PermUsersView}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := reconstructAdmin(t, tt.role, tt.overrides, false)
			assert.Empty(t, EffectivePermissions(a))
		})
	}
}

func TestEffectivePermissions_ActiveSuperAdminGetsFullCatalog(t *testing.T) {
	a := reconstructAdmin(t, RoleSuperAdmin, nil, true)
	assert.Equal(t, AllPermissions(), EffectivePermissions(a))
}

func TestEffectivePermissions_SuperAdminIgnoresOverrides(t *testing.T) {
	a := reconstructAdmin(t, RoleSuperAdmin, []Permission{PermUsersView}, true)
	assert.Equal(t, AllPermissions(), EffectivePermissions(a))
}

func TestEffectivePermissions_OverridesReplaceDefaults(t *testing.T) {
	overrides := []Permission{PermOrdersDeleteItems}
	a := reconstructAdmin(t, RoleSalesAdmin, overrides, true)

	got := EffectivePermissions(a)
	assert.Equal(t, overrides, got, "overrides must replace role defaults, not merge with them")
	assert.False(t, Can(a, PermUsersView), "role default must not leak through an override")
}

func TestEffectivePermissions_EmptyOverridesFallBackToDefaults(t *testing.T) {
	for _, overrides := range [][]Permission{nil, {}} {
		a := reconstructAdmin(t, RoleFinanceAdmin, overrides, true)
		assert.Equal(t, DefaultPermissions(RoleFinanceAdmin), EffectivePermissions(a))
	}
}

func TestEffectivePermissions_FinanceAdminDefaults(t *testing.T) {
	a := reconstructAdmin(t, RoleFinanceAdmin, nil, true)

	want := []Permission{
		PermUsersView,
		PermProductsView,
		PermOrdersView,
		PermFinanceViewReports,
		PermFinanceManagePricing,
		PermFinanceManageDiscounts,
		PermSystemViewAnalytics,
	}
	assert.ElementsMatch(t, want, EffectivePermissions(a))
	assert.False(t, Can(a, PermAdminsDelete))
}

func TestEffectivePermissions_Deterministic(t *testing.T) {
	a := reconstructAdmin(t, RoleInventoryAdmin, nil, true)
	assert.Equal(t, EffectivePermissions(a), EffectivePermissions(a))
}

func TestEffectivePermissions_ReturnedSliceIsACopy(t *testing.T) {
	a := reconstructAdmin(t, RoleSalesAdmin, nil, true)

	got := EffectivePermissions(a)
	require.NotEmpty(t, got)
	got[0] = Permission("tampered.token")

	assert.NotContains(t, EffectivePermissions(a), Permission("tampered.token"))
	assert.NotContains(t, DefaultPermissions(RoleSalesAdmin), Permission("tampered.token"))
}

func TestEffectivePermissionSet_MatchesList(t *testing.T) {
	a := reconstructAdmin(t, RoleCustomerAdmin, nil, true)

	list := EffectivePermissions(a)
	set := EffectivePermissionSet(a)
	require.Len(t, set, len(list))
	for _, p := range list {
		_, ok := set[p]
		assert.True(t, ok, "set missing %s", p)
	}
}
