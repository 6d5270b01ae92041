package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	for _, role := range AllRoles() {
		got, ok := ParseRole(string(role))
		assert.True(t, ok)
		assert.Equal(t, role, got)
	}

	_, ok := ParseRole("intern")
	assert.False(t, ok)
	_, ok = ParseRole("")
	assert.False(t, ok)
}

func TestRoleIsSuper(t *testing.T) {
	assert.True(t, RoleSuperAdmin.IsSuper())
	for _, role := range []Role{RoleSalesAdmin, RoleInventoryAdmin, RoleCustomerAdmin, RoleFinanceAdmin} {
		assert.False(t, role.IsSuper())
	}
}

func TestDefaultPermissions_SubsetOfCatalog(t *testing.T) {
	for _, role := range AllRoles() {
		for _, p := range DefaultPermissions(role) {
			assert.True(t, p.IsValid(), "role %s grants unknown permission %s", role, p)
		}
	}
}

func TestDefaultPermissions_SuperAdminIsFullCatalog(t *testing.T) {
	assert.Equal(t, AllPermissions(), DefaultPermissions(RoleSuperAdmin))
}

func TestDefaultPermissions_UnknownRoleEmpty(t *testing.T) {
	assert.Empty(t, DefaultPermissions(Role("intern")))
}

func TestDefaultPermissions_ReturnsCopy(t *testing.T) {
	perms := DefaultPermissions(RoleSalesAdmin)
	require.NotEmpty(t, perms)
	perms[0] = Permission("tampered.token")
	assert.NotContains(t, DefaultPermissions(RoleSalesAdmin), Permission("tampered.token"))
}

func TestPermissionResourceAction(t *testing.T) {
	assert.Equal(t, "orders", PermOrdersEditItems.Resource())
	assert.Equal(t, "edit_items", PermOrdersEditItems.Action())
	assert.Equal(t, "finance", PermFinanceManagePricing.Resource())
}

func TestPermissionIsValid(t *testing.T) {
	assert.True(t, PermUsersView.IsValid())
	assert.False(t, Permission("users.fly").IsValid())
	assert.False(t, Permission("").IsValid())
}

func TestAllPermissions_NoDuplicates(t *testing.T) {
	seen := make(map[Permission]struct{})
	for _, p := range AllPermissions() {
		_, dup := seen[p]
		assert.False(t, dup, "duplicate permission %s", p)
		seen[p] = struct{}{}
	}
}
