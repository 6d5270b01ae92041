package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHasTabAccess_NilAndInactive(t *testing.T) {
	for _, tab := range []Tab{TabDashboard, TabOrders, TabAdmins} {
		assert.False(t, HasTabAccess(nil, tab))
	}

	inactive := reconstructAdmin(t, RoleSuperAdmin, nil, false)
	for _, tab := range []Tab{TabDashboard, TabOrders, TabAdmins} {
		assert.False(t, HasTabAccess(inactive, tab))
	}
}

func TestHasTabAccess_SuperAdminSeesEverything(t *testing.T) {
	a := reconstructAdmin(t, RoleSuperAdmin, nil, true)
	for tab := range tabRequiredPermissions {
		assert.True(t, HasTabAccess(a, tab), "super admin denied tab %s", tab)
	}
}

func TestHasTabAccess_FinanceAdminScenario(t *testing.T) {
	a := reconstructAdmin(t, RoleFinanceAdmin, nil, true)

	assert.True(t, HasTabAccess(a, TabPriceMultiplier))
	assert.True(t, HasTabAccess(a, TabDashboard))
	assert.False(t, HasTabAccess(a, TabAdmins))
	assert.False(t, HasTabAccess(a, TabPincodes))
}

func TestHasTabAccess_AllowListTrumpsPermissions(t *testing.T) {
	// Users tab requires users.view, which the finance admin holds by
	// default, but the tab is outside the finance allow-list.
	a := reconstructAdmin(t, RoleFinanceAdmin, nil, true)
	assert.True(t, Can(a, PermUsersView))
	assert.False(t, HasTabAccess(a, TabUsers))
}

func TestHasTabAccess_OverrideCanCloseTabs(t *testing.T) {
	// A sales admin whose override keeps only orders.delete_items loses
	// the view permissions that open the products and users tabs.
	a := reconstructAdmin(t, RoleSalesAdmin, []Permission{PermOrdersDeleteItems}, true)

	assert.False(t, HasTabAccess(a, TabProducts))
	assert.False(t, HasTabAccess(a, TabUsers))
	assert.True(t, HasTabAccess(a, TabDashboard), "permission-free tab stays open")
}

func TestAccessibleTabs_NilAndInactiveGetLandingOnly(t *testing.T) {
	assert.Equal(t, []Tab{TabDashboard}, AccessibleTabs(nil))

	inactive := reconstructAdmin(t, RoleSalesAdmin, nil, false)
	assert.Equal(t, []Tab{TabDashboard}, AccessibleTabs(inactive))
}

func TestAccessibleTabs_SuperAdminGetsFullAllowList(t *testing.T) {
	a := reconstructAdmin(t, RoleSuperAdmin, nil, true)
	assert.Equal(t, RoleAllowedTabs(RoleSuperAdmin), AccessibleTabs(a))
}

func TestAccessibleTabs_SubsetOfRoleAllowList(t *testing.T) {
	for _, role := range AllRoles() {
		a := reconstructAdmin(t, role, nil, true)
		allowed := RoleAllowedTabs(role)

		for _, tab := range AccessibleTabs(a) {
			assert.Contains(t, allowed, tab, "role %s: accessible tab %s outside allow-list", role, tab)
		}
	}
}

func TestAccessibleTabs_DefaultsOpenWholeAllowList(t *testing.T) {
	// With no overrides every role's defaults satisfy its own allow-list.
	for _, role := range AllRoles() {
		a := reconstructAdmin(t, role, nil, true)
		assert.Equal(t, RoleAllowedTabs(role), AccessibleTabs(a), "role %s", role)
	}
}

func TestAccessibleTabs_FilteredByOverrides(t *testing.T) {
	a := reconstructAdmin(t, RoleSalesAdmin, []Permission{PermOrdersView}, true)
	assert.Equal(t, []Tab{TabDashboard, TabOrders}, AccessibleTabs(a))
}

func TestTabCatalogConsistency(t *testing.T) {
	// Every allow-listed tab exists and every required permission is in
	// the permission catalog.
	for role, tabs := range roleAllowedTabs {
		assert.True(t, role.IsValid(), "allow-list keyed by unknown role %s", role)
		for _, tab := range tabs {
			assert.True(t, tab.IsValid(), "role %s allow-lists unknown tab %s", role, tab)
		}
	}
	for tab, perms := range tabRequiredPermissions {
		for _, p := range perms {
			assert.True(t, p.IsValid(), "tab %s requires unknown permission %s", tab, p)
		}
	}

	// Every role has an allow-list and it includes the landing tab.
	for _, role := range AllRoles() {
		tabs := RoleAllowedTabs(role)
		assert.NotEmpty(t, tabs, "role %s has no allow-list", role)
		assert.Contains(t, tabs, TabDashboard, "role %s allow-list misses the landing tab", role)
	}
}
