package admin

// Tab identifies a named section of the dashboard UI.
type Tab string

const (
	TabDashboard       Tab = "dashboard"
	TabProducts        Tab = "products"
	TabCategories      Tab = "categories"
	TabOrders          Tab = "orders"
	TabUsers           Tab = "users"
	TabPincodes        Tab = "pincodes"
	TabPriceMultiplier Tab = "price-multiplier"
	TabAdmins          Tab = "admins"
)

// tabRequiredPermissions maps each tab to the permissions that open it.
// Holding any one of them suffices. An empty list means the tab is open to
// every active admin whose role allow-list includes it.
var tabRequiredPermissions = map[Tab][]Permission{
	TabDashboard:       {},
	TabProducts:        {PermProductsView},
	TabCategories:      {PermCategoriesView},
	TabOrders:          {PermOrdersView},
	TabUsers:           {PermUsersView},
	TabPincodes:        {PermSystemManagePincodes},
	TabPriceMultiplier: {PermFinanceManagePricing},
	TabAdmins:          {PermAdminsView},
}

// roleAllowedTabs is the per-role allow-list. A tab outside the list stays
// hidden even when the role's permissions would satisfy its requirements.
var roleAllowedTabs = map[Role][]Tab{
	RoleSuperAdmin: {
		TabDashboard, TabProducts, TabCategories, TabOrders,
		TabUsers, TabPincodes, TabPriceMultiplier, TabAdmins,
	},
	RoleSalesAdmin: {
		TabDashboard, TabOrders, TabProducts, TabUsers,
	},
	RoleInventoryAdmin: {
		TabDashboard, TabProducts, TabCategories, TabOrders, TabPincodes,
	},
	RoleCustomerAdmin: {
		TabDashboard, TabUsers, TabOrders,
	},
	RoleFinanceAdmin: {
		TabDashboard, TabOrders, TabProducts, TabPriceMultiplier,
	},
}

func (t Tab) String() string {
	return string(t)
}

// IsValid reports whether the tab is a known dashboard section.
func (t Tab) IsValid() bool {
	_, ok := tabRequiredPermissions[t]
	return ok
}

// RoleAllowedTabs returns a copy of the allow-list for the role.
func RoleAllowedTabs(r Role) []Tab {
	tabs, ok := roleAllowedTabs[r]
	if !ok {
		return []Tab{}
	}
	out := make([]Tab, len(tabs))
	copy(out, tabs)
	return out
}

// TabRequiredPermissions returns a copy of the permissions opening a tab.
func TabRequiredPermissions(t Tab) []Permission {
	perms, ok := tabRequiredPermissions[t]
	if !ok {
		return []Permission{}
	}
	out := make([]Permission, len(perms))
	copy(out, perms)
	return out
}

// HasTabAccess decides whether the admin may see the tab:
//  1. never for a nil or inactive admin,
//  2. always for an active super admin,
//  3. never for a tab outside the role's allow-list,
//  4. otherwise when the tab has no required permissions, or the admin
//     holds at least one of them.
func HasTabAccess(a *Admin, tab Tab) bool {
	if a == nil || !a.isActive {
		return false
	}

	if a.role.IsSuper() {
		return true
	}

	allowed := false
	for _, t := range roleAllowedTabs[a.role] {
		if t == tab {
			allowed = true
			break
		}
	}
	if !allowed {
		return false
	}

	required := tabRequiredPermissions[tab]
	if len(required) == 0 {
		return true
	}
	return CanAny(a, required)
}

// AccessibleTabs returns the tabs the admin may see, in the role
// allow-list order. A nil or inactive admin still gets the landing tab;
// access to it is never denied.
func AccessibleTabs(a *Admin) []Tab {
	if a == nil || !a.isActive {
		return []Tab{TabDashboard}
	}

	if a.role.IsSuper() {
		return RoleAllowedTabs(a.role)
	}

	tabs := make([]Tab, 0, len(roleAllowedTabs[a.role]))
	for _, t := range roleAllowedTabs[a.role] {
		if HasTabAccess(a, t) {
			tabs = append(tabs, t)
		}
	}
	return tabs
}
