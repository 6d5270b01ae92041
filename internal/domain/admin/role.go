package admin

// Role is one of a fixed set of named authority levels. Each role carries
// a static default permission list; super_admin implicitly holds every
// permission in the catalog.
type Role string

const (
	RoleSuperAdmin     Role = "super_admin"
	RoleSalesAdmin     Role = "sales_admin"
	RoleInventoryAdmin Role = "inventory_admin"
	RoleCustomerAdmin  Role = "customer_admin"
	RoleFinanceAdmin   Role = "finance_admin"
)

var allRoles = []Role{
	RoleSuperAdmin,
	RoleSalesAdmin,
	RoleInventoryAdmin,
	RoleCustomerAdmin,
	RoleFinanceAdmin,
}

// roleDefaults binds each non-super role to its static grant list. The
// super admin row is intentionally absent: it resolves to the full
// catalog, not to a list kept here.
var roleDefaults = map[Role][]Permission{
	RoleSalesAdmin: {
		PermUsersView,
		PermProductsView,
		PermOrdersView,
		PermOrdersUpdateStatus,
		PermOrdersEditItems,
		PermOrdersDeleteItems,
		PermSystemViewAnalytics,
	},
	RoleInventoryAdmin: {
		PermProductsView,
		PermProductsCreate,
		PermProductsEdit,
		PermProductsDelete,
		PermCategoriesView,
		PermCategoriesCreate,
		PermCategoriesEdit,
		PermCategoriesDelete,
		PermOrdersView,
		PermSystemManagePincodes,
	},
	RoleCustomerAdmin: {
		PermUsersView,
		PermUsersEdit,
		PermUsersManageStatus,
		PermOrdersView,
		PermSystemViewAnalytics,
	},
	RoleFinanceAdmin: {
		PermUsersView,
		PermProductsView,
		PermOrdersView,
		PermFinanceViewReports,
		PermFinanceManagePricing,
		PermFinanceManageDiscounts,
		PermSystemViewAnalytics,
	},
}

func (r Role) String() string {
	return string(r)
}

// IsValid reports whether the role is part of the closed role set.
func (r Role) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleSalesAdmin, RoleInventoryAdmin, RoleCustomerAdmin, RoleFinanceAdmin:
		return true
	}
	return false
}

// IsSuper reports whether the role bypasses per-permission checks.
func (r Role) IsSuper() bool {
	return r == RoleSuperAdmin
}

// ParseRole returns the role for s, or false if s is not a known role.
func ParseRole(s string) (Role, bool) {
	role := Role(s)
	return role, role.IsValid()
}

// AllRoles returns a copy of the closed role set.
func AllRoles() []Role {
	out := make([]Role, len(allRoles))
	copy(out, allRoles)
	return out
}

// DefaultPermissions returns a copy of the static grant list for the role.
// For super_admin it returns the full catalog; for unknown roles it
// returns an empty list.
func DefaultPermissions(r Role) []Permission {
	if r.IsSuper() {
		return AllPermissions()
	}
	defaults, ok := roleDefaults[r]
	if !ok {
		return []Permission{}
	}
	out := make([]Permission, len(defaults))
	copy(out, defaults)
	return out
}
