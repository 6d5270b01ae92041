package admin

import "strings"

// Permission is an atomic capability token of the form "resource.action".
// The set of permissions is closed: every token the authorization checks
// ever consult is enumerated here.
type Permission string

const (
	PermUsersView         Permission = "users.view"
	PermUsersEdit         Permission = "users.edit"
	PermUsersDelete       Permission = "users.delete"
	PermUsersManageStatus Permission = "users.manage_status"

	PermProductsView   Permission = "products.view"
	PermProductsCreate Permission = "products.create"
	PermProductsEdit   Permission = "products.edit"
	PermProductsDelete Permission = "products.delete"

	PermCategoriesView   Permission = "categories.view"
	PermCategoriesCreate Permission = "categories.create"
	PermCategoriesEdit   Permission = "categories.edit"
	PermCategoriesDelete Permission = "categories.delete"

	PermOrdersView         Permission = "orders.view"
	PermOrdersUpdateStatus Permission = "orders.update_status"
	PermOrdersEditItems    Permission = "orders.edit_items"
	PermOrdersDeleteItems  Permission = "orders.delete_items"

	PermAdminsView   Permission = "admins.view"
	PermAdminsCreate Permission = "admins.create"
	PermAdminsEdit   Permission = "admins.edit"
	PermAdminsDelete Permission = "admins.delete"

	PermFinanceViewReports     Permission = "finance.view_reports"
	PermFinanceManagePricing   Permission = "finance.manage_pricing"
	PermFinanceManageDiscounts Permission = "finance.manage_discounts"

	PermSystemViewAnalytics  Permission = "system.view_analytics"
	PermSystemManagePincodes Permission = "system.manage_pincodes"
	PermSystemManageSettings Permission = "system.manage_settings"
)

// allPermissions is the full catalog. Order is stable so that
// EffectivePermissions of a super admin is deterministic.
var allPermissions = []Permission{
	PermUsersView,
	PermUsersEdit,
	PermUsersDelete,
	PermUsersManageStatus,
	PermProductsView,
	PermProductsCreate,
	PermProductsEdit,
	PermProductsDelete,
	PermCategoriesView,
	PermCategoriesCreate,
	PermCategoriesEdit,
	PermCategoriesDelete,
	PermOrdersView,
	PermOrdersUpdateStatus,
	PermOrdersEditItems,
	PermOrdersDeleteItems,
	PermAdminsView,
	PermAdminsCreate,
	PermAdminsEdit,
	PermAdminsDelete,
	PermFinanceViewReports,
	PermFinanceManagePricing,
	PermFinanceManageDiscounts,
	PermSystemViewAnalytics,
	PermSystemManagePincodes,
	PermSystemManageSettings,
}

var permissionSet = func() map[Permission]struct{} {
	m := make(map[Permission]struct{}, len(allPermissions))
	for _, p := range allPermissions {
		m[p] = struct{}{}
	}
	return m
}()

func (p Permission) String() string {
	return string(p)
}

// IsValid reports whether the token is part of the catalog.
func (p Permission) IsValid() bool {
	_, ok := permissionSet[p]
	return ok
}

// Resource returns the part before the dot, e.g. "orders".
func (p Permission) Resource() string {
	if i := strings.IndexByte(string(p), '.'); i >= 0 {
		return string(p)[:i]
	}
	return string(p)
}

// Action returns the part after the dot, e.g. "edit_items".
func (p Permission) Action() string {
	if i := strings.IndexByte(string(p), '.'); i >= 0 {
		return string(p)[i+1:]
	}
	return ""
}

// AllPermissions returns a copy of the full permission catalog.
func AllPermissions() []Permission {
	out := make([]Permission, len(allPermissions))
	copy(out, allPermissions)
	return out
}
