package admin

// Business-rule gates for destructive or sensitive actions. These require
// the admin's role to be on a fixed allow-list in addition to holding the
// permission, so a custom override list alone never unlocks them.

var (
	productGateRoles = []Role{RoleSuperAdmin, RoleInventoryAdmin}
	orderGateRoles   = []Role{RoleSuperAdmin, RoleSalesAdmin}
	pricingGateRoles = []Role{RoleSuperAdmin, RoleFinanceAdmin}
)

func roleIn(a *Admin, roles []Role) bool {
	if a == nil || !a.isActive {
		return false
	}
	for _, r := range roles {
		if a.role == r {
			return true
		}
	}
	return false
}

// CanManageProducts reports whether the admin's role may operate on the
// product catalog at all. Permission overrides are ignored here.
func CanManageProducts(a *Admin) bool {
	return roleIn(a, productGateRoles)
}

// CanManageCategories shares the product allow-list.
func CanManageCategories(a *Admin) bool {
	return roleIn(a, productGateRoles)
}

// CanDeleteProduct requires the delete permission and the product role gate.
func CanDeleteProduct(a *Admin) bool {
	return Can(a, PermProductsDelete) && CanManageProducts(a)
}

// CanDeleteCategory requires the delete permission and the category role gate.
func CanDeleteCategory(a *Admin) bool {
	return Can(a, PermCategoriesDelete) && CanManageCategories(a)
}

// CanManageOrders reports whether the admin's role may operate on orders.
func CanManageOrders(a *Admin) bool {
	return roleIn(a, orderGateRoles)
}

// CanEditOrderItems requires the edit permission and the order role gate.
func CanEditOrderItems(a *Admin) bool {
	return Can(a, PermOrdersEditItems) && CanManageOrders(a)
}

// CanDeleteOrderItems requires the delete permission and the order role gate.
func CanDeleteOrderItems(a *Admin) bool {
	return Can(a, PermOrdersDeleteItems) && CanManageOrders(a)
}

// CanManageAdmins is restricted to the super admin role.
func CanManageAdmins(a *Admin) bool {
	return roleIn(a, []Role{RoleSuperAdmin})
}

// CanManagePricing requires the pricing permission and the finance role gate.
func CanManagePricing(a *Admin) bool {
	return Can(a, PermFinanceManagePricing) && roleIn(a, pricingGateRoles)
}
