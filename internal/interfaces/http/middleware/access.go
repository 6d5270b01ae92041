package middleware

import (
	"github.com/gin-gonic/gin"

	"storeops/internal/domain/admin"
	"storeops/internal/shared/errors"
	"storeops/internal/shared/utils"
)

// Access middleware translates the domain permission checks into route
// guards. All of them assume RequireAuth ran earlier in the chain; a
// request without a loaded admin is denied outright.

// RequirePermission denies the request unless the caller's effective
// permission set contains p.
func RequirePermission(p admin.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, _ := CurrentAdmin(c)
		if admin.Cannot(caller, p) {
			utils.ErrorResponseWithError(c, errors.NewForbiddenError("permission denied", string(p)))
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAnyPermission denies the request unless the caller holds at
// least one of the given permissions.
func RequireAnyPermission(perms ...admin.Permission) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, _ := CurrentAdmin(c)
		if !admin.CanAny(caller, perms) {
			utils.ErrorResponseWithError(c, errors.NewForbiddenError("permission denied"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRole denies the request unless the caller's role is one of the
// given roles. Permission overrides never substitute for role membership.
func RequireRole(roles ...admin.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, ok := CurrentAdmin(c)
		if !ok || !caller.IsActive() {
			utils.ErrorResponseWithError(c, errors.NewForbiddenError("access denied"))
			c.Abort()
			return
		}
		for _, r := range roles {
			if caller.Role() == r {
				c.Next()
				return
			}
		}
		utils.ErrorResponseWithError(c, errors.NewForbiddenError("role not permitted for this operation"))
		c.Abort()
	}
}

// RequireTab denies the request unless the caller may open the given
// dashboard tab.
func RequireTab(tab admin.Tab) gin.HandlerFunc {
	return func(c *gin.Context) {
		caller, _ := CurrentAdmin(c)
		if !admin.HasTabAccess(caller, tab) {
			utils.ErrorResponseWithError(c, errors.NewForbiddenError("tab access denied", string(tab)))
			c.Abort()
			return
		}
		c.Next()
	}
}
