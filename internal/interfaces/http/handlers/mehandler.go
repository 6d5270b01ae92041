package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	adminApp "storeops/internal/application/admin"
	"storeops/internal/application/admin/dto"
	"storeops/internal/domain/admin"
	"storeops/internal/interfaces/http/middleware"
	"storeops/internal/shared/errors"
	"storeops/internal/shared/logger"
	"storeops/internal/shared/utils"
)

// MeHandler answers questions about the calling admin: who they are,
// what they may do, and which dashboard tabs they may open. The frontend
// drives its navigation and button states from these endpoints.
type MeHandler struct {
	adminService *adminApp.Service
	logger       logger.Interface
}

func NewMeHandler(adminService *adminApp.Service, logger logger.Interface) *MeHandler {
	return &MeHandler{
		adminService: adminService,
		logger:       logger,
	}
}

// Me returns the caller's own admin record.
// GET /api/v1/me
func (h *MeHandler) Me(c *gin.Context) {
	caller, ok := middleware.CurrentAdmin(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("no admin in request context"))
		return
	}

	response := dto.NewAdminResponse(caller)
	utils.SuccessResponse(c, http.StatusOK, "", response)
}

// Profile returns the caller's effective permissions and accessible tabs.
// GET /api/v1/me/permissions
func (h *MeHandler) Profile(c *gin.Context) {
	caller, ok := middleware.CurrentAdmin(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("no admin in request context"))
		return
	}

	response, err := h.adminService.GetPermissionProfile(c.Request.Context(), caller.SID())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", response)
}

// Tabs returns only the accessible tab list, for the navigation shell.
// GET /api/v1/me/tabs
func (h *MeHandler) Tabs(c *gin.Context) {
	caller, ok := middleware.CurrentAdmin(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("no admin in request context"))
		return
	}

	tabs := admin.AccessibleTabs(caller)
	tabStrings := make([]string, len(tabs))
	for i, tab := range tabs {
		tabStrings[i] = string(tab)
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"tabs": tabStrings})
}

// RecordLogin stamps the caller's last successful login. The frontend
// calls this once after the identity provider hands back a session.
// POST /api/v1/me/login
func (h *MeHandler) RecordLogin(c *gin.Context) {
	caller, ok := middleware.CurrentAdmin(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("no admin in request context"))
		return
	}

	if err := h.adminService.RecordLogin(c.Request.Context(), caller.AuthID()); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Login recorded", nil)
}

// CheckTab reports whether the caller may open one named tab.
// GET /api/v1/me/tabs/:tab
func (h *MeHandler) CheckTab(c *gin.Context) {
	caller, ok := middleware.CurrentAdmin(c)
	if !ok {
		utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("no admin in request context"))
		return
	}

	tab := admin.Tab(c.Param("tab"))
	if !tab.IsValid() {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("unknown tab", c.Param("tab")))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"tab":        string(tab),
		"accessible": admin.HasTabAccess(caller, tab),
	})
}
