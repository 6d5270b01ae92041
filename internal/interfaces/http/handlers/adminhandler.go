package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	adminApp "storeops/internal/application/admin"
	"storeops/internal/application/admin/dto"
	"storeops/internal/interfaces/http/middleware"
	"storeops/internal/shared/errors"
	"storeops/internal/shared/logger"
	"storeops/internal/shared/utils"
)

// AdminHandler exposes the admin record CRUD operations. The router gates
// every route here behind the super admin role or the admins.* reads.
type AdminHandler struct {
	adminService *adminApp.Service
	logger       logger.Interface
}

func NewAdminHandler(adminService *adminApp.Service, logger logger.Interface) *AdminHandler {
	return &AdminHandler{
		adminService: adminService,
		logger:       logger,
	}
}

// Create grants dashboard access to an existing external identity.
// POST /api/v1/admins
func (h *AdminHandler) Create(c *gin.Context) {
	var request dto.CreateAdminRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if caller, ok := middleware.CurrentAdmin(c); ok {
		request.CreatedBy = caller.SID()
	}

	response, err := h.adminService.CreateAdmin(c.Request.Context(), request)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, response, "Admin created successfully")
}

// Get returns a single admin record.
// GET /api/v1/admins/:id
func (h *AdminHandler) Get(c *gin.Context) {
	sid := c.Param("id")
	if err := utils.ValidateID(sid); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	response, err := h.adminService.GetAdmin(c.Request.Context(), sid)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", response)
}

// List returns a filtered, paginated page of admin records.
// GET /api/v1/admins
func (h *AdminHandler) List(c *gin.Context) {
	pagination := utils.ParsePagination(c)

	request := dto.ListAdminsRequest{
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
		Role:     c.Query("role"),
		Search:   c.Query("search"),
	}

	if raw := c.Query("is_active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewBadRequestError("is_active must be a boolean", raw))
			return
		}
		request.IsActive = &active
	}

	response, err := h.adminService.ListAdmins(c.Request.Context(), request)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, response.Admins, response.Total, response.Page, response.PageSize)
}

// Update applies a partial update to an admin record.
// PATCH /api/v1/admins/:id
func (h *AdminHandler) Update(c *gin.Context) {
	sid := c.Param("id")
	if err := utils.ValidateID(sid); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var request dto.UpdateAdminRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	response, err := h.adminService.UpdateAdmin(c.Request.Context(), sid, request)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Admin updated successfully", response)
}

// Delete revokes dashboard access for an admin record.
// DELETE /api/v1/admins/:id
func (h *AdminHandler) Delete(c *gin.Context) {
	sid := c.Param("id")
	if err := utils.ValidateID(sid); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	callerSID := ""
	if caller, ok := middleware.CurrentAdmin(c); ok {
		callerSID = caller.SID()
	}

	if err := h.adminService.DeleteAdmin(c.Request.Context(), sid, callerSID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
