package dto

import (
	"time"

	"storeops/internal/domain/admin"
)

// CreateAdminRequest carries the data for granting dashboard access to an
// existing external identity.
type CreateAdminRequest struct {
	AuthID      string   `json:"auth_id" validate:"required"`
	Email       string   `json:"email" validate:"required,email"`
	Name        string   `json:"name" validate:"required,min=2,max=100"`
	Role        string   `json:"role" validate:"required"`
	Permissions []string `json:"permissions,omitempty"`
	CreatedBy   string   `json:"-"`
}

// UpdateAdminRequest carries a partial update. Nil fields are left
// untouched; a non-nil empty Permissions slice clears the override.
type UpdateAdminRequest struct {
	Name        *string   `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Role        *string   `json:"role,omitempty"`
	Permissions *[]string `json:"permissions,omitempty"`
	IsActive    *bool     `json:"is_active,omitempty"`
}

// ListAdminsRequest carries filtering and pagination options.
type ListAdminsRequest struct {
	Page     int    `form:"page"`
	PageSize int    `form:"page_size"`
	Role     string `form:"role"`
	IsActive *bool  `form:"is_active"`
	Search   string `form:"search"`
}

// AdminResponse is the outward shape of an admin record. Permissions is
// the configured override list (empty when the role defaults apply);
// EffectivePermissions is what the record actually grants right now.
type AdminResponse struct {
	ID                   string     `json:"id"`
	AuthID               string     `json:"auth_id"`
	Email                string     `json:"email"`
	Name                 string     `json:"name"`
	Role                 string     `json:"role"`
	Permissions          []string   `json:"permissions,omitempty"`
	EffectivePermissions []string   `json:"effective_permissions"`
	IsActive             bool       `json:"is_active"`
	CreatedBy            string     `json:"created_by,omitempty"`
	LastLoginAt          *time.Time `json:"last_login_at,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// AdminListResponse is a paginated page of admin records.
type AdminListResponse struct {
	Admins   []AdminResponse `json:"admins"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// PermissionProfileResponse describes what the calling admin can do and
// which dashboard tabs they may open.
type PermissionProfileResponse struct {
	ID                   string   `json:"id"`
	Role                 string   `json:"role"`
	IsActive             bool     `json:"is_active"`
	EffectivePermissions []string `json:"effective_permissions"`
	AccessibleTabs       []string `json:"accessible_tabs"`
}

// NewAdminResponse maps a domain entity to its outward shape.
func NewAdminResponse(a *admin.Admin) AdminResponse {
	return AdminResponse{
		ID:                   a.SID(),
		AuthID:               a.AuthID(),
		Email:                a.Email(),
		Name:                 a.Name(),
		Role:                 string(a.Role()),
		Permissions:          admin.PermissionsToStrings(a.PermissionOverrides()),
		EffectivePermissions: permissionStrings(admin.EffectivePermissions(a)),
		IsActive:             a.IsActive(),
		CreatedBy:            a.CreatedBy(),
		LastLoginAt:          a.LastLoginAt(),
		CreatedAt:            a.CreatedAt(),
		UpdatedAt:            a.UpdatedAt(),
	}
}

// NewPermissionProfileResponse maps a domain entity to the caller-facing
// permission profile.
func NewPermissionProfileResponse(a *admin.Admin) PermissionProfileResponse {
	tabs := admin.AccessibleTabs(a)
	tabStrings := make([]string, len(tabs))
	for i, tab := range tabs {
		tabStrings[i] = string(tab)
	}

	return PermissionProfileResponse{
		ID:                   a.SID(),
		Role:                 string(a.Role()),
		IsActive:             a.IsActive(),
		EffectivePermissions: permissionStrings(admin.EffectivePermissions(a)),
		AccessibleTabs:       tabStrings,
	}
}

func permissionStrings(perms []admin.Permission) []string {
	out := make([]string, len(perms))
	for i, p := range perms {
		out[i] = string(p)
	}
	return out
}
