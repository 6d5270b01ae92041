package mappers

import (
	"encoding/json"

	"storeops/internal/domain/admin"
	"storeops/internal/infrastructure/persistence/models"
	"storeops/internal/shared/logger"
)

// AdminMapper provides methods for converting between domain and model
type AdminMapper interface {
	ToDomain(model *models.AdminModel) *admin.Admin
	ToModel(domain *admin.Admin) *models.AdminModel
	ToDomainList(modelList []*models.AdminModel) []*admin.Admin
}

// AdminMapperImpl implements AdminMapper
type AdminMapperImpl struct{}

// NewAdminMapper creates a new AdminMapper
func NewAdminMapper() AdminMapper {
	return &AdminMapperImpl{}
}

// ToDomain converts an AdminModel to an Admin domain entity
func (m *AdminMapperImpl) ToDomain(model *models.AdminModel) *admin.Admin {
	if model == nil {
		return nil
	}

	var overrides []admin.Permission
	if len(model.Permissions) > 0 {
		var raw []string
		if err := json.Unmarshal(model.Permissions, &raw); err != nil {
			// A corrupt override column must not grant anything beyond
			// role defaults; log and treat as unset.
			logger.Warn("failed to decode permission overrides", "admin_sid", model.SID, "error", err)
		} else {
			overrides = admin.PermissionsFromStrings(raw)
		}
	}

	entity, err := admin.ReconstructAdmin(
		model.ID,
		model.SID,
		model.AuthID,
		model.Email,
		model.Name,
		admin.Role(model.Role),
		overrides,
		model.IsActive,
		model.CreatedBy,
		model.LastLoginAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		logger.Warn("failed to reconstruct admin from model", "admin_id", model.ID, "error", err)
		return nil
	}
	return entity
}

// ToModel converts an Admin domain entity to an AdminModel
func (m *AdminMapperImpl) ToModel(domain *admin.Admin) *models.AdminModel {
	if domain == nil {
		return nil
	}

	var permsJSON []byte
	if overrides := domain.PermissionOverrides(); len(overrides) > 0 {
		// Catalog tokens always marshal; ignore the impossible error.
		permsJSON, _ = json.Marshal(admin.PermissionsToStrings(overrides))
	}

	return &models.AdminModel{
		ID:          domain.ID(),
		SID:         domain.SID(),
		AuthID:      domain.AuthID(),
		Email:       domain.Email(),
		Name:        domain.Name(),
		Role:        string(domain.Role()),
		Permissions: permsJSON,
		IsActive:    domain.IsActive(),
		CreatedBy:   domain.CreatedBy(),
		LastLoginAt: domain.LastLoginAt(),
		CreatedAt:   domain.CreatedAt(),
		UpdatedAt:   domain.UpdatedAt(),
	}
}

// ToDomainList converts a list of AdminModel to a list of Admin domain entities
func (m *AdminMapperImpl) ToDomainList(modelList []*models.AdminModel) []*admin.Admin {
	if modelList == nil {
		return nil
	}

	domains := make([]*admin.Admin, 0, len(modelList))
	for _, model := range modelList {
		if domain := m.ToDomain(model); domain != nil {
			domains = append(domains, domain)
		}
	}

	return domains
}
