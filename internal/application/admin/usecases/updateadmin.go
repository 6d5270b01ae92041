package usecases

import (
	"context"
	"fmt"
	"strings"

	"storeops/internal/application/admin/dto"
	"storeops/internal/domain/admin"
	"storeops/internal/shared/errors"
	"storeops/internal/shared/logger"
)

// UpdateAdminUseCase applies a partial update to an admin record: rename,
// role change, override replacement, or activation toggle.
type UpdateAdminUseCase struct {
	adminRepo admin.Repository
	logger    logger.Interface
}

func NewUpdateAdminUseCase(adminRepo admin.Repository, logger logger.Interface) *UpdateAdminUseCase {
	return &UpdateAdminUseCase{
		adminRepo: adminRepo,
		logger:    logger,
	}
}

func (uc *UpdateAdminUseCase) Execute(ctx context.Context, sid string, request dto.UpdateAdminRequest) (*dto.AdminResponse, error) {
	entity, err := uc.adminRepo.GetBySID(ctx, sid)
	if err != nil {
		return nil, err
	}

	if request.Role != nil {
		role, ok := admin.ParseRole(*request.Role)
		if !ok {
			return nil, errors.NewValidationError("unknown role", *request.Role)
		}
		if err := entity.ChangeRole(role); err != nil {
			return nil, err
		}
	}

	if request.Name != nil {
		if err := entity.Rename(*request.Name); err != nil {
			return nil, err
		}
	}

	if request.Permissions != nil {
		var unknown []string
		for _, p := range *request.Permissions {
			if !admin.Permission(p).IsValid() {
				unknown = append(unknown, p)
			}
		}
		if len(unknown) > 0 {
			return nil, errors.NewValidationError("unknown permissions", strings.Join(unknown, ", "))
		}
		// An empty list clears the override so role defaults apply again.
		entity.SetPermissionOverrides(admin.PermissionsFromStrings(*request.Permissions))
	}

	if request.IsActive != nil {
		if *request.IsActive {
			entity.Activate()
		} else {
			entity.Deactivate()
		}
	}

	if err := uc.adminRepo.Update(ctx, entity); err != nil {
		uc.logger.Errorw("failed to update admin", "admin_sid", sid, "error", err)
		return nil, fmt.Errorf("failed to update admin: %w", err)
	}

	uc.logger.Infow("admin record updated", "admin_sid", sid)
	response := dto.NewAdminResponse(entity)
	return &response, nil
}
