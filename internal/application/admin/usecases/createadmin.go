package usecases

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"

	"storeops/internal/application/admin/dto"
	"storeops/internal/domain/admin"
	"storeops/internal/shared/errors"
	"storeops/internal/shared/id"
	"storeops/internal/shared/logger"
)

// CreateAdminUseCase grants dashboard access to an existing external
// identity by creating an authorization record for it.
type CreateAdminUseCase struct {
	adminRepo admin.Repository
	logger    logger.Interface
}

func NewCreateAdminUseCase(adminRepo admin.Repository, logger logger.Interface) *CreateAdminUseCase {
	return &CreateAdminUseCase{
		adminRepo: adminRepo,
		logger:    logger,
	}
}

func (uc *CreateAdminUseCase) Execute(ctx context.Context, request dto.CreateAdminRequest) (*dto.AdminResponse, error) {
	uc.logger.Infow("creating admin record", "email", request.Email, "role", request.Role)

	problems := admin.ValidateRecord(admin.Record{
		AuthID:      request.AuthID,
		Email:       request.Email,
		Name:        request.Name,
		Role:        request.Role,
		Permissions: request.Permissions,
		IsActive:    true,
	})
	if len(problems) > 0 {
		uc.logger.Warnw("admin record rejected", "email", request.Email, "problems", problems)
		return nil, errors.NewValidationError("invalid admin record", strings.Join(problems, "; "))
	}

	exists, err := uc.adminRepo.ExistsByEmail(ctx, strings.ToLower(strings.TrimSpace(request.Email)))
	if err != nil {
		uc.logger.Errorw("failed to check existing admin", "email", request.Email, "error", err)
		return nil, fmt.Errorf("failed to check existing admin: %w", err)
	}
	if exists {
		return nil, errors.NewConflictError("admin with this email already exists", request.Email)
	}

	if _, err := uc.adminRepo.GetByAuthID(ctx, request.AuthID); err == nil {
		return nil, errors.NewConflictError("identity is already linked to an admin record", request.AuthID)
	} else if !stderrors.Is(err, admin.ErrAdminNotFound) {
		uc.logger.Errorw("failed to check identity link", "auth_id", request.AuthID, "error", err)
		return nil, fmt.Errorf("failed to check identity link: %w", err)
	}

	role, _ := admin.ParseRole(request.Role)
	entity, err := admin.NewAdmin(request.AuthID, request.Email, request.Name, role, request.CreatedBy, id.NewAdminID)
	if err != nil {
		uc.logger.Errorw("failed to create admin entity", "error", err)
		return nil, err
	}

	if len(request.Permissions) > 0 {
		entity.SetPermissionOverrides(admin.PermissionsFromStrings(request.Permissions))
	}

	if err := uc.adminRepo.Create(ctx, entity); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("admin with this email already exists", request.Email)
		}
		uc.logger.Errorw("failed to persist admin", "email", request.Email, "error", err)
		return nil, fmt.Errorf("failed to save admin: %w", err)
	}

	response := dto.NewAdminResponse(entity)
	uc.logger.Infow("admin record created", "admin_id", response.ID, "role", response.Role)
	return &response, nil
}
