package usecases

import (
	"context"

	"storeops/internal/application/admin/dto"
	"storeops/internal/domain/admin"
	"storeops/internal/shared/logger"
)

// GetPermissionProfileUseCase resolves what an admin can do right now:
// the effective permission list plus the dashboard tabs it unlocks.
type GetPermissionProfileUseCase struct {
	adminRepo admin.Repository
	logger    logger.Interface
}

func NewGetPermissionProfileUseCase(adminRepo admin.Repository, logger logger.Interface) *GetPermissionProfileUseCase {
	return &GetPermissionProfileUseCase{
		adminRepo: adminRepo,
		logger:    logger,
	}
}

func (uc *GetPermissionProfileUseCase) Execute(ctx context.Context, sid string) (*dto.PermissionProfileResponse, error) {
	entity, err := uc.adminRepo.GetBySID(ctx, sid)
	if err != nil {
		return nil, err
	}

	response := dto.NewPermissionProfileResponse(entity)
	return &response, nil
}
