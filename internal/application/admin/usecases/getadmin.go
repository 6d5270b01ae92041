package usecases

import (
	"context"

	"storeops/internal/application/admin/dto"
	"storeops/internal/domain/admin"
	"storeops/internal/shared/logger"
)

// GetAdminUseCase retrieves a single admin record by external ID.
type GetAdminUseCase struct {
	adminRepo admin.Repository
	logger    logger.Interface
}

func NewGetAdminUseCase(adminRepo admin.Repository, logger logger.Interface) *GetAdminUseCase {
	return &GetAdminUseCase{
		adminRepo: adminRepo,
		logger:    logger,
	}
}

func (uc *GetAdminUseCase) Execute(ctx context.Context, sid string) (*dto.AdminResponse, error) {
	entity, err := uc.adminRepo.GetBySID(ctx, sid)
	if err != nil {
		return nil, err
	}

	response := dto.NewAdminResponse(entity)
	return &response, nil
}
