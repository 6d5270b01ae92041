package usecases

import (
	"context"
	"fmt"

	"storeops/internal/application/admin/dto"
	"storeops/internal/domain/admin"
	"storeops/internal/shared/errors"
	"storeops/internal/shared/logger"
	"storeops/internal/shared/utils"
)

// ListAdminsUseCase retrieves a filtered, paginated page of admin records.
type ListAdminsUseCase struct {
	adminRepo admin.Repository
	logger    logger.Interface
}

func NewListAdminsUseCase(adminRepo admin.Repository, logger logger.Interface) *ListAdminsUseCase {
	return &ListAdminsUseCase{
		adminRepo: adminRepo,
		logger:    logger,
	}
}

func (uc *ListAdminsUseCase) Execute(ctx context.Context, request dto.ListAdminsRequest) (*dto.AdminListResponse, error) {
	if request.Role != "" {
		if _, ok := admin.ParseRole(request.Role); !ok {
			return nil, errors.NewValidationError("unknown role filter", request.Role)
		}
	}

	pagination := utils.ValidatePagination(request.Page, request.PageSize)

	entities, total, err := uc.adminRepo.List(ctx, admin.ListFilter{
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
		Role:     request.Role,
		IsActive: request.IsActive,
		Search:   request.Search,
	})
	if err != nil {
		uc.logger.Errorw("failed to list admins", "error", err)
		return nil, fmt.Errorf("failed to list admins: %w", err)
	}

	responses := make([]dto.AdminResponse, len(entities))
	for i, entity := range entities {
		responses[i] = dto.NewAdminResponse(entity)
	}

	return &dto.AdminListResponse{
		Admins:   responses,
		Total:    total,
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	}, nil
}
