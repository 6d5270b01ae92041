package usecases

import (
	"context"

	"storeops/internal/domain/admin"
	"storeops/internal/shared/errors"
	"storeops/internal/shared/logger"
)

// DeleteAdminUseCase revokes dashboard access by removing the
// authorization record. The external identity itself is untouched.
type DeleteAdminUseCase struct {
	adminRepo admin.Repository
	logger    logger.Interface
}

func NewDeleteAdminUseCase(adminRepo admin.Repository, logger logger.Interface) *DeleteAdminUseCase {
	return &DeleteAdminUseCase{
		adminRepo: adminRepo,
		logger:    logger,
	}
}

func (uc *DeleteAdminUseCase) Execute(ctx context.Context, sid string, callerSID string) error {
	if sid == callerSID {
		return errors.NewForbiddenError("admins cannot delete their own record")
	}

	if err := uc.adminRepo.Delete(ctx, sid); err != nil {
		return err
	}

	uc.logger.Infow("admin record deleted", "admin_sid", sid, "deleted_by", callerSID)
	return nil
}
