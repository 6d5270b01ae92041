package usecases

import (
	"context"
	"fmt"
	"time"

	"storeops/internal/domain/admin"
	"storeops/internal/shared/logger"
)

// RecordLoginUseCase stamps the last successful login on an admin record
// after the external identity provider authenticated the session.
type RecordLoginUseCase struct {
	adminRepo admin.Repository
	logger    logger.Interface
}

func NewRecordLoginUseCase(adminRepo admin.Repository, logger logger.Interface) *RecordLoginUseCase {
	return &RecordLoginUseCase{
		adminRepo: adminRepo,
		logger:    logger,
	}
}

func (uc *RecordLoginUseCase) Execute(ctx context.Context, authID string) error {
	entity, err := uc.adminRepo.GetByAuthID(ctx, authID)
	if err != nil {
		return err
	}

	entity.RecordLogin(time.Now())

	if err := uc.adminRepo.Update(ctx, entity); err != nil {
		uc.logger.Errorw("failed to record login", "admin_sid", entity.SID(), "error", err)
		return fmt.Errorf("failed to record login: %w", err)
	}

	uc.logger.Debugw("login recorded", "admin_sid", entity.SID())
	return nil
}
