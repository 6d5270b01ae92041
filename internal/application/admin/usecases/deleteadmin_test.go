package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storeops/internal/domain/admin"
	"storeops/internal/shared/errors"
)

func TestDeleteAdmin_Success(t *testing.T) {
	repo := newMockAdminRepository()
	uc := NewDeleteAdminUseCase(repo, testLogger())
	seedAdmin(t, repo, admin.RoleSalesAdmin)

	require.NoError(t, uc.Execute(context.Background(), "adm_seed", "adm_caller"))

	_, err := repo.GetBySID(context.Background(), "adm_seed")
	assert.ErrorIs(t, err, admin.ErrAdminNotFound)
}

func TestDeleteAdmin_SelfDeletionForbidden(t *testing.T) {
	repo := newMockAdminRepository()
	uc := NewDeleteAdminUseCase(repo, testLogger())
	seedAdmin(t, repo, admin.RoleSuperAdmin)

	err := uc.Execute(context.Background(), "adm_seed", "adm_seed")
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))

	_, err = repo.GetBySID(context.Background(), "adm_seed")
	assert.NoError(t, err, "record must survive a rejected self-deletion")
}

func TestDeleteAdmin_NotFound(t *testing.T) {
	repo := newMockAdminRepository()
	uc := NewDeleteAdminUseCase(repo, testLogger())

	err := uc.Execute(context.Background(), "adm_missing", "adm_caller")
	assert.ErrorIs(t, err, admin.ErrAdminNotFound)
}
