package usecases

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storeops/internal/application/admin/dto"
	"storeops/internal/domain/admin"
	"storeops/internal/shared/errors"
	"storeops/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func validCreateRequest() dto.CreateAdminRequest {
	return dto.CreateAdminRequest{
		AuthID:    "auth_123",
		Email:     "New.Admin@Example.com",
		Name:      "New Admin",
		Role:      string(admin.RoleSalesAdmin),
		CreatedBy: "adm_root",
	}
}

func TestCreateAdmin_Success(t *testing.T) {
	repo := newMockAdminRepository()
	uc := NewCreateAdminUseCase(repo, testLogger())

	resp, err := uc.Execute(context.Background(), validCreateRequest())
	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.NotEmpty(t, resp.ID)
	assert.Equal(t, "new.admin@example.com", resp.Email, "email must be normalized to lowercase")
	assert.Equal(t, string(admin.RoleSalesAdmin), resp.Role)
	assert.True(t, resp.IsActive)
	assert.Empty(t, resp.Permissions, "no override configured on create")
	assert.ElementsMatch(t,
		[]string{
			"users.view", "products.view", "orders.view", "orders.update_status",
			"orders.edit_items", "orders.delete_items", "system.view_analytics",
		},
		resp.EffectivePermissions)
}

func TestCreateAdmin_WithOverrides(t *testing.T) {
	repo := newMockAdminRepository()
	uc := NewCreateAdminUseCase(repo, testLogger())

	req := validCreateRequest()
	req.Permissions = []string{"orders.view", "finance.view_reports"}

	resp, err := uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, req.Permissions, resp.Permissions)
	assert.Equal(t, req.Permissions, resp.EffectivePermissions,
		"a configured override replaces role defaults outright")
}

func TestCreateAdmin_ValidationProblems(t *testing.T) {
	repo := newMockAdminRepository()
	uc := NewCreateAdminUseCase(repo, testLogger())

	req := validCreateRequest()
	req.AuthID = ""
	req.Role = "warehouse_wizard"
	req.Permissions = []string{"orders.view", "not.a_permission"}

	_, err := uc.Execute(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Contains(t, appErr.Details, "auth_id is required")
	assert.Contains(t, appErr.Details, `unknown role "warehouse_wizard"`)
	assert.Contains(t, appErr.Details, `unknown permission "not.a_permission"`)
}

func TestCreateAdmin_DuplicateEmail(t *testing.T) {
	repo := newMockAdminRepository()
	uc := NewCreateAdminUseCase(repo, testLogger())

	_, err := uc.Execute(context.Background(), validCreateRequest())
	require.NoError(t, err)

	dup := validCreateRequest()
	dup.AuthID = "auth_other"
	_, err = uc.Execute(context.Background(), dup)
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestCreateAdmin_DuplicateAuthID(t *testing.T) {
	repo := newMockAdminRepository()
	uc := NewCreateAdminUseCase(repo, testLogger())

	_, err := uc.Execute(context.Background(), validCreateRequest())
	require.NoError(t, err)

	dup := validCreateRequest()
	dup.Email = "other@example.com"
	_, err = uc.Execute(context.Background(), dup)
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}
