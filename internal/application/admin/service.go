package admin

import (
	"context"

	"storeops/internal/application/admin/dto"
	"storeops/internal/application/admin/usecases"
	domainAdmin "storeops/internal/domain/admin"
	"storeops/internal/shared/logger"
)

// Service bundles the admin use cases behind a single facade for the
// HTTP layer.
type Service struct {
	createAdmin          *usecases.CreateAdminUseCase
	getAdmin             *usecases.GetAdminUseCase
	listAdmins           *usecases.ListAdminsUseCase
	updateAdmin          *usecases.UpdateAdminUseCase
	deleteAdmin          *usecases.DeleteAdminUseCase
	recordLogin          *usecases.RecordLoginUseCase
	getPermissionProfile *usecases.GetPermissionProfileUseCase
}

// NewService wires the use cases with a shared repository and logger.
func NewService(adminRepo domainAdmin.Repository, log logger.Interface) *Service {
	ucLogger := log.Named("admin.usecase")

	return &Service{
		createAdmin:          usecases.NewCreateAdminUseCase(adminRepo, ucLogger),
		getAdmin:             usecases.NewGetAdminUseCase(adminRepo, ucLogger),
		listAdmins:           usecases.NewListAdminsUseCase(adminRepo, ucLogger),
		updateAdmin:          usecases.NewUpdateAdminUseCase(adminRepo, ucLogger),
		deleteAdmin:          usecases.NewDeleteAdminUseCase(adminRepo, ucLogger),
		recordLogin:          usecases.NewRecordLoginUseCase(adminRepo, ucLogger),
		getPermissionProfile: usecases.NewGetPermissionProfileUseCase(adminRepo, ucLogger),
	}
}

func (s *Service) CreateAdmin(ctx context.Context, request dto.CreateAdminRequest) (*dto.AdminResponse, error) {
	return s.createAdmin.Execute(ctx, request)
}

func (s *Service) GetAdmin(ctx context.Context, sid string) (*dto.AdminResponse, error) {
	return s.getAdmin.Execute(ctx, sid)
}

func (s *Service) ListAdmins(ctx context.Context, request dto.ListAdminsRequest) (*dto.AdminListResponse, error) {
	return s.listAdmins.Execute(ctx, request)
}

func (s *Service) UpdateAdmin(ctx context.Context, sid string, request dto.UpdateAdminRequest) (*dto.AdminResponse, error) {
	return s.updateAdmin.Execute(ctx, sid, request)
}

func (s *Service) DeleteAdmin(ctx context.Context, sid string, callerSID string) error {
	return s.deleteAdmin.Execute(ctx, sid, callerSID)
}

func (s *Service) RecordLogin(ctx context.Context, authID string) error {
	return s.recordLogin.Execute(ctx, authID)
}

func (s *Service) GetPermissionProfile(ctx context.Context, sid string) (*dto.PermissionProfileResponse, error) {
	return s.getPermissionProfile.Execute(ctx, sid)
}
