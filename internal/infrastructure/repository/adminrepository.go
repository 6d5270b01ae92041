package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"storeops/internal/domain/admin"
	"storeops/internal/infrastructure/persistence/mappers"
	"storeops/internal/infrastructure/persistence/models"
	"storeops/internal/shared/logger"
)

// AdminRepository implements admin.Repository
type AdminRepository struct {
	db     *gorm.DB
	logger logger.Interface
	mapper mappers.AdminMapper
}

// NewAdminRepository creates a new AdminRepository
func NewAdminRepository(db *gorm.DB, logger logger.Interface) admin.Repository {
	return &AdminRepository{
		db:     db,
		logger: logger,
		mapper: mappers.NewAdminMapper(),
	}
}

// Create persists a new admin record
func (r *AdminRepository) Create(ctx context.Context, a *admin.Admin) error {
	model := r.mapper.ToModel(a)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create admin", "email", a.Email(), "error", err)
		return fmt.Errorf("failed to create admin: %w", err)
	}

	if a.ID() == 0 {
		if err := a.SetID(model.ID); err != nil {
			return fmt.Errorf("failed to assign generated ID: %w", err)
		}
	}

	return nil
}

// GetByID retrieves an admin by internal ID
func (r *AdminRepository) GetByID(ctx context.Context, id uint) (*admin.Admin, error) {
	return r.getOne(ctx, "id = ?", id)
}

// GetBySID retrieves an admin by external short ID
func (r *AdminRepository) GetBySID(ctx context.Context, sid string) (*admin.Admin, error) {
	return r.getOne(ctx, "sid = ?", sid)
}

// GetByAuthID retrieves an admin by the external identity provider subject
func (r *AdminRepository) GetByAuthID(ctx context.Context, authID string) (*admin.Admin, error) {
	return r.getOne(ctx, "auth_id = ?", authID)
}

// GetByEmail retrieves an admin by email
func (r *AdminRepository) GetByEmail(ctx context.Context, email string) (*admin.Admin, error) {
	return r.getOne(ctx, "email = ?", email)
}

func (r *AdminRepository) getOne(ctx context.Context, query string, arg interface{}) (*admin.Admin, error) {
	var model models.AdminModel

	err := r.db.WithContext(ctx).Where(query, arg).First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, admin.ErrAdminNotFound
		}
		r.logger.Errorw("failed to get admin", "query", query, "error", err)
		return nil, fmt.Errorf("failed to get admin: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

// Update updates an existing admin record
func (r *AdminRepository) Update(ctx context.Context, a *admin.Admin) error {
	model := r.mapper.ToModel(a)

	result := r.db.WithContext(ctx).
		Model(&models.AdminModel{}).
		Where("id = ?", a.ID()).
		Select("email", "name", "role", "permissions", "is_active", "last_login_at", "updated_at").
		Updates(model)
	if result.Error != nil {
		r.logger.Errorw("failed to update admin", "admin_id", a.ID(), "error", result.Error)
		return fmt.Errorf("failed to update admin: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return admin.ErrAdminNotFound
	}

	return nil
}

// Delete removes the authorization record by external short ID
func (r *AdminRepository) Delete(ctx context.Context, sid string) error {
	result := r.db.WithContext(ctx).
		Where("sid = ?", sid).
		Delete(&models.AdminModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete admin", "admin_sid", sid, "error", result.Error)
		return fmt.Errorf("failed to delete admin: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return admin.ErrAdminNotFound
	}

	return nil
}

// List retrieves a paginated list of admin records
func (r *AdminRepository) List(ctx context.Context, filter admin.ListFilter) ([]*admin.Admin, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.AdminModel{})

	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("email LIKE ? OR name LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count admins", "error", err)
		return nil, 0, fmt.Errorf("failed to count admins: %w", err)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	pageSize := filter.PageSize
	if pageSize < 1 {
		pageSize = 20
	}

	var modelList []*models.AdminModel
	err := query.
		Order("created_at DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&modelList).Error
	if err != nil {
		r.logger.Errorw("failed to list admins", "error", err)
		return nil, 0, fmt.Errorf("failed to list admins: %w", err)
	}

	return r.mapper.ToDomainList(modelList), total, nil
}

// ExistsByEmail checks if an admin record exists for the email
func (r *AdminRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.AdminModel{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		r.logger.Errorw("failed to check admin existence", "email", email, "error", err)
		return false, fmt.Errorf("failed to check admin existence: %w", err)
	}
	return count > 0, nil
}
