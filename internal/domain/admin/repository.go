package admin

import "context"

// Repository defines the interface for admin record storage.
type Repository interface {
	// Create persists a new admin record
	Create(ctx context.Context, a *Admin) error

	// GetByID retrieves an admin by internal ID
	GetByID(ctx context.Context, id uint) (*Admin, error)

	// GetBySID retrieves an admin by external short ID
	GetBySID(ctx context.Context, sid string) (*Admin, error)

	// GetByAuthID retrieves an admin by the external identity provider subject
	GetByAuthID(ctx context.Context, authID string) (*Admin, error)

	// GetByEmail retrieves an admin by email
	GetByEmail(ctx context.Context, email string) (*Admin, error)

	// Update updates an existing admin record
	Update(ctx context.Context, a *Admin) error

	// Delete removes the authorization record by external short ID. The
	// underlying external identity is untouched.
	Delete(ctx context.Context, sid string) error

	// List retrieves a paginated list of admin records
	List(ctx context.Context, filter ListFilter) ([]*Admin, int64, error)

	// ExistsByEmail checks if an admin record exists for the email
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

// ListFilter represents filtering and pagination options for admin list
type ListFilter struct {
	Page     int    `json:"page"`
	PageSize int    `json:"page_size"`
	Role     string `json:"role,omitempty"`
	IsActive *bool  `json:"is_active,omitempty"`
	Search   string `json:"search,omitempty"` // matches email or name
}
