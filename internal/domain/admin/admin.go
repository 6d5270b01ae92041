package admin

import (
	"fmt"
	"strings"
	"time"
)

// Admin is the persisted authorization record for a staff identity. The
// underlying identity (login, sessions) lives with the external identity
// provider; this aggregate only carries what authorization decisions need.
type Admin struct {
	id          uint
	sid         string
	authID      string
	email       string
	name        string
	role        Role
	overrides   []Permission
	isActive    bool
	createdBy   string
	lastLoginAt *time.Time
	createdAt   time.Time
	updatedAt   time.Time
}

// NewAdmin creates an admin record linking an existing external identity
// to a role. The record starts active with no permission overrides.
func NewAdmin(authID, email, name string, role Role, createdBy string, sidGen func() (string, error)) (*Admin, error) {
	if strings.TrimSpace(authID) == "" {
		return nil, NewDomainError("auth ID is required")
	}
	if strings.TrimSpace(email) == "" {
		return nil, NewDomainError("email is required")
	}
	if len(strings.TrimSpace(name)) < MinNameLength {
		return nil, NewDomainError(fmt.Sprintf("name must be at least %d characters", MinNameLength))
	}
	if !role.IsValid() {
		return nil, NewDomainError("invalid role", string(role))
	}

	sid, err := sidGen()
	if err != nil {
		return nil, fmt.Errorf("failed to generate admin ID: %w", err)
	}

	now := time.Now()
	return &Admin{
		sid:       sid,
		authID:    authID,
		email:     strings.ToLower(strings.TrimSpace(email)),
		name:      strings.TrimSpace(name),
		role:      role,
		isActive:  true,
		createdBy: createdBy,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructAdmin rebuilds an admin from persistence. It does not
// re-validate role or override tokens; the boundary validator is
// responsible for rejecting malformed records before they are stored.
func ReconstructAdmin(
	id uint,
	sid string,
	authID string,
	email string,
	name string,
	role Role,
	overrides []Permission,
	isActive bool,
	createdBy string,
	lastLoginAt *time.Time,
	createdAt time.Time,
	updatedAt time.Time,
) (*Admin, error) {
	if id == 0 {
		return nil, fmt.Errorf("admin ID cannot be zero")
	}

	return &Admin{
		id:          id,
		sid:         sid,
		authID:      authID,
		email:       email,
		name:        name,
		role:        role,
		overrides:   overrides,
		isActive:    isActive,
		createdBy:   createdBy,
		lastLoginAt: lastLoginAt,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (a *Admin) ID() uint {
	return a.id
}

func (a *Admin) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("admin ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("admin ID cannot be zero")
	}
	a.id = id
	return nil
}

func (a *Admin) SID() string {
	return a.sid
}

func (a *Admin) AuthID() string {
	return a.authID
}

func (a *Admin) Email() string {
	return a.email
}

func (a *Admin) Name() string {
	return a.name
}

func (a *Admin) Role() Role {
	return a.role
}

// PermissionOverrides returns a copy of the custom grant list, or nil when
// no override is configured.
func (a *Admin) PermissionOverrides() []Permission {
	if len(a.overrides) == 0 {
		return nil
	}
	out := make([]Permission, len(a.overrides))
	copy(out, a.overrides)
	return out
}

// HasOverrides reports whether a non-empty custom grant list is set. An
// empty list counts as unset and falls back to role defaults.
func (a *Admin) HasOverrides() bool {
	return len(a.overrides) > 0
}

func (a *Admin) IsActive() bool {
	return a.isActive
}

func (a *Admin) CreatedBy() string {
	return a.createdBy
}

func (a *Admin) LastLoginAt() *time.Time {
	return a.lastLoginAt
}

func (a *Admin) CreatedAt() time.Time {
	return a.createdAt
}

func (a *Admin) UpdatedAt() time.Time {
	return a.updatedAt
}

// ChangeRole assigns a new role. Existing overrides stay in place; they
// keep taking precedence over the new role's defaults.
func (a *Admin) ChangeRole(role Role) error {
	if !role.IsValid() {
		return NewDomainError("invalid role", string(role))
	}
	a.role = role
	a.updatedAt = time.Now()
	return nil
}

// SetPermissionOverrides replaces the custom grant list. Setting an empty
// list is equivalent to clearing the override.
func (a *Admin) SetPermissionOverrides(perms []Permission) {
	if len(perms) == 0 {
		a.overrides = nil
	} else {
		a.overrides = make([]Permission, len(perms))
		copy(a.overrides, perms)
	}
	a.updatedAt = time.Now()
}

// ClearPermissionOverrides removes the custom grant list so role defaults
// apply again.
func (a *Admin) ClearPermissionOverrides() {
	a.overrides = nil
	a.updatedAt = time.Now()
}

func (a *Admin) Activate() {
	if a.isActive {
		return
	}
	a.isActive = true
	a.updatedAt = time.Now()
}

func (a *Admin) Deactivate() {
	if !a.isActive {
		return
	}
	a.isActive = false
	a.updatedAt = time.Now()
}

// Rename updates the display name.
func (a *Admin) Rename(name string) error {
	if len(strings.TrimSpace(name)) < MinNameLength {
		return NewDomainError(fmt.Sprintf("name must be at least %d characters", MinNameLength))
	}
	a.name = strings.TrimSpace(name)
	a.updatedAt = time.Now()
	return nil
}

// RecordLogin stamps the last successful login.
func (a *Admin) RecordLogin(at time.Time) {
	t := at
	a.lastLoginAt = &t
	a.updatedAt = time.Now()
}
