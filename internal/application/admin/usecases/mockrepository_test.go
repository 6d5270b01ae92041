package usecases

import (
	"context"
	"strings"
	"sync"

	"storeops/internal/domain/admin"
)

// mockAdminRepository is an in-memory admin.Repository for use case tests.
type mockAdminRepository struct {
	mu     sync.Mutex
	nextID uint
	bySID  map[string]*admin.Admin

	createErr error
	updateErr error
}

func newMockAdminRepository() *mockAdminRepository {
	return &mockAdminRepository{
		nextID: 1,
		bySID:  make(map[string]*admin.Admin),
	}
}

func (m *mockAdminRepository) Create(_ context.Context, a *admin.Admin) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.createErr != nil {
		return m.createErr
	}

	if a.ID() == 0 {
		if err := a.SetID(m.nextID); err != nil {
			return err
		}
		m.nextID++
	}
	m.bySID[a.SID()] = a
	return nil
}

func (m *mockAdminRepository) GetByID(_ context.Context, id uint) (*admin.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, a := range m.bySID {
		if a.ID() == id {
			return a, nil
		}
	}
	return nil, admin.ErrAdminNotFound
}

func (m *mockAdminRepository) GetBySID(_ context.Context, sid string) (*admin.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if a, ok := m.bySID[sid]; ok {
		return a, nil
	}
	return nil, admin.ErrAdminNotFound
}

func (m *mockAdminRepository) GetByAuthID(_ context.Context, authID string) (*admin.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, a := range m.bySID {
		if a.AuthID() == authID {
			return a, nil
		}
	}
	return nil, admin.ErrAdminNotFound
}

func (m *mockAdminRepository) GetByEmail(_ context.Context, email string) (*admin.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, a := range m.bySID {
		if a.Email() == strings.ToLower(email) {
			return a, nil
		}
	}
	return nil, admin.ErrAdminNotFound
}

func (m *mockAdminRepository) Update(_ context.Context, a *admin.Admin) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.updateErr != nil {
		return m.updateErr
	}

	if _, ok := m.bySID[a.SID()]; !ok {
		return admin.ErrAdminNotFound
	}
	m.bySID[a.SID()] = a
	return nil
}

func (m *mockAdminRepository) Delete(_ context.Context, sid string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.bySID[sid]; !ok {
		return admin.ErrAdminNotFound
	}
	delete(m.bySID, sid)
	return nil
}

func (m *mockAdminRepository) List(_ context.Context, filter admin.ListFilter) ([]*admin.Admin, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var out []*admin.Admin
	for _, a := range m.bySID {
		if filter.Role != "" && string(a.Role()) != filter.Role {
			continue
		}
		if filter.IsActive != nil && a.IsActive() != *filter.IsActive {
			continue
		}
		if filter.Search != "" &&
			!strings.Contains(a.Email(), filter.Search) &&
			!strings.Contains(a.Name(), filter.Search) {
			continue
		}
		out = append(out, a)
	}
	return out, int64(len(out)), nil
}

func (m *mockAdminRepository) ExistsByEmail(_ context.Context, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, a := range m.bySID {
		if a.Email() == strings.ToLower(email) {
			return true, nil
		}
	}
	return false, nil
}
