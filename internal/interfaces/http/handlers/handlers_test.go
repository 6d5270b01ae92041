package handlers

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	adminApp "storeops/internal/application/admin"
	"storeops/internal/domain/admin"
	"storeops/internal/shared/constants"
	"storeops/internal/shared/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

// memoryAdminRepo is an in-memory admin.Repository for handler tests.
type memoryAdminRepo struct {
	mu     sync.Mutex
	nextID uint
	bySID  map[string]*admin.Admin
}

func newMemoryAdminRepo() *memoryAdminRepo {
	return &memoryAdminRepo{nextID: 1, bySID: make(map[string]*admin.Admin)}
}

func (m *memoryAdminRepo) Create(_ context.Context, a *admin.Admin) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a.ID() == 0 {
		if err := a.SetID(m.nextID); err != nil {
			return err
		}
		m.nextID++
	}
	m.bySID[a.SID()] = a
	return nil
}

func (m *memoryAdminRepo) GetByID(_ context.Context, id uint) (*admin.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.bySID {
		if a.ID() == id {
			return a, nil
		}
	}
	return nil, admin.ErrAdminNotFound
}

func (m *memoryAdminRepo) GetBySID(_ context.Context, sid string) (*admin.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if a, ok := m.bySID[sid]; ok {
		return a, nil
	}
	return nil, admin.ErrAdminNotFound
}

func (m *memoryAdminRepo) GetByAuthID(_ context.Context, authID string) (*admin.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.bySID {
		if a.AuthID() == authID {
			return a, nil
		}
	}
	return nil, admin.ErrAdminNotFound
}

func (m *memoryAdminRepo) GetByEmail(_ context.Context, email string) (*admin.Admin, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.bySID {
		if a.Email() == strings.ToLower(email) {
			return a, nil
		}
	}
	return nil, admin.ErrAdminNotFound
}

func (m *memoryAdminRepo) Update(_ context.Context, a *admin.Admin) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.bySID[a.SID()]; !ok {
		return admin.ErrAdminNotFound
	}
	m.bySID[a.SID()] = a
	return nil
}

func (m *memoryAdminRepo) Delete(_ context.Context, sid string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.bySID[sid]; !ok {
		return admin.ErrAdminNotFound
	}
	delete(m.bySID, sid)
	return nil
}

func (m *memoryAdminRepo) List(_ context.Context, filter admin.ListFilter) ([]*admin.Admin, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []*admin.Admin
	for _, a := range m.bySID {
		if filter.Role != "" && string(a.Role()) != filter.Role {
			continue
		}
		out = append(out, a)
	}
	return out, int64(len(out)), nil
}

func (m *memoryAdminRepo) ExistsByEmail(_ context.Context, email string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, a := range m.bySID {
		if a.Email() == strings.ToLower(email) {
			return true, nil
		}
	}
	return false, nil
}

func newTestService(repo admin.Repository) *adminApp.Service {
	return adminApp.NewService(repo, testLogger())
}

func seedEntity(t *testing.T, repo *memoryAdminRepo, sid string, role admin.Role, active bool) *admin.Admin {
	t.Helper()

	now := time.Now()
	entity, err := admin.ReconstructAdmin(
		uint(len(repo.bySID))+1, sid, "auth_"+sid, sid+"@example.com", "Handler Test",
		role, nil, active, "adm_root", nil, now, now,
	)
	require.NoError(t, err)

	repo.mu.Lock()
	repo.bySID[sid] = entity
	repo.mu.Unlock()
	return entity
}

// asAdmin injects the entity the way the auth middleware would.
func asAdmin(entity *admin.Admin) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(constants.ContextKeyAdmin, entity)
		c.Set(constants.ContextKeyAdminID, entity.SID())
		c.Next()
	}
}
