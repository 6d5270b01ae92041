package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

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

// stubAdminRepo serves a single admin record by SID.
type stubAdminRepo struct {
	entity *admin.Admin
	err    error
}

func (s *stubAdminRepo) Create(context.Context, *admin.Admin) error { return nil }
func (s *stubAdminRepo) GetByID(context.Context, uint) (*admin.Admin, error) {
	return nil, admin.ErrAdminNotFound
}
func (s *stubAdminRepo) GetBySID(_ context.Context, sid string) (*admin.Admin, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.entity != nil && s.entity.SID() == sid {
		return s.entity, nil
	}
	return nil, admin.ErrAdminNotFound
}
func (s *stubAdminRepo) GetByAuthID(context.Context, string) (*admin.Admin, error) {
	return nil, admin.ErrAdminNotFound
}
func (s *stubAdminRepo) GetByEmail(context.Context, string) (*admin.Admin, error) {
	return nil, admin.ErrAdminNotFound
}
func (s *stubAdminRepo) Update(context.Context, *admin.Admin) error { return nil }
func (s *stubAdminRepo) Delete(context.Context, string) error       { return nil }
func (s *stubAdminRepo) List(context.Context, admin.ListFilter) ([]*admin.Admin, int64, error) {
	return nil, 0, nil
}
func (s *stubAdminRepo) ExistsByEmail(context.Context, string) (bool, error) {
	return false, nil
}

// reconstruct builds an admin entity for guard tests.
func reconstruct(t *testing.T, sid string, role admin.Role, overrides []admin.Permission, active bool) *admin.Admin {
	t.Helper()

	now := time.Now()
	entity, err := admin.ReconstructAdmin(
		1, sid, "auth_"+sid, sid+"@example.com", "Guard Test", role,
		overrides, active, "adm_root", nil, now, now,
	)
	require.NoError(t, err)
	return entity
}

// injectAdmin pretends RequireAuth already ran for the given admin.
func injectAdmin(entity *admin.Admin) gin.HandlerFunc {
	return func(c *gin.Context) {
		if entity != nil {
			c.Set(constants.ContextKeyAdmin, entity)
			c.Set(constants.ContextKeyAdminID, entity.SID())
		}
		c.Next()
	}
}

// serve runs a GET / request through the given chain and returns the code.
func serve(t *testing.T, handlers ...gin.HandlerFunc) int {
	t.Helper()

	engine := gin.New()
	chain := append(handlers, func(c *gin.Context) { c.Status(http.StatusOK) })
	engine.GET("/", chain...)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	engine.ServeHTTP(w, req)
	return w.Code
}
