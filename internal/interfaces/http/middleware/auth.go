package middleware

import (
	stderrors "errors"
	"strings"

	"github.com/gin-gonic/gin"

	"storeops/internal/domain/admin"
	"storeops/internal/infrastructure/auth"
	"storeops/internal/shared/constants"
	"storeops/internal/shared/errors"
	"storeops/internal/shared/logger"
	"storeops/internal/shared/utils"
)

// AuthMiddleware verifies the session token and loads the admin record it
// names into the request context. Every authorization decision downstream
// works from that record, never from token contents alone.
type AuthMiddleware struct {
	jwtService *auth.JWTService
	adminRepo  admin.Repository
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, adminRepo admin.Repository, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		adminRepo:  adminRepo,
		logger:     logger,
	}
}

// RequireAuth rejects requests without a valid session bound to an
// existing, active admin record.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c)
		if token == "" {
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("missing authorization token"))
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(token)
		if err != nil {
			m.logger.Debugw("token verification failed", "error", err)
			utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("invalid or expired token"))
			c.Abort()
			return
		}

		entity, err := m.adminRepo.GetBySID(c.Request.Context(), claims.AdminSID)
		if err != nil {
			if stderrors.Is(err, admin.ErrAdminNotFound) {
				utils.ErrorResponseWithError(c, errors.NewUnauthorizedError("admin record no longer exists"))
			} else {
				m.logger.Errorw("failed to load admin for session", "admin_sid", claims.AdminSID, "error", err)
				utils.ErrorResponseWithError(c, errors.NewInternalError("failed to load admin record"))
			}
			c.Abort()
			return
		}

		// Deactivated admins keep their session context; every permission
		// and tab guard resolves to a denial for them.
		c.Set(constants.ContextKeyAdmin, entity)
		c.Set(constants.ContextKeyAdminID, entity.SID())
		c.Next()
	}
}

func extractBearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// CurrentAdmin returns the admin record the auth middleware loaded for
// this request.
func CurrentAdmin(c *gin.Context) (*admin.Admin, bool) {
	value, exists := c.Get(constants.ContextKeyAdmin)
	if !exists {
		return nil, false
	}
	entity, ok := value.(*admin.Admin)
	return entity, ok
}
