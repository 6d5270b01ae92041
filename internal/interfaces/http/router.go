package http

import (
	"github.com/gin-gonic/gin"

	adminApp "storeops/internal/application/admin"
	"storeops/internal/domain/admin"
	"storeops/internal/infrastructure/auth"
	"storeops/internal/infrastructure/ratelimit"
	"storeops/internal/interfaces/http/handlers"
	"storeops/internal/interfaces/http/middleware"
	"storeops/internal/shared/config"
	"storeops/internal/shared/logger"
)

// Dependencies carries everything the router needs wired in.
type Dependencies struct {
	AdminService *adminApp.Service
	AdminRepo    admin.Repository
	JWTService   *auth.JWTService
	RateLimiter  ratelimit.RateLimiter
	Server       *config.ServerConfig
	RateLimit    *config.RateLimitConfig
	Logger       logger.Interface
	Version      string
}

// Router owns the gin engine and its route tree.
type Router struct {
	engine *gin.Engine
	logger logger.Interface
}

// NewRouter builds the engine with the full middleware chain and routes.
func NewRouter(deps Dependencies) *Router {
	gin.SetMode(deps.Server.Mode)

	engine := gin.New()
	engine.Use(middleware.Recovery())
	engine.Use(middleware.Logger(deps.Logger.Named("http")))
	engine.Use(middleware.CORS(deps.Server.AllowedOrigins))

	router := &Router{
		engine: engine,
		logger: deps.Logger,
	}
	router.registerRoutes(deps)
	return router
}

func (r *Router) registerRoutes(deps Dependencies) {
	healthHandler := handlers.NewHealthHandler(deps.Version)
	r.engine.GET("/health", healthHandler.Health)
	r.engine.GET("/version", healthHandler.Version)

	authMW := middleware.NewAuthMiddleware(deps.JWTService, deps.AdminRepo, deps.Logger.Named("auth"))
	rateLimitMW := middleware.RateLimit(deps.RateLimiter, deps.RateLimit, deps.Logger.Named("ratelimit"))

	meHandler := handlers.NewMeHandler(deps.AdminService, deps.Logger.Named("handler.me"))
	adminHandler := handlers.NewAdminHandler(deps.AdminService, deps.Logger.Named("handler.admin"))

	api := r.engine.Group("/api/v1")
	api.Use(authMW.RequireAuth(), rateLimitMW)

	me := api.Group("/me")
	{
		me.GET("", meHandler.Me)
		me.GET("/permissions", meHandler.Profile)
		me.GET("/tabs", meHandler.Tabs)
		me.GET("/tabs/:tab", meHandler.CheckTab)
		me.POST("/login", meHandler.RecordLogin)
	}

	// Reads need the admins.view permission; mutations are role-gated to
	// super admins so an override list alone never unlocks them.
	admins := api.Group("/admins")
	{
		admins.GET("", middleware.RequirePermission(admin.PermAdminsView), adminHandler.List)
		admins.GET("/:id", middleware.RequirePermission(admin.PermAdminsView), adminHandler.Get)
		admins.POST("", middleware.RequireRole(admin.RoleSuperAdmin), adminHandler.Create)
		admins.PATCH("/:id", middleware.RequireRole(admin.RoleSuperAdmin), adminHandler.Update)
		admins.DELETE("/:id", middleware.RequireRole(admin.RoleSuperAdmin), adminHandler.Delete)
	}
}

// Engine exposes the underlying gin engine for the HTTP server.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}
