package app

import (
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"tenantforge.io/tenantforge/internal/api/handlers"
	"tenantforge.io/tenantforge/internal/api/middleware"
	"tenantforge.io/tenantforge/internal/config"
	"tenantforge.io/tenantforge/internal/domain"
)

// Public routes that do NOT require JWT authentication. The onboarding
// endpoint is public: the applicant has no token until provisioning finishes.
var publicPrefixes = []string{
	"/api/v1/health/",
	"/api/v1/onboarding/complete",
}

// adminPrefixes are routes restricted to platform operators.
var adminPrefixes = []string{
	"/api/v1/admin/",
	"/api/v1/audit-logs",
}

// defaultAllowedOrigins is the CORS allowlist used when no origins are
// configured. Local frontend dev servers only.
var defaultAllowedOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}

func newRouter(cfg *config.Config, server *handlers.Server, jwtCfg middleware.JWTConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestID(), middleware.ErrorHandler())
	router.Use(cors.New(buildCORSConfig(cfg)))
	router.Use(jwtSkipPublic(jwtCfg))
	router.Use(rbacAdminRoutes())
	router.Use(middleware.MustOpenAPIValidator("/api/v1"))

	registerRoutes(router, server)
	return router
}

// registerRoutes binds all handlers. Registration is centralized here;
// handlers never register their own routes.
func registerRoutes(router *gin.Engine, server *handlers.Server) {
	v1 := router.Group("/api/v1")

	v1.GET("/health/live", server.GetLiveness)
	v1.GET("/health/ready", server.GetReadiness)

	v1.POST("/onboarding/complete", server.CompleteOnboarding)
	v1.GET("/onboarding/requests/:saga_id", server.GetOnboardingStatus)

	v1.GET("/audit-logs", server.ListAuditLogs)

	v1.GET("/notifications", server.ListNotifications)
	v1.GET("/notifications/unread-count", server.GetUnreadCount)
	v1.POST("/notifications/:notification_id/read", server.MarkNotificationRead)
	v1.POST("/notifications/read-all", server.MarkAllNotificationsRead)

	v1.GET("/organizations/:org_id/members", server.ListOrgMembers)
	v1.POST("/organizations/:org_id/members", server.AddOrgMember)
	v1.PATCH("/organizations/:org_id/members/:user_id", server.UpdateOrgMemberRole)
	v1.DELETE("/organizations/:org_id/members/:user_id", server.DeleteOrgMember)
}

// buildCORSConfig derives the CORS policy from server configuration.
// Wildcard origins are stripped unless UnsafeAllowAllOrigins is set, and
// allow-all never combines with credentials.
func buildCORSConfig(cfg *config.Config) cors.Config {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = append(corsCfg.AllowHeaders, "Authorization", "X-Request-ID")

	allowAll := false
	origins := make([]string, 0, len(cfg.Server.AllowedOrigins))
	for _, origin := range cfg.Server.AllowedOrigins {
		origin = strings.TrimSpace(origin)
		if origin == "" {
			continue
		}
		if origin == "*" {
			if cfg.Server.UnsafeAllowAllOrigins {
				allowAll = true
			}
			continue
		}
		origins = append(origins, origin)
	}

	if allowAll {
		corsCfg.AllowAllOrigins = true
		corsCfg.AllowOrigins = nil
		corsCfg.AllowCredentials = false
		return corsCfg
	}

	if len(origins) == 0 {
		origins = append(origins, defaultAllowedOrigins...)
	}
	corsCfg.AllowOrigins = origins
	corsCfg.AllowCredentials = cfg.Server.AllowCredentials
	return corsCfg
}

// jwtSkipPublic returns middleware that applies JWT auth only on non-public routes.
func jwtSkipPublic(jwtCfg middleware.JWTConfig) gin.HandlerFunc {
	jwtMw := middleware.JWTAuth(jwtCfg)
	return func(c *gin.Context) {
		for _, prefix := range publicPrefixes {
			if strings.HasPrefix(c.Request.URL.Path, prefix) {
				c.Next()
				return
			}
		}
		jwtMw(c)
	}
}

// rbacAdminRoutes returns middleware restricting admin endpoints to holders
// of the platform wildcard permission.
func rbacAdminRoutes() gin.HandlerFunc {
	adminMw := middleware.RequirePermission(domain.WildcardPermission)
	return func(c *gin.Context) {
		for _, prefix := range adminPrefixes {
			if strings.HasPrefix(c.Request.URL.Path, prefix) {
				adminMw(c)
				return
			}
		}
		c.Next()
	}
}
