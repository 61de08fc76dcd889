package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/iliyamo/merchant-offers-dashboard/internal/config"
	"github.com/iliyamo/merchant-offers-dashboard/internal/handler"
	"github.com/iliyamo/merchant-offers-dashboard/internal/middleware"
	"github.com/iliyamo/merchant-offers-dashboard/internal/service"
)

// RegisterRoutes registers routes that do not require authentication:
// the health check and the public storefront. The public offer list is
// served through the Redis response cache when one is available.
func RegisterRoutes(e *echo.Echo, p *handler.PublicOfferHandler, cacheCfg config.CacheConfig, rdb *redis.Client) {
	e.GET("/healthz", handler.Health)
	e.GET("/v1/offers", p.ListApproved, middleware.CacheResponse(cacheCfg, rdb))
}

// RegisterAuth registers the authentication routes. Unauthenticated
// token operations live under /v1/auth; /v1/me requires a valid access
// token and reports the freshly resolved role.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, resolver *service.RoleResolver, jwtSecret string, rlCfg config.RateLimitConfig, rdb *redis.Client) {
	g := e.Group("/v1/auth", middleware.RateLimit(rlCfg, rdb))
	g.POST("/login", a.Login)
	// Rotates the refresh token.
	g.POST("/refresh", a.Refresh)
	// Issues a new access token without rotating the refresh token.
	g.POST("/refresh-access", a.RefreshAccess)
	g.POST("/logout", a.Logout)

	// Alias kept for clients that call logout at the top level.
	e.POST("/v1/logout", a.Logout)

	auth := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.ResolveRole(resolver),
	)
	auth.GET("/me", a.Me)
}
