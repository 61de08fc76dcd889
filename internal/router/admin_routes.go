package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/merchant-offers-dashboard/internal/handler"
	"github.com/iliyamo/merchant-offers-dashboard/internal/middleware"
	"github.com/iliyamo/merchant-offers-dashboard/internal/model"
	"github.com/iliyamo/merchant-offers-dashboard/internal/service"
)

// RegisterAdmin registers ADMIN-scoped endpoints under /v1/admin.
// All routes require a valid JWT and a role that resolves to ADMIN at
// request time.
func RegisterAdmin(e *echo.Echo, offers *handler.AdminOfferHandler, merchants *handler.AdminMerchantHandler, resolver *service.RoleResolver, jwtSecret string) {
	g := e.Group(
		"/v1/admin",
		middleware.JWTAuth(jwtSecret),
		middleware.ResolveRole(resolver),
		middleware.RequireRole(model.RoleAdmin),
	)

	// ---- Offers (moderation) ----
	g.GET("/offers", offers.List) // optional ?status= filter
	g.GET("/offers/:id", offers.Get)
	g.PUT("/offers/:id", offers.Update)
	g.PATCH("/offers/:id", offers.Update)
	g.PATCH("/offers/:id/status", offers.SetStatus)

	// ---- Merchants ----
	g.GET("/merchants", merchants.List)
	g.POST("/merchants", merchants.Create)
	g.GET("/merchants/:id", merchants.Get)
	g.PUT("/merchants/:id", merchants.Update)
	g.PATCH("/merchants/:id", merchants.Update)
	g.DELETE("/merchants/:id", merchants.Delete)

	// ---- Dashboard ----
	g.GET("/stats", offers.Stats)
}
