package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/merchant-offers-dashboard/internal/handler"
	"github.com/iliyamo/merchant-offers-dashboard/internal/middleware"
	"github.com/iliyamo/merchant-offers-dashboard/internal/model"
	"github.com/iliyamo/merchant-offers-dashboard/internal/service"
)

// RegisterMerchant registers MERCHANT-scoped endpoints under
// /v1/merchant. All routes require a valid JWT and a role that
// resolves to MERCHANT at request time.
func RegisterMerchant(e *echo.Echo, offers *handler.MerchantOfferHandler, profile *handler.MerchantProfileHandler, resolver *service.RoleResolver, jwtSecret string) {
	g := e.Group(
		"/v1/merchant",
		middleware.JWTAuth(jwtSecret),
		middleware.ResolveRole(resolver),
		middleware.RequireRole(model.RoleMerchant),
	)

	// ---- Own offers ----
	g.GET("/offers", offers.List) // optional ?status= filter
	g.POST("/offers", offers.Create)
	g.GET("/offers/:id", offers.Get)
	g.PUT("/offers/:id", offers.Update)
	g.PATCH("/offers/:id", offers.Update)
	g.DELETE("/offers/:id", offers.Delete)

	// ---- Own profile and dashboard ----
	g.GET("/profile", profile.Get)
	g.PUT("/profile", profile.Update)
	g.PATCH("/profile", profile.Update)
	g.GET("/stats", offers.Stats)
}
