package middleware

import (
	"log"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/merchant-offers-dashboard/internal/model"
	"github.com/iliyamo/merchant-offers-dashboard/internal/service"
)

// ResolveRole returns a middleware that computes the caller's role for
// this request and stores it in the context under "role", plus
// "merchant_id" when the caller owns a merchant. It must run after
// JWTAuth. A resolver failure is logged and the caller proceeds as
// role NONE; a later RequireRole then turns the request away.
func ResolveRole(resolver *service.RoleResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, _ := c.Get("user_id").(string)
			res, err := resolver.Resolve(c.Request().Context(), userID)
			if err != nil {
				log.Printf("role resolution failed for user %s: %v", userID, err)
				res = service.Resolution{Role: model.RoleNone}
			}
			c.Set("role", string(res.Role))
			c.Set("merchant_id", res.MerchantID)
			return next(c)
		}
	}
}

// RequireRole returns a middleware enforcing that the resolved role is
// one of the allowed values. Requests with a missing or unrecognized
// role are rejected with 403. It assumes ResolveRole ran earlier in
// the chain.
func RequireRole(roles ...model.Role) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[string(r)] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get("role").(string)
			if !ok || !allowed[role] {
				return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
