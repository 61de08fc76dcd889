package handler // handler defines http handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/merchant-offers-dashboard/internal/model"
	"github.com/iliyamo/merchant-offers-dashboard/internal/service"
)

// Validator adapts go-playground/validator to Echo's Validator
// interface so handlers can run struct-tag validation on bound DTOs
// with c.Validate.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// actorFrom assembles the service actor from the values the auth and
// role middlewares stored in the context.
func actorFrom(c echo.Context) service.Actor {
	userID, _ := c.Get("user_id").(string)
	role, _ := c.Get("role").(string)
	merchantID, _ := c.Get("merchant_id").(string)
	return service.Actor{
		UserID:     userID,
		Role:       model.Role(role),
		MerchantID: merchantID,
	}
}

// respondErr translates the service error taxonomy into HTTP
// responses. Persistence details are logged, never leaked.
func respondErr(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, service.ErrForbidden):
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	case errors.Is(err, service.ErrConflict):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	default:
		log.Printf("%s %s failed: %v", c.Request().Method, c.Path(), err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
	}
}
