package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/merchant-offers-dashboard/internal/service"
)

// MerchantProfileHandler lets a merchant read and edit its own record.
// The record is addressed through the resolved merchant binding, never
// through a client-supplied id.
type MerchantProfileHandler struct {
	Merchants *service.MerchantService
}

func NewMerchantProfileHandler(merchants *service.MerchantService) *MerchantProfileHandler {
	return &MerchantProfileHandler{Merchants: merchants}
}

// Get returns the caller's own merchant record.
func (h *MerchantProfileHandler) Get(c echo.Context) error {
	actor := actorFrom(c)
	if actor.MerchantID == "" {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	m, err := h.Merchants.Get(ctx, actor, actor.MerchantID)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, newMerchantResp(m))
}

// Update rewrites the caller's own profile fields.
func (h *MerchantProfileHandler) Update(c echo.Context) error {
	actor := actorFrom(c)
	if actor.MerchantID == "" {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}

	var req merchantUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	m, err := h.Merchants.Update(ctx, actor, actor.MerchantID, service.MerchantUpdate{
		Name:      req.Name,
		Address:   req.Address,
		Category:  req.Category,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, newMerchantResp(m))
}
