package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/merchant-offers-dashboard/internal/service"
)

// AdminMerchantHandler manages merchant accounts: provisioning a
// principal + merchant record pair, profile edits and removal.
type AdminMerchantHandler struct {
	Merchants *service.MerchantService
}

func NewAdminMerchantHandler(merchants *service.MerchantService) *AdminMerchantHandler {
	return &AdminMerchantHandler{Merchants: merchants}
}

// List returns all merchants, newest first.
func (h *AdminMerchantHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	ms, err := h.Merchants.List(ctx, actorFrom(c))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"merchants": newMerchantList(ms)})
}

// Create provisions a new merchant account (login + merchant record).
func (h *AdminMerchantHandler) Create(c echo.Context) error {
	var req merchantCreateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	m, err := h.Merchants.Create(ctx, actorFrom(c), service.MerchantInput{
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Address:   req.Address,
		Category:  req.Category,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	})
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusCreated, newMerchantResp(m))
}

// Get returns one merchant by id.
func (h *AdminMerchantHandler) Get(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	m, err := h.Merchants.Get(ctx, actorFrom(c), c.Param("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, newMerchantResp(m))
}

// Update rewrites a merchant's profile fields.
func (h *AdminMerchantHandler) Update(c echo.Context) error {
	var req merchantUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	m, err := h.Merchants.Update(ctx, actorFrom(c), c.Param("id"), service.MerchantUpdate{
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

// Delete removes a merchant together with its offers. The login
// principal is cleaned up best-effort afterwards.
func (h *AdminMerchantHandler) Delete(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Merchants.Delete(ctx, actorFrom(c), c.Param("id")); err != nil {
		return respondErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
