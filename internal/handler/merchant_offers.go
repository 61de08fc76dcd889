package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/merchant-offers-dashboard/internal/model"
	"github.com/iliyamo/merchant-offers-dashboard/internal/service"
)

// MerchantOfferHandler exposes a merchant's own offers: CRUD scoped to
// the caller's merchant record. New offers always enter as pending and
// edits never touch the approval state.
type MerchantOfferHandler struct {
	Offers *service.OfferService
}

func NewMerchantOfferHandler(offers *service.OfferService) *MerchantOfferHandler {
	return &MerchantOfferHandler{Offers: offers}
}

// List returns the caller's offers, optionally filtered with ?status=.
func (h *MerchantOfferHandler) List(c echo.Context) error {
	status := model.OfferStatus(strings.ToUpper(strings.TrimSpace(c.QueryParam("status"))))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	offers, err := h.Offers.List(ctx, actorFrom(c), status)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"offers": newOfferList(offers)})
}

// Create submits a new offer for approval.
func (h *MerchantOfferHandler) Create(c echo.Context) error {
	var req offerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	o, err := h.Offers.Create(ctx, actorFrom(c), req.toInput())
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusCreated, newOfferResp(o))
}

// Get returns one of the caller's offers.
func (h *MerchantOfferHandler) Get(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	o, err := h.Offers.Get(ctx, actorFrom(c), c.Param("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, newOfferResp(o))
}

// Update rewrites an offer's content. The stored approval state is
// preserved no matter what the body says.
func (h *MerchantOfferHandler) Update(c echo.Context) error {
	var req offerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	o, err := h.Offers.UpdateContent(ctx, actorFrom(c), c.Param("id"), req.toInput())
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, newOfferResp(o))
}

// Delete removes one of the caller's own offers.
func (h *MerchantOfferHandler) Delete(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Offers.Delete(ctx, actorFrom(c), c.Param("id")); err != nil {
		return respondErr(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// Stats returns the caller's own offer counters.
func (h *MerchantOfferHandler) Stats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	st, err := h.Offers.Stats(ctx, actorFrom(c))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, st)
}
