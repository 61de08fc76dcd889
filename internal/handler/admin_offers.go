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

// AdminOfferHandler exposes the moderation side of the offer workflow:
// listing everything, inspecting, editing, approving and rejecting.
type AdminOfferHandler struct {
	Offers *service.OfferService
}

func NewAdminOfferHandler(offers *service.OfferService) *AdminOfferHandler {
	return &AdminOfferHandler{Offers: offers}
}

type statusReq struct {
	Status string `json:"status" validate:"required,oneof=PENDING APPROVED REJECTED"`
}

// List returns every offer, optionally filtered with ?status=.
func (h *AdminOfferHandler) List(c echo.Context) error {
	status := model.OfferStatus(strings.ToUpper(strings.TrimSpace(c.QueryParam("status"))))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	offers, err := h.Offers.List(ctx, actorFrom(c), status)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"offers": newOfferList(offers)})
}

// Get returns one offer by id.
func (h *AdminOfferHandler) Get(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	o, err := h.Offers.Get(ctx, actorFrom(c), c.Param("id"))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, newOfferResp(o))
}

// Update rewrites an offer's content and, when the body carries a
// status, the approval state as well.
func (h *AdminOfferHandler) Update(c echo.Context) error {
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

// SetStatus moves an offer through the approval workflow
// (PATCH /offers/:id/status).
func (h *AdminOfferHandler) SetStatus(c echo.Context) error {
	var req statusReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	o, err := h.Offers.UpdateStatus(ctx, actorFrom(c), c.Param("id"), model.OfferStatus(req.Status))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, newOfferResp(o))
}

// Stats returns the global dashboard counters.
func (h *AdminOfferHandler) Stats(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	st, err := h.Offers.AdminStats(ctx, actorFrom(c))
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, st)
}
