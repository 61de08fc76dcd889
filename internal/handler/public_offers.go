package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/merchant-offers-dashboard/internal/service"
)

// PublicOfferHandler serves the unauthenticated storefront view: only
// approved offers are ever exposed.
type PublicOfferHandler struct {
	Offers *service.OfferService
}

func NewPublicOfferHandler(offers *service.OfferService) *PublicOfferHandler {
	return &PublicOfferHandler{Offers: offers}
}

// ListApproved returns all approved offers with their merchant names.
func (h *PublicOfferHandler) ListApproved(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	offers, err := h.Offers.ListApproved(ctx)
	if err != nil {
		return respondErr(c, err)
	}
	return c.JSON(http.StatusOK, echo.Map{"offers": newOfferList(offers)})
}
