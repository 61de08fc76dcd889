package handler

import (
	"time"

	"github.com/iliyamo/merchant-offers-dashboard/internal/model"
	"github.com/iliyamo/merchant-offers-dashboard/internal/service"
)

// Request/response DTOs shared by the admin and merchant handlers.
// Responses are rebuilt from models instead of serializing them
// directly so internal fields never leak by accident.

type offerReq struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description" validate:"required"`
	Discount    *float64  `json:"discount" validate:"omitempty,gte=0"`
	StartDate   time.Time `json:"start_date" validate:"required"`
	EndDate     time.Time `json:"end_date" validate:"required"`
	Conditions  *string   `json:"conditions"`
	// Status is honored only on admin edits; everywhere else the
	// lifecycle decides.
	Status string `json:"status" validate:"omitempty,oneof=PENDING APPROVED REJECTED"`
}

func (r offerReq) toInput() service.OfferInput {
	return service.OfferInput{
		Title:       r.Title,
		Description: r.Description,
		Discount:    r.Discount,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		Conditions:  r.Conditions,
		Status:      model.OfferStatus(r.Status),
	}
}

type offerResp struct {
	ID           string    `json:"id"`
	MerchantID   string    `json:"merchant_id"`
	MerchantName string    `json:"merchant_name,omitempty"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Discount     *float64  `json:"discount"`
	StartDate    time.Time `json:"start_date"`
	EndDate      time.Time `json:"end_date"`
	Conditions   *string   `json:"conditions"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

func newOfferResp(o *model.Offer) offerResp {
	return offerResp{
		ID:           o.ID,
		MerchantID:   o.MerchantID,
		MerchantName: o.MerchantName,
		Title:        o.Title,
		Description:  o.Description,
		Discount:     o.Discount,
		StartDate:    o.StartDate,
		EndDate:      o.EndDate,
		Conditions:   o.Conditions,
		Status:       string(o.Status),
		CreatedAt:    o.CreatedAt,
	}
}

func newOfferList(offers []*model.Offer) []offerResp {
	out := make([]offerResp, 0, len(offers))
	for _, o := range offers {
		out = append(out, newOfferResp(o))
	}
	return out
}

type merchantCreateReq struct {
	Name      string   `json:"name" validate:"required"`
	Email     string   `json:"email" validate:"required,email"`
	Password  string   `json:"password" validate:"required,min=6"`
	Address   *string  `json:"address"`
	Category  *string  `json:"category"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type merchantUpdateReq struct {
	Name      string   `json:"name" validate:"required"`
	Address   *string  `json:"address"`
	Category  *string  `json:"category"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type merchantResp struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Address   *string   `json:"address"`
	Category  *string   `json:"category"`
	Latitude  *float64  `json:"latitude"`
	Longitude *float64  `json:"longitude"`
	CreatedAt time.Time `json:"created_at"`
}

func newMerchantResp(m *model.Merchant) merchantResp {
	return merchantResp{
		ID:        m.ID,
		Name:      m.Name,
		Address:   m.Address,
		Category:  m.Category,
		Latitude:  m.Latitude,
		Longitude: m.Longitude,
		CreatedAt: m.CreatedAt,
	}
}

func newMerchantList(ms []*model.Merchant) []merchantResp {
	out := make([]merchantResp, 0, len(ms))
	for _, m := range ms {
		out = append(out, newMerchantResp(m))
	}
	return out
}
