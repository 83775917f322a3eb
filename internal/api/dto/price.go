package dto

import "github.com/atelierhq/atelier/internal/core/domain"

// CreatePriceRequest represents the price creation request. Price accepts a
// number, a numeric string, or null ("contact for quote"); anything else is
// rejected before any write.
type CreatePriceRequest struct {
	Title            string        `json:"title" binding:"required"`
	ShortDescription string        `json:"shortDescription"`
	FullDescription  string        `json:"fullDescription"`
	Price            domain.Amount `json:"price"`
	Currency         string        `json:"currency"`
	PhotoURLs        []string      `json:"photoUrls"`
}

// UpdatePriceRequest represents a partial price update
type UpdatePriceRequest struct {
	Title            *string        `json:"title"`
	ShortDescription *string        `json:"shortDescription"`
	FullDescription  *string        `json:"fullDescription"`
	Price            *domain.Amount `json:"price"`
	Currency         *string        `json:"currency"`
}

// PriceResponse represents a price-list item. Price marshals as a number or
// null, never as a malformed legacy value.
type PriceResponse struct {
	ID               string        `json:"id"`
	Title            string        `json:"title"`
	ShortDescription string        `json:"shortDescription"`
	FullDescription  string        `json:"fullDescription"`
	Price            domain.Amount `json:"price"`
	Currency         string        `json:"currency"`
	PhotoURLs        []string      `json:"photoUrls"`
}

// PriceListResponse represents the full price list
type PriceListResponse struct {
	Items []PriceResponse `json:"items"`
	Total int             `json:"total"`
}

// RemovePhotoRequest identifies the photo URL to detach from a price
type RemovePhotoRequest struct {
	URL string `json:"url" binding:"required"`
}
