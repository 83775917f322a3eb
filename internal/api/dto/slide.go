package dto

import "time"

// UpdateSlideRequest represents a partial slide update; the image itself is
// immutable after creation.
type UpdateSlideRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Order       *int    `json:"order"`
}

// SlideResponse represents a slideshow entry
type SlideResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	ImageURL    string    `json:"imageUrl"`
	Order       int       `json:"order"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SlideListResponse represents slides in display order
type SlideListResponse struct {
	Items []SlideResponse `json:"items"`
	Total int             `json:"total"`
}
