package domain

import "time"

// Slide is a marketing slideshow entry. ImageURL points at an object-store
// asset whose storage path must be derivable from the URL so the asset can be
// removed together with the slide.
type Slide struct {
	ID          string
	Title       string
	Description string
	ImageURL    string
	Order       int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// SlideUpdate carries a partial update; nil fields are left untouched.
// UpdatedAt is refreshed by the repository on every update.
type SlideUpdate struct {
	Title       *string
	Description *string
	Order       *int
}
