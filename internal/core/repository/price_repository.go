package repository

import (
	"context"
	"io"

	"github.com/atelierhq/atelier/internal/core/domain"
)

type PriceRepository interface {
	// Add rejects an invalid price amount with a ValidationError before
	// anything is written.
	Add(ctx context.Context, price *domain.Price) (string, error)
	GetAll(ctx context.Context) ([]*domain.Price, error)
	GetByID(ctx context.Context, id string) (*domain.Price, error)
	Update(ctx context.Context, id string, upd domain.PriceUpdate) error
	Delete(ctx context.Context, id string) error

	UploadPhoto(ctx context.Context, priceID, filename string, r io.Reader) (string, error)
	AddPhotoURL(ctx context.Context, priceID, url string) error
	// RemovePhotoURL removes one entry from the photo list, preserving the
	// order of the rest. Removing a URL that is not present is a no-op.
	RemovePhotoURL(ctx context.Context, priceID, url string) error
}
