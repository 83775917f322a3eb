package repository

import (
	"context"
	"io"

	"github.com/atelierhq/atelier/internal/core/domain"
)

type SlideRepository interface {
	// Add uploads the image first, then inserts the document with
	// server-assigned timestamps, and returns the complete slide.
	Add(ctx context.Context, slide *domain.Slide, imageName string, image io.Reader) (*domain.Slide, error)
	// GetAll returns slides ordered by their display order.
	GetAll(ctx context.Context) ([]*domain.Slide, error)
	GetByID(ctx context.Context, id string) (*domain.Slide, error)
	Update(ctx context.Context, id string, upd domain.SlideUpdate) error
	// Delete removes the document and then best-effort deletes the backing
	// image asset; a malformed image URL never blocks the deletion.
	Delete(ctx context.Context, id string) error
}
