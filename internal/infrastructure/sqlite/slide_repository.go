package sqlite

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/atelierhq/atelier/internal/core/domain"
	"github.com/atelierhq/atelier/internal/core/repository"
	"github.com/atelierhq/atelier/internal/infrastructure/storage"
)

const slidesCollection = "slides"

type slideRepository struct {
	store   *DocumentStore
	objects storage.ObjectStore
}

func NewSlideRepository(store *DocumentStore, objects storage.ObjectStore) repository.SlideRepository {
	return &slideRepository{store: store, objects: objects}
}

// Add uploads the image first, then inserts the document with server-assigned
// timestamps. The filename is prefixed with the upload time to avoid
// collisions between slides reusing the same image name.
func (r *slideRepository) Add(ctx context.Context, slide *domain.Slide, imageName string, image io.Reader) (*domain.Slide, error) {
	now := time.Now()

	path := fmt.Sprintf("slides/images/%d_%s", now.UnixMilli(), imageName)
	imageURL, err := r.objects.Save(ctx, path, image)
	if err != nil {
		return nil, fmt.Errorf("failed to upload slide image: %w", err)
	}

	fields := map[string]any{
		"title":       slide.Title,
		"description": slide.Description,
		"imageUrl":    imageURL,
		"order":       slide.Order,
		"createdAt":   encodeTime(now),
		"updatedAt":   encodeTime(now),
	}

	id, err := r.store.Add(ctx, slidesCollection, fields)
	if err != nil {
		return nil, fmt.Errorf("failed to add slide: %w", err)
	}
	slog.Debug("slide added", "id", id, "imageUrl", imageURL)

	return &domain.Slide{
		ID:          id,
		Title:       slide.Title,
		Description: slide.Description,
		ImageURL:    imageURL,
		Order:       slide.Order,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// GetAll returns slides ordered by their display order. Ties fall back to
// the store's default return order.
func (r *slideRepository) GetAll(ctx context.Context) ([]*domain.Slide, error) {
	docs, err := r.store.ListOrdered(ctx, slidesCollection, "order")
	if err != nil {
		return nil, fmt.Errorf("failed to list slides: %w", err)
	}

	slides := make([]*domain.Slide, 0, len(docs))
	for _, doc := range docs {
		slides = append(slides, mapSlide(doc))
	}
	return slides, nil
}

func (r *slideRepository) GetByID(ctx context.Context, id string) (*domain.Slide, error) {
	doc, err := r.store.Get(ctx, slidesCollection, id)
	if err != nil {
		return nil, err
	}
	return mapSlide(doc), nil
}

func (r *slideRepository) Update(ctx context.Context, id string, upd domain.SlideUpdate) error {
	fields := map[string]any{
		"updatedAt": encodeTime(time.Now()),
	}
	putOptionalString(fields, "title", upd.Title)
	putOptionalString(fields, "description", upd.Description)
	if upd.Order != nil {
		fields["order"] = *upd.Order
	}
	return r.store.Update(ctx, slidesCollection, id, fields)
}

// Delete removes the slide document, then best-effort deletes the backing
// image. A malformed image URL or an already-missing asset is logged and
// swallowed: the document deletion has logically succeeded by then.
func (r *slideRepository) Delete(ctx context.Context, id string) error {
	slide, err := r.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := r.store.Delete(ctx, slidesCollection, id); err != nil {
		return err
	}

	path := r.objects.PathFromURL(slide.ImageURL)
	if path == "" {
		slog.Warn("cannot derive asset path from slide image url, skipping asset deletion",
			"id", id, "imageUrl", slide.ImageURL)
		return nil
	}
	if err := r.objects.Delete(ctx, path); err != nil {
		slog.Warn("failed to delete slide image asset", "id", id, "path", path, "error", err)
	}
	return nil
}

func mapSlide(doc *Document) *domain.Slide {
	order, _ := numberField(doc.Fields, "order")

	createdAt, _ := timeField(doc.Fields, "createdAt")
	updatedAt, _ := timeField(doc.Fields, "updatedAt")

	return &domain.Slide{
		ID:          doc.ID,
		Title:       stringOrDefault(doc.Fields, "title", ""),
		Description: stringOrDefault(doc.Fields, "description", ""),
		ImageURL:    stringOrDefault(doc.Fields, "imageUrl", ""),
		Order:       int(order),
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}
