package sqlite

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/atelierhq/atelier/internal/core/domain"
	"github.com/atelierhq/atelier/internal/core/repository"
	"github.com/atelierhq/atelier/internal/infrastructure/storage"
)

const pricesCollection = "prices"

type priceRepository struct {
	store   *DocumentStore
	objects storage.ObjectStore
}

func NewPriceRepository(store *DocumentStore, objects storage.ObjectStore) repository.PriceRepository {
	return &priceRepository{store: store, objects: objects}
}

// Add validates the amount before any write: an uncoercible or non-positive
// value never reaches the database.
func (r *priceRepository) Add(ctx context.Context, price *domain.Price) (string, error) {
	if err := validateAmount(price.Price); err != nil {
		return "", err
	}

	currency := price.Currency
	if currency == "" {
		currency = domain.DefaultCurrency
	}
	photoURLs := price.PhotoURLs
	if photoURLs == nil {
		photoURLs = []string{}
	}

	fields := map[string]any{
		"title":            price.Title,
		"shortDescription": price.ShortDescription,
		"fullDescription":  price.FullDescription,
		"price":            price.Price.Ptr(),
		"currency":         currency,
		"photoUrls":        photoURLs,
	}

	id, err := r.store.Add(ctx, pricesCollection, fields)
	if err != nil {
		return "", fmt.Errorf("failed to add price: %w", err)
	}
	slog.Debug("price added", "id", id, "title", price.Title)
	return id, nil
}

func (r *priceRepository) GetAll(ctx context.Context) ([]*domain.Price, error) {
	docs, err := r.store.List(ctx, pricesCollection)
	if err != nil {
		return nil, fmt.Errorf("failed to list prices: %w", err)
	}

	prices := make([]*domain.Price, 0, len(docs))
	for _, doc := range docs {
		prices = append(prices, mapPrice(doc))
	}
	return prices, nil
}

func (r *priceRepository) GetByID(ctx context.Context, id string) (*domain.Price, error) {
	doc, err := r.store.Get(ctx, pricesCollection, id)
	if err != nil {
		return nil, err
	}
	return mapPrice(doc), nil
}

func (r *priceRepository) Update(ctx context.Context, id string, upd domain.PriceUpdate) error {
	fields := map[string]any{}
	putOptionalString(fields, "title", upd.Title)
	putOptionalString(fields, "shortDescription", upd.ShortDescription)
	putOptionalString(fields, "fullDescription", upd.FullDescription)
	putOptionalString(fields, "currency", upd.Currency)
	if upd.Price != nil {
		if err := validateAmount(*upd.Price); err != nil {
			return err
		}
		fields["price"] = upd.Price.Ptr()
	}
	if len(fields) == 0 {
		return nil
	}
	return r.store.Update(ctx, pricesCollection, id, fields)
}

func (r *priceRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, pricesCollection, id)
}

func (r *priceRepository) UploadPhoto(ctx context.Context, priceID, filename string, photo io.Reader) (string, error) {
	path := fmt.Sprintf("prices/%s/%s", priceID, filename)
	url, err := r.objects.Save(ctx, path, photo)
	if err != nil {
		return "", fmt.Errorf("failed to upload price photo: %w", err)
	}
	slog.Debug("price photo uploaded", "priceId", priceID, "url", url)
	return url, nil
}

func (r *priceRepository) AddPhotoURL(ctx context.Context, priceID, url string) error {
	doc, err := r.store.Get(ctx, pricesCollection, priceID)
	if err != nil {
		return err
	}

	current := stringSliceField(doc.Fields, "photoUrls")
	for _, u := range current {
		if u == url {
			return nil
		}
	}
	current = append(current, url)

	return r.store.Update(ctx, pricesCollection, priceID, map[string]any{"photoUrls": current})
}

// RemovePhotoURL filters one URL out of the list via read-modify-write,
// keeping the remaining entries in order. Removing an absent URL is a no-op.
func (r *priceRepository) RemovePhotoURL(ctx context.Context, priceID, url string) error {
	doc, err := r.store.Get(ctx, pricesCollection, priceID)
	if err != nil {
		return err
	}

	current := stringSliceField(doc.Fields, "photoUrls")
	updated := make([]string, 0, len(current))
	for _, u := range current {
		if u != url {
			updated = append(updated, u)
		}
	}
	if len(updated) == len(current) {
		return nil
	}

	return r.store.Update(ctx, pricesCollection, priceID, map[string]any{"photoUrls": updated})
}

// mapPrice normalizes a raw price document. Reads never fail on malformed
// historical amounts: they are coerced to null and logged.
func mapPrice(doc *Document) *domain.Price {
	amount := domain.ParseAmount(doc.Fields["price"])
	if amount.IsInvalid() {
		slog.Warn("price value is not numeric, substituting null",
			"id", doc.ID, "value", doc.Fields["price"])
		amount = domain.UnsetAmount()
	}

	return &domain.Price{
		ID:               doc.ID,
		Title:            stringOrDefault(doc.Fields, "title", ""),
		ShortDescription: stringOrDefault(doc.Fields, "shortDescription", ""),
		FullDescription:  stringOrDefault(doc.Fields, "fullDescription", ""),
		Price:            amount,
		Currency:         stringOrDefault(doc.Fields, "currency", domain.DefaultCurrency),
		PhotoURLs:        stringSliceField(doc.Fields, "photoUrls"),
	}
}

func validateAmount(a domain.Amount) error {
	if a.IsInvalid() {
		return domain.NewValidationError("invalid price value: must be a number or null")
	}
	if a.IsSet() && a.Value() <= 0 {
		return domain.NewValidationError("invalid price value: must be greater than zero")
	}
	return nil
}
