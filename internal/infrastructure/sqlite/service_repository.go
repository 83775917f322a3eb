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

const servicesCollection = "services"

// Read-side defaults so the UI never sees a missing required display field.
const (
	defaultServiceName        = "Untitled Service"
	defaultServiceDescription = "No description"
)

type serviceRepository struct {
	store   *DocumentStore
	objects storage.ObjectStore
}

func NewServiceRepository(store *DocumentStore, objects storage.ObjectStore) repository.ServiceRepository {
	return &serviceRepository{store: store, objects: objects}
}

// Add inserts the service as given. ClientID is not checked against the
// clients collection.
func (r *serviceRepository) Add(ctx context.Context, service *domain.Service) (string, error) {
	photoURLs := service.PhotoURLs
	if photoURLs == nil {
		photoURLs = []string{}
	}

	fields := map[string]any{
		"name":        service.Name,
		"clientId":    service.ClientID,
		"description": service.Description,
		"price":       service.Price,
		"date":        encodeTime(service.Date),
		"photoUrls":   photoURLs,
	}

	id, err := r.store.Add(ctx, servicesCollection, fields)
	if err != nil {
		return "", fmt.Errorf("failed to add service: %w", err)
	}
	slog.Debug("service added", "id", id, "clientId", service.ClientID)
	return id, nil
}

func (r *serviceRepository) GetAll(ctx context.Context) ([]*domain.Service, error) {
	docs, err := r.store.List(ctx, servicesCollection)
	if err != nil {
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return mapServices(docs), nil
}

// GetByClientID returns the services referencing clientID, or an empty list
// when there are none. The client itself may no longer exist.
func (r *serviceRepository) GetByClientID(ctx context.Context, clientID string) ([]*domain.Service, error) {
	docs, err := r.store.Query(ctx, servicesCollection, "clientId", clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query services for client %s: %w", clientID, err)
	}
	return mapServices(docs), nil
}

func (r *serviceRepository) GetByID(ctx context.Context, id string) (*domain.Service, error) {
	doc, err := r.store.Get(ctx, servicesCollection, id)
	if err != nil {
		return nil, err
	}
	return mapService(doc), nil
}

func (r *serviceRepository) Update(ctx context.Context, id string, upd domain.ServiceUpdate) error {
	fields := map[string]any{}
	putOptionalString(fields, "name", upd.Name)
	putOptionalString(fields, "clientId", upd.ClientID)
	putOptionalString(fields, "description", upd.Description)
	if upd.Price != nil {
		fields["price"] = *upd.Price
	}
	if upd.Date != nil {
		fields["date"] = encodeTime(*upd.Date)
	}
	if len(fields) == 0 {
		return nil
	}
	return r.store.Update(ctx, servicesCollection, id, fields)
}

func (r *serviceRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, servicesCollection, id)
}

func (r *serviceRepository) UploadPhoto(ctx context.Context, serviceID, filename string, photo io.Reader) (string, error) {
	path := fmt.Sprintf("services/%s/%s", serviceID, filename)
	url, err := r.objects.Save(ctx, path, photo)
	if err != nil {
		return "", fmt.Errorf("failed to upload service photo: %w", err)
	}
	slog.Debug("service photo uploaded", "serviceId", serviceID, "url", url)
	return url, nil
}

// AddPhotoURLs appends the given URLs in order via read-modify-write,
// skipping ones already present.
func (r *serviceRepository) AddPhotoURLs(ctx context.Context, serviceID string, urls []string) error {
	doc, err := r.store.Get(ctx, servicesCollection, serviceID)
	if err != nil {
		return err
	}

	current := stringSliceField(doc.Fields, "photoUrls")
	seen := make(map[string]bool, len(current))
	for _, u := range current {
		seen[u] = true
	}
	for _, u := range urls {
		if !seen[u] {
			current = append(current, u)
			seen[u] = true
		}
	}

	return r.store.Update(ctx, servicesCollection, serviceID, map[string]any{"photoUrls": current})
}

func mapServices(docs []*Document) []*domain.Service {
	services := make([]*domain.Service, 0, len(docs))
	for _, doc := range docs {
		services = append(services, mapService(doc))
	}
	return services
}

func mapService(doc *Document) *domain.Service {
	price, _ := numberField(doc.Fields, "price")

	date, ok := timeField(doc.Fields, "date")
	if !ok {
		date = time.Now()
	}

	return &domain.Service{
		ID:          doc.ID,
		Name:        stringOrDefault(doc.Fields, "name", defaultServiceName),
		ClientID:    stringOrDefault(doc.Fields, "clientId", ""),
		Description: stringOrDefault(doc.Fields, "description", defaultServiceDescription),
		Price:       price,
		Date:        date,
		PhotoURLs:   stringSliceField(doc.Fields, "photoUrls"),
	}
}
