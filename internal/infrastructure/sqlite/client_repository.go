package sqlite

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/atelierhq/atelier/internal/core/domain"
	"github.com/atelierhq/atelier/internal/core/repository"
)

const clientsCollection = "clients"

type clientRepository struct {
	store *DocumentStore
}

func NewClientRepository(store *DocumentStore) repository.ClientRepository {
	return &clientRepository{store: store}
}

func (r *clientRepository) Add(ctx context.Context, client *domain.Client) (string, error) {
	fields := map[string]any{
		"name": client.Name,
	}
	putOptionalString(fields, "phone", client.Phone)
	putOptionalString(fields, "email", client.Email)
	putOptionalString(fields, "profilePictureUrl", client.ProfilePictureURL)
	putOptionalString(fields, "profilePictureColor", client.ProfilePictureColor)
	if client.LatestServiceDate != nil {
		fields["latestServiceDate"] = encodeTime(*client.LatestServiceDate)
	}

	id, err := r.store.Add(ctx, clientsCollection, fields)
	if err != nil {
		return "", fmt.Errorf("failed to add client: %w", err)
	}
	slog.Debug("client added", "id", id)
	return id, nil
}

func (r *clientRepository) GetAll(ctx context.Context) ([]*domain.Client, error) {
	docs, err := r.store.List(ctx, clientsCollection)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}

	clients := make([]*domain.Client, 0, len(docs))
	for _, doc := range docs {
		clients = append(clients, mapClient(doc))
	}
	return clients, nil
}

func (r *clientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	doc, err := r.store.Get(ctx, clientsCollection, id)
	if err != nil {
		return nil, err
	}
	return mapClient(doc), nil
}

func (r *clientRepository) Update(ctx context.Context, id string, upd domain.ClientUpdate) error {
	fields := map[string]any{}
	putOptionalString(fields, "name", upd.Name)
	putOptionalString(fields, "phone", upd.Phone)
	putOptionalString(fields, "email", upd.Email)
	putOptionalString(fields, "profilePictureUrl", upd.ProfilePictureURL)
	putOptionalString(fields, "profilePictureColor", upd.ProfilePictureColor)
	if upd.LatestServiceDate != nil {
		fields["latestServiceDate"] = encodeTime(*upd.LatestServiceDate)
	}
	if len(fields) == 0 {
		return nil
	}
	return r.store.Update(ctx, clientsCollection, id, fields)
}

// Delete removes the client only. Services referencing it are left in place
// on purpose; readers render orphans with a fallback label.
func (r *clientRepository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, clientsCollection, id)
}

func mapClient(doc *Document) *domain.Client {
	return &domain.Client{
		ID:                  doc.ID,
		Name:                stringOrDefault(doc.Fields, "name", ""),
		Phone:               optionalString(doc.Fields, "phone"),
		Email:               optionalString(doc.Fields, "email"),
		ProfilePictureURL:   optionalString(doc.Fields, "profilePictureUrl"),
		ProfilePictureColor: optionalString(doc.Fields, "profilePictureColor"),
		LatestServiceDate:   optionalTime(doc.Fields, "latestServiceDate"),
	}
}

func putOptionalString(fields map[string]any, key string, v *string) {
	if v != nil {
		fields[key] = *v
	}
}
