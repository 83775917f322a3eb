package repository

import (
	"context"
	"io"

	"github.com/atelierhq/atelier/internal/core/domain"
)

type ServiceRepository interface {
	Add(ctx context.Context, service *domain.Service) (string, error)
	GetAll(ctx context.Context) ([]*domain.Service, error)
	GetByClientID(ctx context.Context, clientID string) ([]*domain.Service, error)
	GetByID(ctx context.Context, id string) (*domain.Service, error)
	Update(ctx context.Context, id string, upd domain.ServiceUpdate) error
	Delete(ctx context.Context, id string) error

	// UploadPhoto stores the photo bytes under the service's namespace and
	// returns the retrieval URL. The URL is not attached to the document
	// until AddPhotoURLs is called.
	UploadPhoto(ctx context.Context, serviceID, filename string, r io.Reader) (string, error)
	AddPhotoURLs(ctx context.Context, serviceID string, urls []string) error
}
