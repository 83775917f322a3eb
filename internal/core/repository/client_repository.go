package repository

import (
	"context"

	"github.com/atelierhq/atelier/internal/core/domain"
)

type ClientRepository interface {
	Add(ctx context.Context, client *domain.Client) (string, error)
	GetAll(ctx context.Context) ([]*domain.Client, error)
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	Update(ctx context.Context, id string, upd domain.ClientUpdate) error
	Delete(ctx context.Context, id string) error
}
