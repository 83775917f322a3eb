package repository

import (
	"context"

	"github.com/atelierhq/atelier/internal/core/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, email string) error
	List(ctx context.Context) ([]*domain.User, error)
}
