package repository

import (
	"context"

	"github.com/stadsloket/registration-api/internal/domain/entity"
)

// UserRepository defines the storage operations for internal accounts.
// Password must already be hashed when Create is called.
type UserRepository interface {
	Create(ctx context.Context, username, passwordHash string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetByID(ctx context.Context, id string) (*entity.User, error)
}
