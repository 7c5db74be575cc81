package repository

import (
	"context"

	"github.com/stadsloket/registration-api/internal/domain/entity"
)

// CitizenRepository defines the storage operations for citizens.
// Lookups return (nil, nil) when no row matches; absence is not an error.
type CitizenRepository interface {
	Create(ctx context.Context, in *entity.CitizenInsert) (*entity.Citizen, error)
	GetByID(ctx context.Context, id string) (*entity.Citizen, error)
	GetByEmail(ctx context.Context, email string) (*entity.Citizen, error)
}
