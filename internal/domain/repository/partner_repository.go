package repository

import (
	"context"

	"github.com/stadsloket/registration-api/internal/domain/entity"
)

// PartnerRepository defines the storage operations for partners.
// Lookups return (nil, nil) when no row matches; absence is not an error.
type PartnerRepository interface {
	Create(ctx context.Context, in *entity.PartnerInsert) (*entity.Partner, error)
	GetByID(ctx context.Context, id string) (*entity.Partner, error)
	GetByEmail(ctx context.Context, email string) (*entity.Partner, error)
}
