package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stadsloket/registration-api/internal/domain/entity"
	"github.com/stadsloket/registration-api/internal/domain/repository"
)

type CitizenRepository struct {
	pool *pgxpool.Pool
}

func NewCitizenRepository(pool *pgxpool.Pool) *CitizenRepository {
	return &CitizenRepository{pool: pool}
}

const citizenColumns = `id, first_name, last_name, email, phone, city, preferred_language, accept_privacy, type, created_at`

func (r *CitizenRepository) Create(ctx context.Context, in *entity.CitizenInsert) (*entity.Citizen, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO citizens (first_name, last_name, email, phone, city, preferred_language, accept_privacy)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+citizenColumns,
		in.FirstName, in.LastName, in.Email, in.Phone, in.City, in.PreferredLanguage, in.AcceptPrivacy)

	c, err := scanCitizen(row)
	if err != nil {
		if isUniqueViolation(err, "email") {
			return nil, &repository.ConflictError{Table: "citizens", Column: "email"}
		}
		return nil, err
	}
	return c, nil
}

func (r *CitizenRepository) GetByID(ctx context.Context, id string) (*entity.Citizen, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+citizenColumns+` FROM citizens WHERE id = $1`, id)
	return absentOK(scanCitizen(row))
}

func (r *CitizenRepository) GetByEmail(ctx context.Context, email string) (*entity.Citizen, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+citizenColumns+` FROM citizens WHERE email = $1`, email)
	return absentOK(scanCitizen(row))
}

func scanCitizen(row pgx.Row) (*entity.Citizen, error) {
	c := &entity.Citizen{}
	err := row.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.City,
		&c.PreferredLanguage, &c.AcceptPrivacy, &c.Type, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// absentOK maps pgx.ErrNoRows to (nil, nil): a missing row is an absent
// value, not an error.
func absentOK[T any](v *T, err error) (*T, error) {
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return v, nil
}

var _ repository.CitizenRepository = (*CitizenRepository)(nil)
