package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stadsloket/registration-api/internal/domain/entity"
	"github.com/stadsloket/registration-api/internal/domain/repository"
)

type PartnerRepository struct {
	pool *pgxpool.Pool
}

func NewPartnerRepository(pool *pgxpool.Pool) *PartnerRepository {
	return &PartnerRepository{pool: pool}
}

const partnerColumns = `id, company_name, contact_person, partner_type, email, phone, city, description, accept_privacy, type, created_at`

func (r *PartnerRepository) Create(ctx context.Context, in *entity.PartnerInsert) (*entity.Partner, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO partners (company_name, contact_person, partner_type, email, phone, city, description, accept_privacy)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+partnerColumns,
		in.CompanyName, in.ContactPerson, in.PartnerType, in.Email, in.Phone, in.City, in.Description, in.AcceptPrivacy)

	p, err := scanPartner(row)
	if err != nil {
		if isUniqueViolation(err, "email") {
			return nil, &repository.ConflictError{Table: "partners", Column: "email"}
		}
		return nil, err
	}
	return p, nil
}

func (r *PartnerRepository) GetByID(ctx context.Context, id string) (*entity.Partner, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+partnerColumns+` FROM partners WHERE id = $1`, id)
	return absentOK(scanPartner(row))
}

func (r *PartnerRepository) GetByEmail(ctx context.Context, email string) (*entity.Partner, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+partnerColumns+` FROM partners WHERE email = $1`, email)
	return absentOK(scanPartner(row))
}

func scanPartner(row pgx.Row) (*entity.Partner, error) {
	p := &entity.Partner{}
	err := row.Scan(&p.ID, &p.CompanyName, &p.ContactPerson, &p.PartnerType, &p.Email,
		&p.Phone, &p.City, &p.Description, &p.AcceptPrivacy, &p.Type, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return p, nil
}

var _ repository.PartnerRepository = (*PartnerRepository)(nil)
