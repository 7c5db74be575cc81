package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/stadsloket/registration-api/internal/domain/entity"
	"github.com/stadsloket/registration-api/internal/domain/repository"
)

type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Create(ctx context.Context, username, passwordHash string) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO users (username, password)
		VALUES ($1, $2)
		RETURNING id, username, password
	`, username, passwordHash)

	u, err := scanUser(row)
	if err != nil {
		if isUniqueViolation(err, "username") {
			return nil, &repository.ConflictError{Table: "users", Column: "username"}
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT id, username, password FROM users WHERE username = $1`, username)
	return absentOK(scanUser(row))
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*entity.User, error) {
	row := r.pool.QueryRow(ctx, `SELECT id, username, password FROM users WHERE id = $1`, id)
	return absentOK(scanUser(row))
}

func scanUser(row pgx.Row) (*entity.User, error) {
	u := &entity.User{}
	if err := row.Scan(&u.ID, &u.Username, &u.Password); err != nil {
		return nil, err
	}
	return u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
