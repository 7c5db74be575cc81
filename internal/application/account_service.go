package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/stadsloket/registration-api/internal/domain/entity"
	repo "github.com/stadsloket/registration-api/internal/domain/repository"
	"github.com/stadsloket/registration-api/pkg/helpers"
)

// AccountService owns internal account creation. Passwords are always
// bcrypt-hashed before they reach storage; the plain credential is never
// persisted or logged.
type AccountService struct {
	Users  repo.UserRepository
	Logger *logrus.Logger
}

func NewAccountService(users repo.UserRepository, logger *logrus.Logger) *AccountService {
	return &AccountService{Users: users, Logger: logger}
}

func (s *AccountService) CreateUser(ctx context.Context, in *entity.UserInsert) (*entity.User, error) {
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("username", in.Username).Error("password hash failed")
		}
		return nil, err
	}
	return s.Users.Create(ctx, in.Username, hash)
}

func (s *AccountService) GetUserByUsername(ctx context.Context, username string) (*entity.User, error) {
	return s.Users.GetByUsername(ctx, username)
}

func (s *AccountService) GetUserByID(ctx context.Context, id string) (*entity.User, error) {
	return s.Users.GetByID(ctx, id)
}
