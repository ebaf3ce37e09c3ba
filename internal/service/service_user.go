package service

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-user-registry/internal/logger"
	"github.com/MKhiriev/go-user-registry/internal/metrics"
	"github.com/MKhiriev/go-user-registry/internal/store"
	"github.com/MKhiriev/go-user-registry/models"
)

type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

func (u *userService) ListUsers(ctx context.Context) ([]models.User, error) {
	return u.userRepository.ListUsers(ctx)
}

func (u *userService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	created, err := u.userRepository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrUserAlreadyExists) {
			metrics.UserCreateConflictsTotal.Inc()
		}
		return models.User{}, err
	}

	metrics.UsersCreatedTotal.Inc()
	logger.FromContext(ctx).Info().
		Int64("user_id", created.ID).
		Str("username", created.Username).
		Msg("user created")

	return created, nil
}
