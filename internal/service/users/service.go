package users

import (
	"context"
	"errors"

	"notesapi/internal/database/models"
	"notesapi/internal/database/repositories"
	"notesapi/internal/metrics"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type DefaultService struct {
	repo   repositories.UserRepository
	logger zerolog.Logger
}

func NewDefaultService(repo repositories.UserRepository, logger zerolog.Logger) *DefaultService {
	return &DefaultService{repo: repo, logger: logger}
}

// CreateUser persists a new user with a fresh identifier and an empty notes
// collection. No input is required or accepted.
func (s *DefaultService) CreateUser(ctx context.Context) (*models.User, error) {
	user := &models.User{
		Notes: []models.Note{},
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Info().Str("user_id", user.Uid.String()).Msg("created new user")
	metrics.OperationsTotal.WithLabelValues("user", "create").Inc()
	return user, nil
}

// GetUserByID returns the user with notes and, transitively, each note's
// photos populated.
func (s *DefaultService) GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := s.repo.GetByID(ctx, userID)
	if errors.Is(err, models.ErrUserNotFound) {
		s.logger.Warn().Str("user_id", userID.String()).Msg("user not found")
		metrics.NotFoundTotal.WithLabelValues("user", "get").Inc()
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("user_id", userID.String()).Msg("retrieved user")
	metrics.OperationsTotal.WithLabelValues("user", "get").Inc()
	return user, nil
}

// GetAllUsers returns every user in the store. Intended for demo-scale
// data; there is no pagination.
func (s *DefaultService) GetAllUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Int("count", len(users)).Msg("retrieved users")
	metrics.OperationsTotal.WithLabelValues("user", "list").Inc()
	return users, nil
}

// DeleteUser removes the user; the store cascades the delete to the user's
// notes and their photos. A missing user is a logged no-op.
func (s *DefaultService) DeleteUser(ctx context.Context, userID uuid.UUID) error {
	err := s.repo.Delete(ctx, userID)
	if errors.Is(err, models.ErrUserNotFound) {
		s.logger.Warn().Str("user_id", userID.String()).Msg("attempted to delete user, but user was not found")
		metrics.NotFoundTotal.WithLabelValues("user", "delete").Inc()
		return nil
	}
	if err != nil {
		return err
	}
	s.logger.Info().Str("user_id", userID.String()).Msg("deleted user")
	metrics.OperationsTotal.WithLabelValues("user", "delete").Inc()
	return nil
}
