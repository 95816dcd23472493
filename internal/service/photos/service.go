package photos

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
	repo   repositories.PhotoRepository
	logger zerolog.Logger
}

func NewDefaultService(repo repositories.PhotoRepository, logger zerolog.Logger) *DefaultService {
	return &DefaultService{repo: repo, logger: logger}
}

// CreatePhoto persists a photo tied to the given note. The note id is not
// pre-checked; the store's foreign key constraint rejects dangling ones.
func (s *DefaultService) CreatePhoto(ctx context.Context, input CreatePhotoInput) (*models.Photo, error) {
	photo := &models.Photo{
		NoteID: input.NoteID,
		Url:    input.Url,
	}
	if err := s.repo.Create(ctx, photo); err != nil {
		return nil, err
	}
	s.logger.Info().
		Str("photo_id", photo.Uid.String()).
		Str("note_id", input.NoteID.String()).
		Msg("created photo")
	metrics.OperationsTotal.WithLabelValues("photo", "create").Inc()
	return photo, nil
}

func (s *DefaultService) GetPhotosByNote(ctx context.Context, noteID uuid.UUID) ([]models.Photo, error) {
	photos, err := s.repo.GetByNote(ctx, noteID)
	if err != nil {
		return nil, err
	}
	s.logger.Info().
		Int("count", len(photos)).
		Str("note_id", noteID.String()).
		Msg("retrieved photos for note")
	metrics.OperationsTotal.WithLabelValues("photo", "list").Inc()
	return photos, nil
}

func (s *DefaultService) GetPhotoByID(ctx context.Context, photoID uuid.UUID) (*models.Photo, error) {
	photo, err := s.repo.GetByID(ctx, photoID)
	if errors.Is(err, models.ErrPhotoNotFound) {
		s.logger.Warn().Str("photo_id", photoID.String()).Msg("photo not found")
		metrics.NotFoundTotal.WithLabelValues("photo", "get").Inc()
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("photo_id", photoID.String()).Msg("retrieved photo")
	metrics.OperationsTotal.WithLabelValues("photo", "get").Inc()
	return photo, nil
}

// DeletePhoto is idempotent: deleting a missing photo logs a warning and
// returns normally.
func (s *DefaultService) DeletePhoto(ctx context.Context, photoID uuid.UUID) error {
	err := s.repo.Delete(ctx, photoID)
	if errors.Is(err, models.ErrPhotoNotFound) {
		s.logger.Warn().Str("photo_id", photoID.String()).Msg("photo not found for deletion")
		metrics.NotFoundTotal.WithLabelValues("photo", "delete").Inc()
		return nil
	}
	if err != nil {
		return err
	}
	s.logger.Info().Str("photo_id", photoID.String()).Msg("deleted photo")
	metrics.OperationsTotal.WithLabelValues("photo", "delete").Inc()
	return nil
}
