package notes

import (
	"context"
	"errors"
	"time"

	"notesapi/internal/database/models"
	"notesapi/internal/database/repositories"
	"notesapi/internal/metrics"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// DefaultService holds no state between calls; every operation is a single
// round trip through the repository.
type DefaultService struct {
	repo   repositories.NoteRepository
	logger zerolog.Logger
}

func NewDefaultService(repo repositories.NoteRepository, logger zerolog.Logger) *DefaultService {
	return &DefaultService{repo: repo, logger: logger}
}

// GetNotesByUser returns every note owned by the user, photos included.
// A user with no notes, or no such user at all, both yield an empty list.
func (s *DefaultService) GetNotesByUser(ctx context.Context, userID uuid.UUID) ([]models.Note, error) {
	notes, err := s.repo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	s.logger.Info().
		Int("count", len(notes)).
		Str("user_id", userID.String()).
		Msg("retrieved notes for user")
	metrics.OperationsTotal.WithLabelValues("note", "list").Inc()
	return notes, nil
}

func (s *DefaultService) GetNoteByID(ctx context.Context, noteID uuid.UUID) (*models.Note, error) {
	note, err := s.repo.GetByID(ctx, noteID)
	if errors.Is(err, models.ErrNoteNotFound) {
		s.logger.Warn().Str("note_id", noteID.String()).Msg("note not found")
		metrics.NotFoundTotal.WithLabelValues("note", "get").Inc()
		return nil, err
	}
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("note_id", noteID.String()).Msg("retrieved note")
	metrics.OperationsTotal.WithLabelValues("note", "get").Inc()
	return note, nil
}

// CreateNote persists a new note with a fresh identifier and a
// server-assigned DateChange. The owner id is not pre-checked; a dangling
// reference is rejected by the store's foreign key constraint.
func (s *DefaultService) CreateNote(ctx context.Context, input CreateNoteInput) (*models.Note, error) {
	note := &models.Note{
		Title:      input.Title,
		Text:       input.Text,
		Marked:     input.Marked,
		UserID:     input.UserID,
		DateChange: time.Now().UTC(),
		Photos:     []models.Photo{},
	}
	if err := s.repo.Create(ctx, note); err != nil {
		return nil, err
	}
	s.logger.Info().
		Str("note_id", note.Uid.String()).
		Str("user_id", input.UserID.String()).
		Msg("created note")
	metrics.OperationsTotal.WithLabelValues("note", "create").Inc()
	return note, nil
}

// UpdateNote overwrites title, text and marked and refreshes DateChange.
// The note is loaded with its photos so the association survives the full
// row rewrite. A missing note is a logged no-op, not an error.
func (s *DefaultService) UpdateNote(ctx context.Context, noteID uuid.UUID, input UpdateNoteInput) error {
	note, err := s.repo.GetByID(ctx, noteID)
	if errors.Is(err, models.ErrNoteNotFound) {
		s.logger.Warn().Str("note_id", noteID.String()).Msg("note not found for update")
		metrics.NotFoundTotal.WithLabelValues("note", "update").Inc()
		return nil
	}
	if err != nil {
		return err
	}

	note.Title = input.Title
	note.Text = input.Text
	note.Marked = input.Marked
	note.DateChange = time.Now().UTC()

	if err := s.repo.Update(ctx, note); err != nil {
		return err
	}
	s.logger.Info().Str("note_id", noteID.String()).Msg("updated note")
	metrics.OperationsTotal.WithLabelValues("note", "update").Inc()
	return nil
}

// DeleteNote removes the note and, through the store cascade, its photos.
// Deleting a missing note is a logged no-op, so the call is idempotent.
func (s *DefaultService) DeleteNote(ctx context.Context, noteID uuid.UUID) error {
	err := s.repo.Delete(ctx, noteID)
	if errors.Is(err, models.ErrNoteNotFound) {
		s.logger.Warn().Str("note_id", noteID.String()).Msg("note not found for deletion")
		metrics.NotFoundTotal.WithLabelValues("note", "delete").Inc()
		return nil
	}
	if err != nil {
		return err
	}
	s.logger.Info().Str("note_id", noteID.String()).Msg("deleted note")
	metrics.OperationsTotal.WithLabelValues("note", "delete").Inc()
	return nil
}
