package repositories

import (
	"context"
	"errors"
	"fmt"
	"notesapi/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type NoteRepository interface {
	Create(ctx context.Context, note *models.Note) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Note, error)
	GetByUser(ctx context.Context, userID uuid.UUID) ([]models.Note, error)
	Update(ctx context.Context, note *models.Note) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type noteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) NoteRepository {
	return &noteRepository{db: db}
}

func (r *noteRepository) Create(ctx context.Context, note *models.Note) error {
	if err := r.db.WithContext(ctx).Create(note).Error; err != nil {
		return fmt.Errorf("error creating note: %w", err)
	}
	return nil
}

// GetByID loads the note together with its photos in a single logical
// operation, so callers never trigger a second lazy fetch.
func (r *noteRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Note, error) {
	note := models.Note{}
	err := r.db.WithContext(ctx).
		Preload("Photos").
		First(&note, "uid = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrNoteNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error getting note: %w", err)
	}
	return &note, nil
}

func (r *noteRepository) GetByUser(ctx context.Context, userID uuid.UUID) ([]models.Note, error) {
	var notes []models.Note
	err := r.db.WithContext(ctx).
		Preload("Photos").
		Where("user_id = ?", userID).
		Find(&notes).Error
	if err != nil {
		return nil, fmt.Errorf("error querying notes: %w", err)
	}
	return notes, nil
}

// Update writes every column of the note back. Two concurrent updates to
// the same note interleave last-write-wins; there is no version check.
func (r *noteRepository) Update(ctx context.Context, note *models.Note) error {
	if err := r.db.WithContext(ctx).Save(note).Error; err != nil {
		return fmt.Errorf("error updating note: %w", err)
	}
	return nil
}

func (r *noteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Note{}, "uid = ?", id)
	if result.Error != nil {
		return fmt.Errorf("error deleting note: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return models.ErrNoteNotFound
	}
	return nil
}
