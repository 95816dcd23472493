package repositories

import (
	"context"
	"errors"
	"fmt"
	"notesapi/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PhotoRepository interface {
	Create(ctx context.Context, photo *models.Photo) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Photo, error)
	GetByNote(ctx context.Context, noteID uuid.UUID) ([]models.Photo, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type photoRepository struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) PhotoRepository {
	return &photoRepository{db: db}
}

func (r *photoRepository) Create(ctx context.Context, photo *models.Photo) error {
	if err := r.db.WithContext(ctx).Create(photo).Error; err != nil {
		return fmt.Errorf("error creating photo: %w", err)
	}
	return nil
}

func (r *photoRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Photo, error) {
	photo := models.Photo{}
	err := r.db.WithContext(ctx).First(&photo, "uid = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.ErrPhotoNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error getting photo: %w", err)
	}
	return &photo, nil
}

func (r *photoRepository) GetByNote(ctx context.Context, noteID uuid.UUID) ([]models.Photo, error) {
	var photos []models.Photo
	err := r.db.WithContext(ctx).
		Where("note_id = ?", noteID).
		Find(&photos).Error
	if err != nil {
		return nil, fmt.Errorf("error querying photos: %w", err)
	}
	return photos, nil
}

func (r *photoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Photo{}, "uid = ?", id)
	if result.Error != nil {
		return fmt.Errorf("error deleting photo: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return models.ErrPhotoNotFound
	}
	return nil
}
