package photos

import (
	"context"
	"notesapi/internal/database/models"

	"github.com/google/uuid"
)

type (
	Service interface {
		CreatePhoto(ctx context.Context, input CreatePhotoInput) (*models.Photo, error)
		GetPhotosByNote(ctx context.Context, noteID uuid.UUID) ([]models.Photo, error)
		GetPhotoByID(ctx context.Context, photoID uuid.UUID) (*models.Photo, error)
		DeletePhoto(ctx context.Context, photoID uuid.UUID) error
	}

	CreatePhotoInput struct {
		NoteID uuid.UUID
		Url    string
	}
)
