package notes

import (
	"context"
	"notesapi/internal/database/models"

	"github.com/google/uuid"
)

type (
	Service interface {
		GetNotesByUser(ctx context.Context, userID uuid.UUID) ([]models.Note, error)
		GetNoteByID(ctx context.Context, noteID uuid.UUID) (*models.Note, error)
		CreateNote(ctx context.Context, input CreateNoteInput) (*models.Note, error)
		UpdateNote(ctx context.Context, noteID uuid.UUID, input UpdateNoteInput) error
		DeleteNote(ctx context.Context, noteID uuid.UUID) error
	}

	CreateNoteInput struct {
		Title  string
		Text   *string
		Marked bool
		UserID uuid.UUID
	}

	UpdateNoteInput struct {
		Title  string
		Text   *string
		Marked bool
	}
)
