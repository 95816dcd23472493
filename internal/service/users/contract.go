package users

import (
	"context"
	"notesapi/internal/database/models"

	"github.com/google/uuid"
)

type (
	Service interface {
		CreateUser(ctx context.Context) (*models.User, error)
		GetUserByID(ctx context.Context, userID uuid.UUID) (*models.User, error)
		GetAllUsers(ctx context.Context) ([]models.User, error)
		DeleteUser(ctx context.Context, userID uuid.UUID) error
	}
)
