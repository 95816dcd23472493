package users

import (
	"context"
	"testing"

	"notesapi/internal/database/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUserRepository struct {
	users map[uuid.UUID]*models.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: map[uuid.UUID]*models.User{}}
}

func (f *fakeUserRepository) Create(ctx context.Context, user *models.User) error {
	if user.Uid == uuid.Nil {
		user.Uid = uuid.New()
	}
	stored := *user
	f.users[user.Uid] = &stored
	return nil
}

func (f *fakeUserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepository) GetAll(ctx context.Context) ([]models.User, error) {
	var out []models.User
	for _, user := range f.users {
		out = append(out, *user)
	}
	return out, nil
}

func (f *fakeUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.users[id]; !ok {
		return models.ErrUserNotFound
	}
	delete(f.users, id)
	return nil
}

func TestCreateUserTakesNoInput(t *testing.T) {
	serv := NewDefaultService(newFakeUserRepository(), zerolog.Nop())

	user, err := serv.CreateUser(context.Background())

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, user.Uid)
	assert.NotNil(t, user.Notes)
	assert.Empty(t, user.Notes)
}

func TestGetUserByIDNotFound(t *testing.T) {
	serv := NewDefaultService(newFakeUserRepository(), zerolog.Nop())

	user, err := serv.GetUserByID(context.Background(), uuid.New())

	assert.Nil(t, user)
	assert.ErrorIs(t, err, models.ErrUserNotFound)
}

func TestGetAllUsers(t *testing.T) {
	serv := NewDefaultService(newFakeUserRepository(), zerolog.Nop())
	for i := 0; i < 3; i++ {
		_, err := serv.CreateUser(context.Background())
		require.NoError(t, err)
	}

	all, err := serv.GetAllUsers(context.Background())

	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestDeleteUserIsIdempotent(t *testing.T) {
	serv := NewDefaultService(newFakeUserRepository(), zerolog.Nop())
	user, err := serv.CreateUser(context.Background())
	require.NoError(t, err)

	require.NoError(t, serv.DeleteUser(context.Background(), user.Uid))
	require.NoError(t, serv.DeleteUser(context.Background(), user.Uid))
}
