package photos

import (
	"context"
	"testing"

	"notesapi/internal/database/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePhotoRepository struct {
	photos map[uuid.UUID]*models.Photo
}

func newFakePhotoRepository() *fakePhotoRepository {
	return &fakePhotoRepository{photos: map[uuid.UUID]*models.Photo{}}
}

func (f *fakePhotoRepository) Create(ctx context.Context, photo *models.Photo) error {
	if photo.Uid == uuid.Nil {
		photo.Uid = uuid.New()
	}
	stored := *photo
	f.photos[photo.Uid] = &stored
	return nil
}

func (f *fakePhotoRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Photo, error) {
	photo, ok := f.photos[id]
	if !ok {
		return nil, models.ErrPhotoNotFound
	}
	copied := *photo
	return &copied, nil
}

func (f *fakePhotoRepository) GetByNote(ctx context.Context, noteID uuid.UUID) ([]models.Photo, error) {
	var out []models.Photo
	for _, photo := range f.photos {
		if photo.NoteID == noteID {
			out = append(out, *photo)
		}
	}
	return out, nil
}

func (f *fakePhotoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := f.photos[id]; !ok {
		return models.ErrPhotoNotFound
	}
	delete(f.photos, id)
	return nil
}

func TestCreatePhotoRoundTrip(t *testing.T) {
	serv := NewDefaultService(newFakePhotoRepository(), zerolog.Nop())
	noteID := uuid.New()

	created, err := serv.CreatePhoto(context.Background(), CreatePhotoInput{
		NoteID: noteID,
		Url:    "https://example.com/p.jpg",
	})
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, created.Uid)

	fetched, err := serv.GetPhotoByID(context.Background(), created.Uid)
	require.NoError(t, err)
	assert.Equal(t, noteID, fetched.NoteID)
	assert.Equal(t, "https://example.com/p.jpg", fetched.Url)
}

func TestGetPhotoByIDNotFound(t *testing.T) {
	serv := NewDefaultService(newFakePhotoRepository(), zerolog.Nop())

	photo, err := serv.GetPhotoByID(context.Background(), uuid.New())

	assert.Nil(t, photo)
	assert.ErrorIs(t, err, models.ErrPhotoNotFound)
}

func TestGetPhotosByNoteFilters(t *testing.T) {
	serv := NewDefaultService(newFakePhotoRepository(), zerolog.Nop())
	noteID := uuid.New()
	for i := 0; i < 2; i++ {
		_, err := serv.CreatePhoto(context.Background(), CreatePhotoInput{NoteID: noteID, Url: "u"})
		require.NoError(t, err)
	}
	_, err := serv.CreatePhoto(context.Background(), CreatePhotoInput{NoteID: uuid.New(), Url: "u"})
	require.NoError(t, err)

	photos, err := serv.GetPhotosByNote(context.Background(), noteID)

	require.NoError(t, err)
	assert.Len(t, photos, 2)
}

func TestDeletePhotoIsIdempotent(t *testing.T) {
	serv := NewDefaultService(newFakePhotoRepository(), zerolog.Nop())
	created, err := serv.CreatePhoto(context.Background(), CreatePhotoInput{NoteID: uuid.New(), Url: "u"})
	require.NoError(t, err)

	require.NoError(t, serv.DeletePhoto(context.Background(), created.Uid))
	require.NoError(t, serv.DeletePhoto(context.Background(), created.Uid))
}
