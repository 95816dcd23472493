package server

import (
	"testing"
	"time"

	"notesapi/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestToNoteResponseCopiesAllFields(t *testing.T) {
	text := "body"
	note := models.Note{
		Uid:        uuid.New(),
		Title:      "title",
		Text:       &text,
		DateChange: time.Now().UTC(),
		Marked:     true,
		UserID:     uuid.New(),
		Photos: []models.Photo{
			{Uid: uuid.New(), Url: "https://example.com/p.jpg"},
		},
	}

	resp := toNoteResponse(note)

	assert.Equal(t, note.Uid, resp.Uid)
	assert.Equal(t, note.Title, resp.Title)
	assert.Equal(t, note.Text, resp.Text)
	assert.Equal(t, note.DateChange, resp.DateChange)
	assert.Equal(t, note.Marked, resp.Marked)
	assert.Equal(t, note.UserID, resp.UserID)
	assert.Len(t, resp.Photos, 1)
	assert.Equal(t, note.Photos[0].Url, resp.Photos[0].Url)
}

// Responses serialize empty collections as [], never null.
func TestResponsesUseEmptySlicesNotNil(t *testing.T) {
	assert.NotNil(t, toNoteResponse(models.Note{}).Photos)
	assert.NotNil(t, toUserResponse(models.User{}).Notes)
	assert.NotNil(t, toNoteResponses(nil))
	assert.NotNil(t, toPhotoResponses(nil))
	assert.NotNil(t, toUserResponses(nil))
}
