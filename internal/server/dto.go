package server

import (
	"time"

	"notesapi/internal/database/models"
	"notesapi/internal/service/notes"
	"notesapi/internal/service/photos"

	"github.com/google/uuid"
)

// Wire DTOs and their mapping functions. The conversions are deliberate,
// hand-written field copies; there is no reflective mapper in between.

type NoteCreateRequest struct {
	Title  string    `json:"title"`
	Text   *string   `json:"text"`
	Marked bool      `json:"marked"`
	UserID uuid.UUID `json:"userId"`
}

type NoteUpdateRequest struct {
	Title  string  `json:"title"`
	Text   *string `json:"text"`
	Marked bool    `json:"marked"`
}

type NoteResponse struct {
	Uid        uuid.UUID       `json:"uid"`
	Title      string          `json:"title"`
	Text       *string         `json:"text"`
	DateChange time.Time       `json:"dateChange"`
	Marked     bool            `json:"marked"`
	UserID     uuid.UUID       `json:"userId"`
	Photos     []PhotoResponse `json:"photos"`
}

type PhotoCreateRequest struct {
	NoteID uuid.UUID `json:"noteId"`
	Url    string    `json:"url"`
}

type PhotoResponse struct {
	Uid    uuid.UUID `json:"uid"`
	NoteID uuid.UUID `json:"noteId"`
	Url    string    `json:"url"`
}

type UserResponse struct {
	Uid   uuid.UUID      `json:"uid"`
	Notes []NoteResponse `json:"notes"`
}

func (r NoteCreateRequest) toInput() notes.CreateNoteInput {
	return notes.CreateNoteInput{
		Title:  r.Title,
		Text:   r.Text,
		Marked: r.Marked,
		UserID: r.UserID,
	}
}

func (r NoteUpdateRequest) toInput() notes.UpdateNoteInput {
	return notes.UpdateNoteInput{
		Title:  r.Title,
		Text:   r.Text,
		Marked: r.Marked,
	}
}

func (r PhotoCreateRequest) toInput() photos.CreatePhotoInput {
	return photos.CreatePhotoInput{
		NoteID: r.NoteID,
		Url:    r.Url,
	}
}

func toPhotoResponse(p models.Photo) PhotoResponse {
	return PhotoResponse{
		Uid:    p.Uid,
		NoteID: p.NoteID,
		Url:    p.Url,
	}
}

func toPhotoResponses(photos []models.Photo) []PhotoResponse {
	responses := make([]PhotoResponse, 0, len(photos))
	for _, p := range photos {
		responses = append(responses, toPhotoResponse(p))
	}
	return responses
}

func toNoteResponse(n models.Note) NoteResponse {
	return NoteResponse{
		Uid:        n.Uid,
		Title:      n.Title,
		Text:       n.Text,
		DateChange: n.DateChange,
		Marked:     n.Marked,
		UserID:     n.UserID,
		Photos:     toPhotoResponses(n.Photos),
	}
}

func toNoteResponses(notes []models.Note) []NoteResponse {
	responses := make([]NoteResponse, 0, len(notes))
	for _, n := range notes {
		responses = append(responses, toNoteResponse(n))
	}
	return responses
}

func toUserResponse(u models.User) UserResponse {
	return UserResponse{
		Uid:   u.Uid,
		Notes: toNoteResponses(u.Notes),
	}
}

func toUserResponses(users []models.User) []UserResponse {
	responses := make([]UserResponse, 0, len(users))
	for _, u := range users {
		responses = append(responses, toUserResponse(u))
	}
	return responses
}
