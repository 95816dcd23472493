package models

import "errors"

// Not-found sentinels. Reads return these to distinguish "no such record"
// from a record whose optional fields happen to be empty.
var (
	ErrUserNotFound  = errors.New("user not found")
	ErrNoteNotFound  = errors.New("note not found")
	ErrPhotoNotFound = errors.New("photo not found")
)
