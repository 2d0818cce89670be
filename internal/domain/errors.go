package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateClaimID   = errors.New("claim id already exists")
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrNotNoteOwner       = errors.New("note belongs to another user")
)
