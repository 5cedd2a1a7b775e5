package domain

import "errors"

var (
	// auth errors
	ErrInvalidKey    = errors.New("invalid or already used authorization key")
	ErrNotAuthorized = errors.New("user is not authorized")

	// upload flow errors
	ErrUnexpectedInput     = errors.New("unexpected input for current state")
	ErrInvalidSelection    = errors.New("invalid file type selection")
	ErrUnsupportedFileType = errors.New("unsupported file type")

	// file errors
	ErrNotFound     = errors.New("file not found")
	ErrDeleteFailed = errors.New("failed to delete file from disk")
)
