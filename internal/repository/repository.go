package repository

import (
	"filevault/internal/domain"
)

// UserRepository defines user data operations
type UserRepository interface {
	GetUser(userID int64) (*domain.User, error)
	CreateUser(userID int64, username string) error
	IsAuthorized(userID int64) (bool, error)
	SetAuthorized(userID int64, authorized bool) error
}

// KeyRepository defines single-use authorization key operations
type KeyRepository interface {
	Redeem(userID int64, key string) error
	CountKeys() (int, error)
	InsertKeys(keys []string) error
}

// FileRepository defines stored file metadata operations
type FileRepository interface {
	SaveFile(userID int64, path, originalName string, kind domain.FileKind) (int, error)
	FilesByOwner(userID int64) ([]domain.StoredFile, error)
	FileByOwner(userID int64, fileID int) (*domain.StoredFile, error)
	DeleteFile(userID int64, fileID int) error
}

// AuditRepository defines append-only action log operations
type AuditRepository interface {
	Append(userID int64, action string) error
}
