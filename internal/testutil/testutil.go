package testutil

import (
	"time"

	"filevault/internal/domain"

	"go.uber.org/zap"
)

// NewTestLogger creates a no-op logger for tests
func NewTestLogger() *zap.Logger {
	return zap.NewNop()
}

// NewTestUser creates a test user
func NewTestUser(userID int64, authorized bool) *domain.User {
	return &domain.User{
		UserID:       userID,
		Username:     "tester",
		RegisteredAt: time.Now(),
		Authorized:   authorized,
	}
}

// NewTestFile creates a test stored file
func NewTestFile(id int, userID int64, path string, kind domain.FileKind) *domain.StoredFile {
	name := "report.pdf"
	if kind == domain.KindPhoto {
		name = "photo.jpg"
	}
	return &domain.StoredFile{
		ID:               id,
		UserID:           userID,
		FilePath:         path,
		OriginalFilename: name,
		Kind:             kind,
		UploadedAt:       time.Now(),
	}
}
