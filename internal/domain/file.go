package domain

import (
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// FileKind distinguishes the two supported upload types
type FileKind string

const (
	KindDocument FileKind = "document"
	KindPhoto    FileKind = "photo"
)

// ParseFileKind converts raw callback data into a FileKind
func ParseFileKind(s string) (FileKind, error) {
	switch FileKind(s) {
	case KindDocument:
		return KindDocument, nil
	case KindPhoto:
		return KindPhoto, nil
	default:
		return "", ErrInvalidSelection
	}
}

// Display returns user-friendly kind name
func (k FileKind) Display() string {
	if k == KindPhoto {
		return "Photo"
	}
	return "Document"
}

// allowedDocExtensions is the static allow-list for document uploads.
// Photos come typed by the transport and bypass this check.
var allowedDocExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".xlsx": true,
}

// ValidDocumentName reports whether filename carries an allowed document extension
func ValidDocumentName(filename string) bool {
	return allowedDocExtensions[strings.ToLower(filepath.Ext(filename))]
}

// AllowedDocExtensions returns the allow-list sorted for display
func AllowedDocExtensions() []string {
	exts := make([]string, 0, len(allowedDocExtensions))
	for ext := range allowedDocExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// StoredFile pairs a storage table row with a disk-resident file
type StoredFile struct {
	ID               int
	UserID           int64
	FilePath         string
	OriginalFilename string
	Kind             FileKind
	UploadedAt       time.Time
}

// LogEntry is an append-only record of a user action
type LogEntry struct {
	ID        int
	UserID    int64
	Action    string
	CreatedAt time.Time
}
