package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseFileKind(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		expected      FileKind
		expectedError bool
	}{
		{
			name:     "document",
			input:    "document",
			expected: KindDocument,
		},
		{
			name:     "photo",
			input:    "photo",
			expected: KindPhoto,
		},
		{
			name:          "unknown kind",
			input:         "video",
			expectedError: true,
		},
		{
			name:          "empty string",
			input:         "",
			expectedError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, err := ParseFileKind(tt.input)

			if tt.expectedError {
				assert.ErrorIs(t, err, ErrInvalidSelection)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, kind)
			}
		})
	}
}

func TestValidDocumentName(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		expected bool
	}{
		{
			name:     "pdf allowed",
			filename: "report.pdf",
			expected: true,
		},
		{
			name:     "docx allowed",
			filename: "letter.docx",
			expected: true,
		},
		{
			name:     "uppercase extension allowed",
			filename: "REPORT.PDF",
			expected: true,
		},
		{
			name:     "image rejected",
			filename: "image.png",
			expected: false,
		},
		{
			name:     "no extension rejected",
			filename: "noext",
			expected: false,
		},
		{
			name:     "extension only in the middle",
			filename: "report.pdf.exe",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ValidDocumentName(tt.filename))
		})
	}
}

func TestFileKind_Display(t *testing.T) {
	assert.Equal(t, "Document", KindDocument.Display())
	assert.Equal(t, "Photo", KindPhoto.Display())
}

func TestAllowedDocExtensions(t *testing.T) {
	exts := AllowedDocExtensions()
	assert.Equal(t, []string{".doc", ".docx", ".pdf", ".xlsx"}, exts)
}
