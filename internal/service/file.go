package service

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"filevault/internal/domain"
	"filevault/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// FileStore abstracts the on-disk file tree
type FileStore interface {
	Save(userID int64, filename string, src io.Reader) (string, error)
	Remove(path string) error
}

// FileService handles upload validation, disk writes and metadata records
type FileService struct {
	fileRepo repository.FileRepository
	store    FileStore
	logger   *zap.Logger
}

// NewFileService creates a new file service
func NewFileService(fileRepo repository.FileRepository, store FileStore, logger *zap.Logger) *FileService {
	return &FileService{
		fileRepo: fileRepo,
		store:    store,
		logger:   logger,
	}
}

// StoreDocument validates the extension, writes the file to the owner's
// directory and records its metadata.
// Returns domain.ErrUnsupportedFileType on an extension outside the allow-list.
func (s *FileService) StoreDocument(userID int64, originalName string, src io.Reader) (*domain.StoredFile, error) {
	if !domain.ValidDocumentName(originalName) {
		return nil, domain.ErrUnsupportedFileType
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	diskName := uuid.NewString() + ext

	return s.save(userID, diskName, originalName, domain.KindDocument, src)
}

// StorePhoto writes a photo upload. Photos come typed by the transport,
// so there is no extension check.
func (s *FileService) StorePhoto(userID int64, src io.Reader) (*domain.StoredFile, error) {
	diskName := "photo_" + uuid.NewString() + ".jpg"
	return s.save(userID, diskName, diskName, domain.KindPhoto, src)
}

func (s *FileService) save(userID int64, diskName, originalName string, kind domain.FileKind, src io.Reader) (*domain.StoredFile, error) {
	path, err := s.store.Save(userID, diskName, src)
	if err != nil {
		return nil, fmt.Errorf("failed to save file to disk: %w", err)
	}

	id, err := s.fileRepo.SaveFile(userID, path, originalName, kind)
	if err != nil {
		// Keep record and disk object consistent: no orphan files
		if rmErr := s.store.Remove(path); rmErr != nil {
			s.logger.Error("Failed to remove orphan file after record insert failed",
				zap.String("path", path),
				zap.Error(rmErr),
			)
		}
		return nil, fmt.Errorf("failed to save file record: %w", err)
	}

	return &domain.StoredFile{
		ID:               id,
		UserID:           userID,
		FilePath:         path,
		OriginalFilename: originalName,
		Kind:             kind,
	}, nil
}

// ListFiles returns the owner's files, newest first
func (s *FileService) ListFiles(userID int64) ([]domain.StoredFile, error) {
	return s.fileRepo.FilesByOwner(userID)
}

// DeleteFile removes the disk object first, then the record.
// Returns domain.ErrNotFound when the file doesn't exist or belongs to
// someone else, and domain.ErrDeleteFailed when the disk removal fails
// (the record is retained so no half-deleted state is visible).
func (s *FileService) DeleteFile(userID int64, fileID int) error {
	file, err := s.fileRepo.FileByOwner(userID, fileID)
	if err != nil {
		return err
	}
	if file == nil {
		return domain.ErrNotFound
	}

	if err := s.store.Remove(file.FilePath); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDeleteFailed, err)
	}

	if err := s.fileRepo.DeleteFile(userID, fileID); err != nil {
		// Disk object is gone but the record survived; surface it loudly
		s.logger.Error("File removed from disk but record deletion failed",
			zap.Int64("user_id", userID),
			zap.Int("file_id", fileID),
			zap.Error(err),
		)
		return err
	}

	return nil
}
