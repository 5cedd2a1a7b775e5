package postgres

import (
	"database/sql"

	"filevault/internal/domain"
)

// FileRepo implements repository.FileRepository
type FileRepo struct {
	db *sql.DB
}

// NewFileRepo creates a new stored file repository
func NewFileRepo(db *sql.DB) *FileRepo {
	return &FileRepo{db: db}
}

// SaveFile inserts a file record and returns its id
func (r *FileRepo) SaveFile(userID int64, path, originalName string, kind domain.FileKind) (int, error) {
	var id int
	query := `
		INSERT INTO storage (user_id, file_path, original_filename, file_type)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRow(query, userID, path, originalName, string(kind)).Scan(&id)
	return id, err
}

// FilesByOwner returns all files of a user, newest first
func (r *FileRepo) FilesByOwner(userID int64) ([]domain.StoredFile, error) {
	query := `
		SELECT id, user_id, file_path, original_filename, file_type, uploaded_at
		FROM storage
		WHERE user_id = $1
		ORDER BY uploaded_at DESC
	`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var files []domain.StoredFile
	for rows.Next() {
		var f domain.StoredFile
		if err := rows.Scan(&f.ID, &f.UserID, &f.FilePath, &f.OriginalFilename, &f.Kind, &f.UploadedAt); err != nil {
			return nil, err
		}
		files = append(files, f)
	}

	return files, rows.Err()
}

// FileByOwner returns a file only if it belongs to the user, nil otherwise
func (r *FileRepo) FileByOwner(userID int64, fileID int) (*domain.StoredFile, error) {
	var f domain.StoredFile
	query := `
		SELECT id, user_id, file_path, original_filename, file_type, uploaded_at
		FROM storage
		WHERE id = $1 AND user_id = $2
	`
	err := r.db.QueryRow(query, fileID, userID).Scan(
		&f.ID, &f.UserID, &f.FilePath, &f.OriginalFilename, &f.Kind, &f.UploadedAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &f, nil
}

// DeleteFile removes a file record scoped to its owner
func (r *FileRepo) DeleteFile(userID int64, fileID int) error {
	query := `DELETE FROM storage WHERE id = $1 AND user_id = $2`
	_, err := r.db.Exec(query, fileID, userID)
	return err
}
