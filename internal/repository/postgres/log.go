package postgres

import (
	"database/sql"
)

// LogRepo implements repository.AuditRepository
type LogRepo struct {
	db *sql.DB
}

// NewLogRepo creates a new audit log repository
func NewLogRepo(db *sql.DB) *LogRepo {
	return &LogRepo{db: db}
}

// Append inserts one action record
func (r *LogRepo) Append(userID int64, action string) error {
	query := `INSERT INTO logs (user_id, action) VALUES ($1, $2)`
	_, err := r.db.Exec(query, userID, action)
	return err
}
