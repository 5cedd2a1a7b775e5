package postgres

import (
	"database/sql"

	"filevault/internal/domain"
)

// UserRepo implements repository.UserRepository
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo creates a new user repository
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// GetUser returns the user record, or nil if the user is not registered
func (r *UserRepo) GetUser(userID int64) (*domain.User, error) {
	var u domain.User
	var username sql.NullString
	query := `SELECT id, user_id, username, registered_at, authorized FROM users WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&u.ID, &u.UserID, &username, &u.RegisteredAt, &u.Authorized)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	if username.Valid {
		u.Username = username.String
	}

	return &u, nil
}

// CreateUser registers a user if not already registered
func (r *UserRepo) CreateUser(userID int64, username string) error {
	query := `
		INSERT INTO users (user_id, username, authorized)
		VALUES ($1, $2, FALSE)
		ON CONFLICT (user_id) DO NOTHING
	`
	_, err := r.db.Exec(query, userID, username)
	return err
}

// IsAuthorized checks if user is authorized
func (r *UserRepo) IsAuthorized(userID int64) (bool, error) {
	var authorized bool
	query := `SELECT authorized FROM users WHERE user_id = $1`
	err := r.db.QueryRow(query, userID).Scan(&authorized)

	if err == sql.ErrNoRows {
		// User doesn't exist yet
		return false, nil
	}
	if err != nil {
		return false, err
	}

	return authorized, nil
}

// SetAuthorized updates the authorization flag
func (r *UserRepo) SetAuthorized(userID int64, authorized bool) error {
	query := `UPDATE users SET authorized = $1 WHERE user_id = $2`
	_, err := r.db.Exec(query, authorized, userID)
	return err
}
