package postgres

import (
	"database/sql"
	"fmt"

	"filevault/internal/domain"
)

// KeyRepo implements repository.KeyRepository
type KeyRepo struct {
	db *sql.DB
}

// NewKeyRepo creates a new authorization key repository
func NewKeyRepo(db *sql.DB) *KeyRepo {
	return &KeyRepo{db: db}
}

// Redeem consumes an unused key and marks the user authorized in one
// transaction. The claim query is an atomic compare-and-set, so two
// concurrent redemptions of the same key cannot both succeed.
func (r *KeyRepo) Redeem(userID int64, key string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var keyID int
	claim := `UPDATE auth_keys SET used = TRUE WHERE auth_key = $1 AND used = FALSE RETURNING id`
	err = tx.QueryRow(claim, key).Scan(&keyID)

	if err == sql.ErrNoRows {
		// Absent and already-used keys are indistinguishable to the caller
		return domain.ErrInvalidKey
	}
	if err != nil {
		return err
	}

	res, err := tx.Exec(`UPDATE users SET authorized = TRUE WHERE user_id = $1`, userID)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// Unregistered user: roll back so the key is not consumed for nobody
		return fmt.Errorf("cannot authorize unregistered user %d", userID)
	}

	return tx.Commit()
}

// CountKeys returns the total number of keys in the store
func (r *KeyRepo) CountKeys() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM auth_keys`).Scan(&count)
	return count, err
}

// InsertKeys adds new unused keys
func (r *KeyRepo) InsertKeys(keys []string) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, key := range keys {
		if _, err := tx.Exec(`INSERT INTO auth_keys (auth_key) VALUES ($1)`, key); err != nil {
			return err
		}
	}

	return tx.Commit()
}
