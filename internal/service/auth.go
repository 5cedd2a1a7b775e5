package service

import (
	"filevault/internal/domain"
	"filevault/internal/repository"
)

// testKeys are seeded only when the seed flag is set and the store is empty.
// Operational convenience for local runs, not a security mechanism.
var testKeys = []string{"key123", "secretkey", "auth777"}

// AuthService handles registration and single-use key authorization
type AuthService struct {
	userRepo repository.UserRepository
	keyRepo  repository.KeyRepository
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repository.UserRepository, keyRepo repository.KeyRepository) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		keyRepo:  keyRepo,
	}
}

// GetUser returns the user record, nil if not registered
func (s *AuthService) GetUser(userID int64) (*domain.User, error) {
	return s.userRepo.GetUser(userID)
}

// RegisterUser creates the user record if it doesn't exist yet
func (s *AuthService) RegisterUser(userID int64, username string) error {
	return s.userRepo.CreateUser(userID, username)
}

// IsAuthorized checks if user is authorized
func (s *AuthService) IsAuthorized(userID int64) (bool, error) {
	return s.userRepo.IsAuthorized(userID)
}

// AuthorizeWithKey redeems a single-use key for the user.
// Returns domain.ErrInvalidKey when the key is unknown or already used.
func (s *AuthService) AuthorizeWithKey(userID int64, key string) error {
	return s.keyRepo.Redeem(userID, key)
}

// Logout resets the user to unauthorized
func (s *AuthService) Logout(userID int64) error {
	return s.userRepo.SetAuthorized(userID, false)
}

// SeedTestKeys populates the key store with test keys when it is empty
func (s *AuthService) SeedTestKeys() error {
	count, err := s.keyRepo.CountKeys()
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return s.keyRepo.InsertKeys(testKeys)
}
