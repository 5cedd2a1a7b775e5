package service

import (
	"errors"
	"testing"

	"filevault/internal/domain"
	"filevault/internal/testutil"

	"github.com/stretchr/testify/assert"
)

func TestAuthService_AuthorizeWithKey(t *testing.T) {
	tests := []struct {
		name        string
		key         string
		mockError   error
		expectedErr error
	}{
		{
			name: "valid key",
			key:  "key123",
		},
		{
			name:        "invalid or used key",
			key:         "key123",
			mockError:   domain.ErrInvalidKey,
			expectedErr: domain.ErrInvalidKey,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(testutil.MockUserRepository)
			keyRepo := new(testutil.MockKeyRepository)
			keyRepo.On("Redeem", int64(123), tt.key).Return(tt.mockError)

			service := NewAuthService(userRepo, keyRepo)

			err := service.AuthorizeWithKey(123, tt.key)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
			} else {
				assert.NoError(t, err)
			}

			keyRepo.AssertExpectations(t)
		})
	}
}

func TestAuthService_IsAuthorized(t *testing.T) {
	userRepo := new(testutil.MockUserRepository)
	keyRepo := new(testutil.MockKeyRepository)
	userRepo.On("IsAuthorized", int64(123)).Return(true, nil)

	service := NewAuthService(userRepo, keyRepo)

	authorized, err := service.IsAuthorized(123)

	assert.NoError(t, err)
	assert.True(t, authorized)
	userRepo.AssertExpectations(t)
}

func TestAuthService_RegisterUser(t *testing.T) {
	userRepo := new(testutil.MockUserRepository)
	keyRepo := new(testutil.MockKeyRepository)
	userRepo.On("CreateUser", int64(123), "alice").Return(nil)

	service := NewAuthService(userRepo, keyRepo)

	err := service.RegisterUser(123, "alice")

	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestAuthService_Logout(t *testing.T) {
	userRepo := new(testutil.MockUserRepository)
	keyRepo := new(testutil.MockKeyRepository)
	userRepo.On("SetAuthorized", int64(123), false).Return(nil)

	service := NewAuthService(userRepo, keyRepo)

	err := service.Logout(123)

	assert.NoError(t, err)
	userRepo.AssertExpectations(t)
}

func TestAuthService_SeedTestKeys(t *testing.T) {
	tests := []struct {
		name         string
		count        int
		countError   error
		expectInsert bool
		expectedErr  bool
	}{
		{
			name:         "empty store gets seeded",
			count:        0,
			expectInsert: true,
		},
		{
			name:         "non-empty store skipped",
			count:        3,
			expectInsert: false,
		},
		{
			name:        "count failure propagates",
			countError:  errors.New("database unavailable"),
			expectedErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := new(testutil.MockUserRepository)
			keyRepo := new(testutil.MockKeyRepository)
			keyRepo.On("CountKeys").Return(tt.count, tt.countError)
			if tt.expectInsert {
				keyRepo.On("InsertKeys", []string{"key123", "secretkey", "auth777"}).Return(nil)
			}

			service := NewAuthService(userRepo, keyRepo)

			err := service.SeedTestKeys()

			if tt.expectedErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}

			keyRepo.AssertExpectations(t)
			if !tt.expectInsert {
				keyRepo.AssertNotCalled(t, "InsertKeys")
			}
		})
	}
}
