package testutil

import (
	"io"

	"filevault/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepository is a mock for UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetUser(userID int64) (*domain.User, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) CreateUser(userID int64, username string) error {
	args := m.Called(userID, username)
	return args.Error(0)
}

func (m *MockUserRepository) IsAuthorized(userID int64) (bool, error) {
	args := m.Called(userID)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) SetAuthorized(userID int64, authorized bool) error {
	args := m.Called(userID, authorized)
	return args.Error(0)
}

// MockKeyRepository is a mock for KeyRepository
type MockKeyRepository struct {
	mock.Mock
}

func (m *MockKeyRepository) Redeem(userID int64, key string) error {
	args := m.Called(userID, key)
	return args.Error(0)
}

func (m *MockKeyRepository) CountKeys() (int, error) {
	args := m.Called()
	return args.Int(0), args.Error(1)
}

func (m *MockKeyRepository) InsertKeys(keys []string) error {
	args := m.Called(keys)
	return args.Error(0)
}

// MockFileRepository is a mock for FileRepository
type MockFileRepository struct {
	mock.Mock
}

func (m *MockFileRepository) SaveFile(userID int64, path, originalName string, kind domain.FileKind) (int, error) {
	args := m.Called(userID, path, originalName, kind)
	return args.Int(0), args.Error(1)
}

func (m *MockFileRepository) FilesByOwner(userID int64) ([]domain.StoredFile, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StoredFile), args.Error(1)
}

func (m *MockFileRepository) FileByOwner(userID int64, fileID int) (*domain.StoredFile, error) {
	args := m.Called(userID, fileID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StoredFile), args.Error(1)
}

func (m *MockFileRepository) DeleteFile(userID int64, fileID int) error {
	args := m.Called(userID, fileID)
	return args.Error(0)
}

// MockAuditRepository is a mock for AuditRepository
type MockAuditRepository struct {
	mock.Mock
}

func (m *MockAuditRepository) Append(userID int64, action string) error {
	args := m.Called(userID, action)
	return args.Error(0)
}

// MockFileStore is a mock for service.FileStore
type MockFileStore struct {
	mock.Mock
}

func (m *MockFileStore) Save(userID int64, filename string, src io.Reader) (string, error) {
	args := m.Called(userID, filename, src)
	return args.String(0), args.Error(1)
}

func (m *MockFileStore) Remove(path string) error {
	args := m.Called(path)
	return args.Error(0)
}
