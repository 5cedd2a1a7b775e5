package service

import (
	"errors"
	"testing"

	"filevault/internal/testutil"
)

func TestAuditService_Record(t *testing.T) {
	auditRepo := new(testutil.MockAuditRepository)
	auditRepo.On("Append", int64(123), "logged out").Return(nil)

	service := NewAuditService(auditRepo, testutil.NewTestLogger())

	service.Record(123, "logged out")

	auditRepo.AssertExpectations(t)
}

func TestAuditService_Record_SwallowsFailure(t *testing.T) {
	auditRepo := new(testutil.MockAuditRepository)
	auditRepo.On("Append", int64(123), "logged out").Return(errors.New("database unavailable"))

	service := NewAuditService(auditRepo, testutil.NewTestLogger())

	// Must not panic or surface the error to the caller
	service.Record(123, "logged out")

	auditRepo.AssertExpectations(t)
}
