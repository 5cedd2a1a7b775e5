package service

import (
	"filevault/internal/repository"

	"go.uber.org/zap"
)

// AuditService appends user actions to the audit log
type AuditService struct {
	auditRepo repository.AuditRepository
	logger    *zap.Logger
}

// NewAuditService creates a new audit service
func NewAuditService(auditRepo repository.AuditRepository, logger *zap.Logger) *AuditService {
	return &AuditService{
		auditRepo: auditRepo,
		logger:    logger,
	}
}

// Record appends an action entry. Best-effort: a failed append is logged
// and swallowed so it never aborts the user action that triggered it.
func (s *AuditService) Record(userID int64, action string) {
	if err := s.auditRepo.Append(userID, action); err != nil {
		s.logger.Warn("Failed to record audit entry",
			zap.Int64("user_id", userID),
			zap.String("action", action),
			zap.Error(err),
		)
	}
}
