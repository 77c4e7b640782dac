package service

import (
	"fmt"

	"contactdesk/internal/domain"
	"contactdesk/pkg/logger"
)

// defaultAuditLogLimit caps the listing when the operator gives no count.
const defaultAuditLogLimit = 20

type AuditLogService struct {
	repo   domain.AuditLogRepository
	logger logger.Logger
}

func NewAuditLogService(repo domain.AuditLogRepository, logger logger.Logger) domain.AuditLogService {
	return &AuditLogService{
		repo:   repo,
		logger: logger,
	}
}

func (s *AuditLogService) GetRecentLogs(limit int) ([]*domain.AuditLog, error) {
	if limit <= 0 {
		limit = defaultAuditLogLimit
	}

	logs, err := s.repo.FindAll(limit, 0)
	if err != nil {
		return nil, fmt.Errorf("denetim kayıtları yüklenemedi: %w", err)
	}
	return logs, nil
}

func (s *AuditLogService) GetEntityHistory(entityType domain.EntityType, entityID int64) ([]*domain.AuditLog, error) {
	logs, err := s.repo.FindByEntityID(entityType, entityID)
	if err != nil {
		return nil, fmt.Errorf("denetim geçmişi yüklenemedi: %w", err)
	}
	return logs, nil
}
