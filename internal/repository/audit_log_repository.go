package repository

import (
	"database/sql"
	"time"

	"contactdesk/internal/domain"
	"contactdesk/pkg/logger"
)

type AuditLogRepository struct {
	db     *sql.DB
	logger logger.Logger
}

func NewAuditLogRepository(db *sql.DB, logger logger.Logger) domain.AuditLogRepository {
	return &AuditLogRepository{
		db:     db,
		logger: logger,
	}
}

func (r *AuditLogRepository) Create(log *domain.AuditLog) error {
	query := `
		INSERT INTO audit_logs (entity_type, entity_id, action, details, created_at)
		VALUES (?, ?, ?, ?, ?)
	`

	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now()
	}

	result, err := r.db.Exec(
		query,
		string(log.EntityType),
		log.EntityID,
		string(log.Action),
		log.Details,
		log.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Denetim kaydı oluşturulamadı", map[string]interface{}{"error": err.Error()})
		return domain.StorageErr(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.StorageErr(err)
	}
	log.ID = id

	return nil
}

func (r *AuditLogRepository) FindByEntityID(entityType domain.EntityType, entityID int64) ([]*domain.AuditLog, error) {
	query := `
		SELECT id, entity_type, entity_id, action, details, created_at
		FROM audit_logs
		WHERE entity_type = ? AND entity_id = ?
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(query, string(entityType), entityID)
	if err != nil {
		r.logger.Error("Denetim kayıtları yüklenemedi", map[string]interface{}{"error": err.Error()})
		return nil, domain.StorageErr(err)
	}
	defer rows.Close()

	return r.scanLogs(rows)
}

func (r *AuditLogRepository) FindAll(limit, offset int) ([]*domain.AuditLog, error) {
	query := `
		SELECT id, entity_type, entity_id, action, details, created_at
		FROM audit_logs
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`

	rows, err := r.db.Query(query, limit, offset)
	if err != nil {
		r.logger.Error("Denetim kayıtları yüklenemedi", map[string]interface{}{"error": err.Error()})
		return nil, domain.StorageErr(err)
	}
	defer rows.Close()

	return r.scanLogs(rows)
}

func (r *AuditLogRepository) scanLogs(rows *sql.Rows) ([]*domain.AuditLog, error) {
	var logs []*domain.AuditLog
	for rows.Next() {
		var log domain.AuditLog
		var entityType, action string

		err := rows.Scan(&log.ID, &entityType, &log.EntityID, &action, &log.Details, &log.CreatedAt)
		if err != nil {
			return nil, domain.StorageErr(err)
		}

		log.EntityType = domain.EntityType(entityType)
		log.Action = domain.ActionType(action)
		logs = append(logs, &log)
	}

	if err := rows.Err(); err != nil {
		return nil, domain.StorageErr(err)
	}

	return logs, nil
}
