package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contactdesk/internal/domain"
)

var auditColumnNames = []string{
	"id", "entity_type", "entity_id", "action", "details", "created_at",
}

func newAuditLogRepo(t *testing.T) (domain.AuditLogRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewAuditLogRepository(db, testLogger{}), mock
}

func TestAuditLogCreateAssignsID(t *testing.T) {
	repo, mock := newAuditLogRepo(t)

	entry := &domain.AuditLog{
		EntityType: domain.EntityTypeContact,
		EntityID:   4,
		Action:     domain.ActionTypeUpdate,
		Details:    "email güncellendi",
	}

	mock.ExpectExec("INSERT INTO audit_logs").
		WithArgs("contact", int64(4), "update", "email güncellendi", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(12, 1))

	require.NoError(t, repo.Create(entry))
	assert.Equal(t, int64(12), entry.ID)
	assert.False(t, entry.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditLogFindAllPassesLimitAndOffset(t *testing.T) {
	repo, mock := newAuditLogRepo(t)

	now := time.Now()
	rows := sqlmock.NewRows(auditColumnNames).
		AddRow(int64(2), "user", int64(7), "delete", "kullanıcı silindi", now).
		AddRow(int64(1), "contact", int64(3), "create", "kişi eklendi", now.Add(-time.Hour))

	mock.ExpectQuery("SELECT id, entity_type, entity_id, action, details, created_at").
		WithArgs(5, 0).
		WillReturnRows(rows)

	logs, err := repo.FindAll(5, 0)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, domain.EntityTypeUser, logs[0].EntityType)
	assert.Equal(t, domain.ActionTypeDelete, logs[0].Action)
	assert.Equal(t, int64(3), logs[1].EntityID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditLogFindByEntityID(t *testing.T) {
	repo, mock := newAuditLogRepo(t)

	rows := sqlmock.NewRows(auditColumnNames).
		AddRow(int64(9), "contact", int64(3), "update", "telefon güncellendi", time.Now())

	mock.ExpectQuery("WHERE entity_type = \\? AND entity_id = \\?").
		WithArgs("contact", int64(3)).
		WillReturnRows(rows)

	logs, err := repo.FindByEntityID(domain.EntityTypeContact, 3)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, int64(9), logs[0].ID)
	assert.Equal(t, domain.ActionTypeUpdate, logs[0].Action)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAuditLogFindAllStorageError(t *testing.T) {
	repo, mock := newAuditLogRepo(t)

	mock.ExpectQuery("SELECT id, entity_type").
		WillReturnError(errors.New("disk dolu"))

	_, err := repo.FindAll(10, 0)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStorage)
}
