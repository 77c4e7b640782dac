package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contactdesk/internal/domain"
)

func auditFixtureEntries() []*domain.AuditLog {
	return []*domain.AuditLog{
		{ID: 1, EntityType: domain.EntityTypeContact, EntityID: 3, Action: domain.ActionTypeCreate},
		{ID: 2, EntityType: domain.EntityTypeContact, EntityID: 3, Action: domain.ActionTypeUpdate},
		{ID: 3, EntityType: domain.EntityTypeUser, EntityID: 3, Action: domain.ActionTypeCreate},
		{ID: 4, EntityType: domain.EntityTypeContact, EntityID: 9, Action: domain.ActionTypeDelete},
	}
}

func TestGetRecentLogsHonorsLimit(t *testing.T) {
	repo := &mockAuditRepo{entries: auditFixtureEntries()}
	svc := NewAuditLogService(repo, testLogger{})

	logs, err := svc.GetRecentLogs(2)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, 2, repo.lastLimit)
}

func TestGetRecentLogsDefaultsLimit(t *testing.T) {
	repo := &mockAuditRepo{entries: auditFixtureEntries()}
	svc := NewAuditLogService(repo, testLogger{})

	logs, err := svc.GetRecentLogs(0)
	require.NoError(t, err)
	assert.Len(t, logs, 4)
	assert.Equal(t, defaultAuditLogLimit, repo.lastLimit)

	_, err = svc.GetRecentLogs(-5)
	require.NoError(t, err)
	assert.Equal(t, defaultAuditLogLimit, repo.lastLimit)
}

func TestGetEntityHistoryFiltersByEntity(t *testing.T) {
	repo := &mockAuditRepo{entries: auditFixtureEntries()}
	svc := NewAuditLogService(repo, testLogger{})

	logs, err := svc.GetEntityHistory(domain.EntityTypeContact, 3)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, int64(1), logs[0].ID)
	assert.Equal(t, int64(2), logs[1].ID)

	logs, err = svc.GetEntityHistory(domain.EntityTypeUser, 3)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, int64(3), logs[0].ID)
}

func TestAuditLogServiceWrapsStorageErrors(t *testing.T) {
	boom := errors.New("bağlantı koptu")
	repo := &mockAuditRepo{err: boom}
	svc := NewAuditLogService(repo, testLogger{})

	_, err := svc.GetRecentLogs(5)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "denetim kayıtları yüklenemedi")

	_, err = svc.GetEntityHistory(domain.EntityTypeContact, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "denetim geçmişi yüklenemedi")
}
