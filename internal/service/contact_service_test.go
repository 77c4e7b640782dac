package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contactdesk/internal/domain"
	"contactdesk/pkg/logger"
)

type testLogger struct{}

func (testLogger) Debug(string, map[string]interface{}) {}
func (testLogger) Info(string, map[string]interface{})  {}
func (testLogger) Warn(string, map[string]interface{})  {}
func (testLogger) Error(string, map[string]interface{}) {}
func (testLogger) Fatal(string, map[string]interface{}) {}
func (l testLogger) WithFields(map[string]interface{}) logger.Logger {
	return l
}

type mockContactRepo struct {
	calls    []string
	contacts map[int64]*domain.Contact
	nextID   int64

	emailCount int
	phoneCount map[string]int
}

func newMockContactRepo(contacts ...*domain.Contact) *mockContactRepo {
	m := &mockContactRepo{
		contacts:   make(map[int64]*domain.Contact),
		phoneCount: make(map[string]int),
	}
	for _, c := range contacts {
		m.contacts[c.ID] = c
		if c.ID > m.nextID {
			m.nextID = c.ID
		}
	}
	return m
}

func (m *mockContactRepo) record(call string) {
	m.calls = append(m.calls, call)
}

func (m *mockContactRepo) FindAll() ([]*domain.Contact, error) {
	m.record("FindAll")
	out := make([]*domain.Contact, 0, len(m.contacts))
	for _, c := range m.contacts {
		out = append(out, c)
	}
	return out, nil
}

func (m *mockContactRepo) FindByID(id int64) (*domain.Contact, error) {
	m.record("FindByID")
	return m.contacts[id], nil
}

func (m *mockContactRepo) Create(contact *domain.Contact) error {
	m.record("Create")
	m.nextID++
	contact.ID = m.nextID
	m.contacts[contact.ID] = contact
	return nil
}

func (m *mockContactRepo) Update(contact *domain.Contact) error {
	m.record("Update")
	m.contacts[contact.ID] = contact
	return nil
}

func (m *mockContactRepo) Restore(contact *domain.Contact) error {
	m.record("Restore")
	m.contacts[contact.ID] = contact
	return nil
}

func (m *mockContactRepo) Delete(id int64) error {
	m.record("Delete")
	delete(m.contacts, id)
	return nil
}

func (m *mockContactRepo) CountByEmail(email string, excludeID int64) (int, error) {
	m.record("CountByEmail")
	return m.emailCount, nil
}

func (m *mockContactRepo) CountByPhone(phone string, excludeID int64) (int, error) {
	m.record("CountByPhone")
	return m.phoneCount[phone], nil
}

type mockAuditRepo struct {
	entries   []*domain.AuditLog
	err       error
	lastLimit int
}

func (m *mockAuditRepo) Create(log *domain.AuditLog) error {
	if m.err != nil {
		return m.err
	}
	m.entries = append(m.entries, log)
	return nil
}

func (m *mockAuditRepo) FindByEntityID(entityType domain.EntityType, entityID int64) ([]*domain.AuditLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	var matched []*domain.AuditLog
	for _, entry := range m.entries {
		if entry.EntityType == entityType && entry.EntityID == entityID {
			matched = append(matched, entry)
		}
	}
	return matched, nil
}

func (m *mockAuditRepo) FindAll(limit, offset int) ([]*domain.AuditLog, error) {
	if m.err != nil {
		return nil, m.err
	}
	m.lastLimit = limit
	if offset >= len(m.entries) {
		return nil, nil
	}
	rest := m.entries[offset:]
	if limit < len(rest) {
		rest = rest[:limit]
	}
	return rest, nil
}

func validContact() *domain.Contact {
	return &domain.Contact{
		FirstName:    "zeynep",
		LastName:     "demir",
		PhonePrimary: "+905551112233",
		Email:        "zeynep@gmail.com",
	}
}

func TestCreateContactNormalizesAndAudits(t *testing.T) {
	repo := newMockContactRepo()
	audit := &mockAuditRepo{}
	svc := NewContactService(repo, audit, testLogger{})

	contact := validContact()
	require.NoError(t, svc.CreateContact(contact))

	assert.Equal(t, "Zeynep", contact.FirstName)
	assert.Equal(t, "Demir", contact.LastName)
	assert.NotZero(t, contact.ID)

	require.Len(t, audit.entries, 1)
	assert.Equal(t, domain.EntityTypeContact, audit.entries[0].EntityType)
	assert.Equal(t, domain.ActionTypeCreate, audit.entries[0].Action)
}

func TestCreateContactValidationBeforeStorage(t *testing.T) {
	repo := newMockContactRepo()
	svc := NewContactService(repo, &mockAuditRepo{}, testLogger{})

	contact := validContact()
	contact.PhonePrimary = "+90555123456"

	err := svc.CreateContact(contact)
	require.Error(t, err)

	var verr *domain.ValidationError
	assert.ErrorAs(t, err, &verr)
	assert.Empty(t, repo.calls, "invalid input never reaches storage")
}

func TestCreateContactDuplicateEmail(t *testing.T) {
	repo := newMockContactRepo()
	repo.emailCount = 1
	svc := NewContactService(repo, &mockAuditRepo{}, testLogger{})

	err := svc.CreateContact(validContact())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicateValue)
	assert.NotContains(t, repo.calls, "Create")
}

func TestCreateContactDuplicatePhone(t *testing.T) {
	repo := newMockContactRepo()
	repo.phoneCount["+905551112233"] = 1
	svc := NewContactService(repo, &mockAuditRepo{}, testLogger{})

	err := svc.CreateContact(validContact())
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDuplicateValue)
}

func TestUpdateContactMissing(t *testing.T) {
	svc := NewContactService(newMockContactRepo(), &mockAuditRepo{}, testLogger{})

	contact := validContact()
	contact.ID = 404

	err := svc.UpdateContact(contact)
	assert.ErrorIs(t, err, domain.ErrContactNotFound)
}

func TestDeleteContactMissing(t *testing.T) {
	repo := newMockContactRepo()
	svc := NewContactService(repo, &mockAuditRepo{}, testLogger{})

	err := svc.DeleteContact(404)
	assert.ErrorIs(t, err, domain.ErrContactNotFound)
	assert.NotContains(t, repo.calls, "Delete")
}

func TestGetContactMissing(t *testing.T) {
	svc := NewContactService(newMockContactRepo(), &mockAuditRepo{}, testLogger{})

	_, err := svc.GetContact(404)
	assert.ErrorIs(t, err, domain.ErrContactNotFound)
}

func TestSearchMultiFieldEmptyBeforeStorage(t *testing.T) {
	repo := newMockContactRepo()
	svc := NewContactService(repo, &mockAuditRepo{}, testLogger{})

	_, err := svc.SearchMultiField(nil)
	assert.ErrorIs(t, err, domain.ErrEmptyCriteria)
	assert.Empty(t, repo.calls, "empty criteria fail before any storage round trip")
}

func TestSearchSingleFieldUnknown(t *testing.T) {
	svc := NewContactService(newMockContactRepo(), &mockAuditRepo{}, testLogger{})

	_, err := svc.SearchSingleField("göz_rengi", "ela")
	assert.ErrorIs(t, err, domain.ErrUnknownField)
}

func TestRestoreContactSkipsValidation(t *testing.T) {
	repo := newMockContactRepo()
	audit := &mockAuditRepo{}
	svc := NewContactService(repo, audit, testLogger{})

	snapshot := &domain.Contact{ID: 5, FirstName: "Ali", LastName: "Kaya"}
	require.NoError(t, svc.RestoreContact(snapshot))

	assert.Contains(t, repo.calls, "Restore")
	require.Len(t, audit.entries, 1)
	assert.Equal(t, domain.ActionTypeUndo, audit.entries[0].Action)
}

func TestAuditFailureDoesNotBlockMutation(t *testing.T) {
	repo := newMockContactRepo()
	audit := &mockAuditRepo{err: domain.ErrStorage}
	svc := NewContactService(repo, audit, testLogger{})

	contact := validContact()
	require.NoError(t, svc.CreateContact(contact), "a failed audit write never fails the mutation")
	assert.NotZero(t, contact.ID)
}
