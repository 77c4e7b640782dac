package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"contactdesk/internal/domain"
	"contactdesk/pkg/logger"
)

type appLogger struct{}

func (appLogger) Debug(string, map[string]interface{}) {}
func (appLogger) Info(string, map[string]interface{})  {}
func (appLogger) Warn(string, map[string]interface{})  {}
func (appLogger) Error(string, map[string]interface{}) {}
func (appLogger) Fatal(string, map[string]interface{}) {}
func (l appLogger) WithFields(map[string]interface{}) logger.Logger {
	return l
}

type fixedContactService struct {
	contacts []*domain.Contact
}

func (s *fixedContactService) ListContacts() ([]*domain.Contact, error) { return s.contacts, nil }
func (s *fixedContactService) GetContact(int64) (*domain.Contact, error) {
	return nil, domain.ErrContactNotFound
}
func (s *fixedContactService) SearchSingleField(string, string) ([]*domain.Contact, error) {
	return nil, nil
}
func (s *fixedContactService) SearchMultiField([]domain.SearchCriterion) ([]*domain.Contact, error) {
	return nil, nil
}
func (s *fixedContactService) SortContacts([]*domain.Contact, string, bool) error { return nil }
func (s *fixedContactService) CreateContact(*domain.Contact) error                { return nil }
func (s *fixedContactService) UpdateContact(*domain.Contact) error                { return nil }
func (s *fixedContactService) DeleteContact(int64) error                          { return nil }
func (s *fixedContactService) RestoreContact(*domain.Contact) error               { return nil }

type fixedUserService struct{}

func (fixedUserService) ListUsers() ([]*domain.User, error)    { return nil, nil }
func (fixedUserService) GetUser(int64) (*domain.User, error)   { return nil, domain.ErrUserNotFound }
func (fixedUserService) CreateUser(*domain.User, string) error { return nil }
func (fixedUserService) UpdateUser(*domain.User, string) error { return nil }
func (fixedUserService) DeleteUser(int64) error                { return nil }
func (fixedUserService) RestoreUser(*domain.User) error        { return nil }

type fixedAuthService struct {
	user *domain.User
}

func (s *fixedAuthService) Login(username, password string) (*domain.User, error) {
	if s.user != nil && s.user.Username == username {
		return s.user, nil
	}
	return nil, domain.ErrInvalidCredentials
}

func (s *fixedAuthService) ChangePassword(int64, string) error { return nil }

type fixedStatsService struct{}

func (fixedStatsService) GetStatistics() (*domain.Statistics, error) {
	return &domain.Statistics{}, nil
}

type fixedAuditService struct{}

func (fixedAuditService) GetRecentLogs(int) ([]*domain.AuditLog, error) { return nil, nil }
func (fixedAuditService) GetEntityHistory(domain.EntityType, int64) ([]*domain.AuditLog, error) {
	return nil, nil
}

func newTestApp(input string, user *domain.User) (*App, *bytes.Buffer) {
	var out bytes.Buffer
	app := NewApp(
		&fixedContactService{contacts: []*domain.Contact{{ID: 1, FirstName: "Ayşe", LastName: "Yılmaz"}}},
		fixedUserService{},
		&fixedAuthService{user: user},
		fixedStatsService{},
		fixedAuditService{},
		appLogger{},
		strings.NewReader(input),
		&out,
	)
	return app, &out
}

// runWithinDeadline fails the test instead of hanging the suite when the
// loop does not terminate on its own.
func runWithinDeadline(t *testing.T, app *App) error {
	t.Helper()

	done := make(chan error, 1)
	go func() { done <- app.Run() }()

	select {
	case err := <-done:
		return err
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after input ended")
		return nil
	}
}

func TestRunExitsOnEmptyUsername(t *testing.T) {
	app, out := newTestApp("\n", nil)

	require.NoError(t, runWithinDeadline(t, app))
	assert.Contains(t, out.String(), "Görüşmek üzere!")
}

func TestRunExitsWhenInputEndsAtLogin(t *testing.T) {
	app, out := newTestApp("", nil)

	require.NoError(t, runWithinDeadline(t, app))
	assert.Contains(t, out.String(), "Görüşmek üzere!")
}

func TestRunExitsWhenInputEndsMidSession(t *testing.T) {
	user := &domain.User{ID: 1, Username: "testci", Role: domain.RoleTester}
	app, out := newTestApp("testci\nsifre\n", user)

	require.NoError(t, runWithinDeadline(t, app))

	output := out.String()
	assert.Contains(t, output, "TESTER MENÜSÜ")
	assert.Contains(t, output, "Oturum kapatıldı")
	assert.Contains(t, output, "Görüşmek üzere!")
	assert.NotContains(t, output, "geçersiz sayı", "EOF must not loop as a parse error")
}

func TestRunExitsAfterCommandsWhenInputEnds(t *testing.T) {
	user := &domain.User{ID: 1, Username: "testci", Role: domain.RoleTester}
	app, out := newTestApp("testci\nsifre\n2\n", user)

	require.NoError(t, runWithinDeadline(t, app))

	output := out.String()
	assert.Contains(t, output, "Ayşe", "the listing command still ran before EOF")
	assert.Contains(t, output, "Görüşmek üzere!")
	assert.Equal(t, 2, strings.Count(output, "MENÜSÜ"), "the menu stops reprinting once input ends")
}
