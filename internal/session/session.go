// Package session is the role-gated dispatch state machine. One generic
// session parameterized by a capability table replaces per-role controller
// copies; a command outside the table never reaches a handler.
package session

import (
	"fmt"

	"contactdesk/internal/domain"
	"contactdesk/internal/fields"
	"contactdesk/internal/history"
	"contactdesk/pkg/logger"
)

type State int

const (
	StateAwaitingCommand State = iota
	StateExecuting
	StateLoggedOut
)

// Request carries the operator-supplied parameters for one command. The
// outer loop fills only the fields the chosen command needs.
type Request struct {
	Field     string
	Value     string
	Ascending bool
	Criteria  []domain.SearchCriterion

	ContactID int64
	Contact   *domain.Contact
	Updates   []FieldUpdate

	UserID   int64
	User     *domain.User
	Password string

	Entity   domain.EntityType
	EntityID int64
	Limit    int
}

// FieldUpdate is one field/value change of an update-contact command,
// applied through the field registry.
type FieldUpdate struct {
	Field string
	Value string
}

// Result is the structured outcome handed to the external renderer. The
// session never formats terminal output itself.
type Result struct {
	Contacts  []*domain.Contact
	Users     []*domain.User
	Stats     *domain.Statistics
	Logs      []*domain.AuditLog
	Message   string
	LoggedOut bool
}

type Session struct {
	user    *domain.User
	table   *CapabilityTable
	state   State
	history *history.History

	contacts domain.ContactService
	users    domain.UserService
	auth     domain.AuthService
	stats    domain.StatisticsService
	audit    domain.AuditLogService
	logger   logger.Logger
}

func New(
	user *domain.User,
	contacts domain.ContactService,
	users domain.UserService,
	auth domain.AuthService,
	stats domain.StatisticsService,
	audit domain.AuditLogService,
	logger logger.Logger,
) (*Session, error) {
	table, ok := TableForRole(user.Role)
	if !ok {
		return nil, fmt.Errorf("bilinmeyen rol: %q", user.Role)
	}

	return &Session{
		user:     user,
		table:    table,
		state:    StateAwaitingCommand,
		history:  history.New(),
		contacts: contacts,
		users:    users,
		auth:     auth,
		stats:    stats,
		audit:    audit,
		logger:   logger.WithFields(map[string]interface{}{"username": user.Username, "role": string(user.Role)}),
	}, nil
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) User() *domain.User {
	return s.user
}

func (s *Session) Table() *CapabilityTable {
	return s.table
}

// Dispatch authorizes code against the session role's capability table and
// runs the matching handler. Unauthorized or unknown codes return
// ErrUnauthorizedCommand before any side effect; every non-logout outcome
// puts the session back into AwaitingCommand.
func (s *Session) Dispatch(code int, req *Request) (*Result, error) {
	if s.state == StateLoggedOut {
		return nil, fmt.Errorf("oturum kapatıldı")
	}
	if req == nil {
		req = &Request{}
	}

	cmd := Command(code)
	if !s.table.Allows(cmd) {
		s.logger.Warn("Yetkisiz komut reddedildi", map[string]interface{}{"command": code})
		return nil, fmt.Errorf("%w: %d", domain.ErrUnauthorizedCommand, code)
	}

	s.state = StateExecuting
	result, err := s.execute(cmd, req)
	if result != nil && result.LoggedOut {
		s.state = StateLoggedOut
	} else {
		s.state = StateAwaitingCommand
	}

	return result, err
}

func (s *Session) execute(cmd Command, req *Request) (*Result, error) {
	switch cmd {
	case CommandLogout:
		s.logger.Info("Oturum kapatılıyor", nil)
		return &Result{LoggedOut: true, Message: "Oturum kapatıldı"}, nil

	case CommandChangePassword:
		if err := s.auth.ChangePassword(s.user.ID, req.Password); err != nil {
			return nil, err
		}
		return &Result{Message: "Şifre başarıyla güncellendi"}, nil

	case CommandListContacts:
		contacts, err := s.contacts.ListContacts()
		if err != nil {
			return nil, err
		}
		return &Result{Contacts: contacts}, nil

	case CommandSearchSingle:
		contacts, err := s.contacts.SearchSingleField(req.Field, req.Value)
		if err != nil {
			return nil, err
		}
		return &Result{Contacts: contacts}, nil

	case CommandSearchMulti:
		contacts, err := s.contacts.SearchMultiField(req.Criteria)
		if err != nil {
			return nil, err
		}
		return &Result{Contacts: contacts}, nil

	case CommandSortContacts:
		contacts, err := s.contacts.ListContacts()
		if err != nil {
			return nil, err
		}
		if err := s.contacts.SortContacts(contacts, req.Field, req.Ascending); err != nil {
			return nil, err
		}
		return &Result{Contacts: contacts}, nil

	case CommandUpdateContact:
		return s.updateContact(req)

	case CommandAddContact:
		return s.addContact(req)

	case CommandDeleteContact:
		return s.deleteContact(req)

	case CommandUndo:
		return s.undo()

	case CommandViewStats:
		stats, err := s.stats.GetStatistics()
		if err != nil {
			return nil, err
		}
		return &Result{Stats: stats}, nil

	case CommandListUsers:
		users, err := s.users.ListUsers()
		if err != nil {
			return nil, err
		}
		return &Result{Users: users}, nil

	case CommandAddUser:
		return s.addUser(req)

	case CommandUpdateUser:
		return s.updateUser(req)

	case CommandDeleteUser:
		return s.deleteUser(req)

	case CommandViewAuditLog:
		return s.viewAuditLog(req)
	}

	return nil, fmt.Errorf("%w: %d", domain.ErrUnauthorizedCommand, int(cmd))
}

func (s *Session) updateContact(req *Request) (*Result, error) {
	target, err := s.contacts.GetContact(req.ContactID)
	if err != nil {
		return nil, err
	}

	snapshot := target.Clone()

	for _, update := range req.Updates {
		binding, err := fields.Resolve(update.Field)
		if err != nil {
			return nil, err
		}
		if err := binding.Apply(target, update.Value); err != nil {
			return nil, err
		}
	}

	if err := s.contacts.UpdateContact(target); err != nil {
		return nil, err
	}

	s.history.SaveState(domain.Snapshot{
		Entity:  domain.EntityTypeContact,
		Action:  domain.ActionTypeUpdate,
		Contact: snapshot,
	})

	return &Result{Contacts: []*domain.Contact{target}, Message: "Kişi güncellendi"}, nil
}

func (s *Session) addContact(req *Request) (*Result, error) {
	if err := s.contacts.CreateContact(req.Contact); err != nil {
		return nil, err
	}

	s.history.SaveState(domain.Snapshot{
		Entity:  domain.EntityTypeContact,
		Action:  domain.ActionTypeCreate,
		Contact: req.Contact.Clone(),
	})

	return &Result{Contacts: []*domain.Contact{req.Contact}, Message: "Kişi eklendi"}, nil
}

func (s *Session) deleteContact(req *Request) (*Result, error) {
	target, err := s.contacts.GetContact(req.ContactID)
	if err != nil {
		return nil, err
	}

	snapshot := target.Clone()

	if err := s.contacts.DeleteContact(req.ContactID); err != nil {
		return nil, err
	}

	s.history.SaveState(domain.Snapshot{
		Entity:  domain.EntityTypeContact,
		Action:  domain.ActionTypeDelete,
		Contact: snapshot,
	})

	return &Result{Message: fmt.Sprintf("Kişi silindi: %s", snapshot.FullName())}, nil
}

func (s *Session) addUser(req *Request) (*Result, error) {
	if err := s.users.CreateUser(req.User, req.Password); err != nil {
		return nil, err
	}

	s.history.SaveState(domain.Snapshot{
		Entity: domain.EntityTypeUser,
		Action: domain.ActionTypeCreate,
		User:   req.User.Clone(),
	})

	return &Result{Users: []*domain.User{req.User}, Message: "Kullanıcı eklendi"}, nil
}

func (s *Session) updateUser(req *Request) (*Result, error) {
	target, err := s.users.GetUser(req.User.ID)
	if err != nil {
		return nil, err
	}

	snapshot := target.Clone()

	if err := s.users.UpdateUser(req.User, req.Password); err != nil {
		return nil, err
	}

	s.history.SaveState(domain.Snapshot{
		Entity: domain.EntityTypeUser,
		Action: domain.ActionTypeUpdate,
		User:   snapshot,
	})

	return &Result{Users: []*domain.User{req.User}, Message: "Kullanıcı güncellendi"}, nil
}

func (s *Session) deleteUser(req *Request) (*Result, error) {
	if req.UserID == s.user.ID {
		return nil, fmt.Errorf("kendi hesabınızı silemezsiniz")
	}

	target, err := s.users.GetUser(req.UserID)
	if err != nil {
		return nil, err
	}

	snapshot := target.Clone()

	if err := s.users.DeleteUser(req.UserID); err != nil {
		return nil, err
	}

	s.history.SaveState(domain.Snapshot{
		Entity: domain.EntityTypeUser,
		Action: domain.ActionTypeDelete,
		User:   snapshot,
	})

	return &Result{Message: fmt.Sprintf("Kullanıcı silindi: %s", snapshot.Username)}, nil
}

// viewAuditLog lists either the most recent entries or one entity's history.
func (s *Session) viewAuditLog(req *Request) (*Result, error) {
	if req.Entity != "" {
		logs, err := s.audit.GetEntityHistory(req.Entity, req.EntityID)
		if err != nil {
			return nil, err
		}
		return &Result{Logs: logs}, nil
	}

	logs, err := s.audit.GetRecentLogs(req.Limit)
	if err != nil {
		return nil, err
	}
	return &Result{Logs: logs}, nil
}

// undo pops the most recent snapshot and re-persists it through the storage
// boundary: an undone create is deleted, an undone update or delete is
// restored whole.
func (s *Session) undo() (*Result, error) {
	snapshot, err := s.history.Undo()
	if err != nil {
		return nil, err
	}

	switch snapshot.Entity {
	case domain.EntityTypeContact:
		if snapshot.Action == domain.ActionTypeCreate {
			if err := s.contacts.DeleteContact(snapshot.Contact.ID); err != nil {
				return nil, err
			}
			return &Result{Message: fmt.Sprintf("Kişi ekleme geri alındı: %s", snapshot.Contact.FullName())}, nil
		}
		if err := s.contacts.RestoreContact(snapshot.Contact); err != nil {
			return nil, err
		}
		return &Result{
			Contacts: []*domain.Contact{snapshot.Contact},
			Message:  fmt.Sprintf("Kişi önceki durumuna döndürüldü: %s", snapshot.Contact.FullName()),
		}, nil

	case domain.EntityTypeUser:
		if snapshot.Action == domain.ActionTypeCreate {
			if err := s.users.DeleteUser(snapshot.User.ID); err != nil {
				return nil, err
			}
			return &Result{Message: fmt.Sprintf("Kullanıcı ekleme geri alındı: %s", snapshot.User.Username)}, nil
		}
		if err := s.users.RestoreUser(snapshot.User); err != nil {
			return nil, err
		}
		return &Result{
			Users:   []*domain.User{snapshot.User},
			Message: fmt.Sprintf("Kullanıcı önceki durumuna döndürüldü: %s", snapshot.User.Username),
		}, nil
	}

	return nil, fmt.Errorf("bilinmeyen anlık görüntü türü: %q", snapshot.Entity)
}
