// Package cli is the outer interaction loop: login screen, menu prompts and
// result rendering around the session state machine. Everything here is
// glue; decisions stay in the core packages.
package cli

import (
	"errors"
	"fmt"
	"io"

	"contactdesk/internal/domain"
	"contactdesk/internal/fields"
	"contactdesk/internal/session"
	"contactdesk/pkg/logger"
)

type App struct {
	contacts domain.ContactService
	users    domain.UserService
	auth     domain.AuthService
	stats    domain.StatisticsService
	audit    domain.AuditLogService
	logger   logger.Logger

	prompter *Prompter
	renderer *Renderer
	out      io.Writer
}

func NewApp(
	contacts domain.ContactService,
	users domain.UserService,
	auth domain.AuthService,
	stats domain.StatisticsService,
	audit domain.AuditLogService,
	log logger.Logger,
	in io.Reader,
	out io.Writer,
) *App {
	return &App{
		contacts: contacts,
		users:    users,
		auth:     auth,
		stats:    stats,
		audit:    audit,
		logger:   log,
		prompter: NewPrompter(in, out),
		renderer: NewRenderer(out),
		out:      out,
	}
}

// Run drives login sessions until the operator leaves the login screen.
func (a *App) Run() error {
	fmt.Fprintln(a.out, "Kişi Yönetim Sistemine hoş geldiniz!")

	for {
		username := a.prompter.ReadLine("\nKullanıcı adı (çıkmak için boş bırakın): ")
		if username == "" || a.prompter.Closed() {
			fmt.Fprintln(a.out, "Görüşmek üzere!")
			return nil
		}
		password := a.prompter.ReadLine("Şifre: ")

		user, err := a.auth.Login(username, password)
		if err != nil {
			a.renderer.Error(err)
			continue
		}

		sess, err := session.New(user, a.contacts, a.users, a.auth, a.stats, a.audit, a.logger)
		if err != nil {
			a.renderer.Error(err)
			continue
		}

		a.sessionLoop(sess)
	}
}

func (a *App) sessionLoop(sess *session.Session) {
	for sess.State() != session.StateLoggedOut {
		a.renderer.Menu(sess.User(), sess.Table())

		code, err := a.prompter.ReadInt("Seçiminiz: ")
		if err != nil {
			if errors.Is(err, ErrInputClosed) {
				a.endSession(sess)
				return
			}
			a.renderer.Error(err)
			continue
		}

		cmd := session.Command(code)
		var req *session.Request
		if sess.Table().Allows(cmd) {
			// Parameters are only collected for commands the role can run;
			// the session still enforces the table on dispatch.
			req, err = a.buildRequest(sess, cmd)
			if err != nil {
				if errors.Is(err, ErrInputClosed) {
					a.endSession(sess)
					return
				}
				a.renderer.Error(err)
				continue
			}
			if req == nil {
				continue
			}
		}

		result, err := sess.Dispatch(code, req)
		if err != nil {
			a.renderer.Error(err)
			continue
		}
		a.renderer.Result(result)
	}
}

// endSession logs out through the dispatch table when input runs out, so
// the state machine closes the same way an explicit logout would.
func (a *App) endSession(sess *session.Session) {
	a.logger.Info("Girdi akışı kapandı, oturum sonlandırılıyor",
		map[string]interface{}{"username": sess.User().Username})
	if result, err := sess.Dispatch(int(session.CommandLogout), nil); err == nil {
		a.renderer.Result(result)
	}
}

// buildRequest gathers the inputs one command needs. Returning a nil request
// with nil error means the operator cancelled the command.
func (a *App) buildRequest(sess *session.Session, cmd session.Command) (*session.Request, error) {
	switch cmd {
	case session.CommandChangePassword:
		password := a.prompter.ReadLine("Yeni şifre: ")
		confirm := a.prompter.ReadLine("Yeni şifre (tekrar): ")
		if password != confirm {
			return nil, errors.New("şifreler eşleşmiyor")
		}
		return &session.Request{Password: password}, nil

	case session.CommandSearchSingle:
		field := a.promptField()
		value := a.prompter.ReadLine("Aranacak değer: ")
		return &session.Request{Field: field, Value: value}, nil

	case session.CommandSearchMulti:
		var criteria []domain.SearchCriterion
		for {
			field := a.prompter.ReadLine("Alan adı (bitirmek için boş bırakın): ")
			if field == "" {
				break
			}
			value := a.prompter.ReadLine("Aranacak değer: ")
			criteria = append(criteria, domain.SearchCriterion{Field: field, Value: value})
		}
		return &session.Request{Criteria: criteria}, nil

	case session.CommandSortContacts:
		field := a.promptField()
		ascending := !a.prompter.Confirm("Azalan sıralama olsun mu?")
		return &session.Request{Field: field, Ascending: ascending}, nil

	case session.CommandUpdateContact:
		id, err := a.prompter.ReadInt64("Güncellenecek kişi no: ")
		if err != nil {
			return nil, err
		}
		var updates []session.FieldUpdate
		for {
			field := a.prompter.ReadLine("Alan adı (bitirmek için boş bırakın): ")
			if field == "" {
				break
			}
			value := a.prompter.ReadLine("Yeni değer: ")
			updates = append(updates, session.FieldUpdate{Field: field, Value: value})
		}
		if len(updates) == 0 {
			fmt.Fprintln(a.out, "Değişiklik yapılmadı.")
			return nil, nil
		}
		return &session.Request{ContactID: id, Updates: updates}, nil

	case session.CommandAddContact:
		return a.buildAddContact()

	case session.CommandDeleteContact:
		id, err := a.prompter.ReadInt64("Silinecek kişi no: ")
		if err != nil {
			return nil, err
		}
		if !a.prompter.Confirm("Kişi kalıcı olarak silinecek, emin misiniz?") {
			fmt.Fprintln(a.out, "Silme iptal edildi.")
			return nil, nil
		}
		return &session.Request{ContactID: id}, nil

	case session.CommandAddUser:
		user := &domain.User{
			Username:  a.prompter.ReadLine("Kullanıcı adı: "),
			FirstName: a.prompter.ReadLine("Ad: "),
			LastName:  a.prompter.ReadLine("Soyad: "),
			Role:      domain.Role(a.prompter.ReadLine("Rol (tester / junior_developer / senior_developer / manager): ")),
		}
		password := a.prompter.ReadLine("Şifre: ")
		return &session.Request{User: user, Password: password}, nil

	case session.CommandUpdateUser:
		return a.buildUpdateUser()

	case session.CommandViewAuditLog:
		return a.buildViewAuditLog()

	case session.CommandDeleteUser:
		id, err := a.prompter.ReadInt64("Silinecek kullanıcı no: ")
		if err != nil {
			return nil, err
		}
		if !a.prompter.Confirm("Kullanıcı kalıcı olarak silinecek, emin misiniz?") {
			fmt.Fprintln(a.out, "Silme iptal edildi.")
			return nil, nil
		}
		return &session.Request{UserID: id}, nil
	}

	return &session.Request{}, nil
}

// buildViewAuditLog offers the whole journal or one entity's history.
func (a *App) buildViewAuditLog() (*session.Request, error) {
	fmt.Fprintln(a.out, "[1] Son kayıtlar  [2] Kişi geçmişi  [3] Kullanıcı geçmişi")
	choice, err := a.prompter.ReadInt("Seçiminiz: ")
	if err != nil {
		return nil, err
	}

	switch choice {
	case 1:
		limit, err := a.prompter.ReadInt("Kayıt sayısı: ")
		if err != nil {
			return nil, err
		}
		return &session.Request{Limit: limit}, nil
	case 2:
		id, err := a.prompter.ReadInt64("Kişi no: ")
		if err != nil {
			return nil, err
		}
		return &session.Request{Entity: domain.EntityTypeContact, EntityID: id}, nil
	case 3:
		id, err := a.prompter.ReadInt64("Kullanıcı no: ")
		if err != nil {
			return nil, err
		}
		return &session.Request{Entity: domain.EntityTypeUser, EntityID: id}, nil
	}

	return nil, fmt.Errorf("geçersiz seçim: %d", choice)
}

// buildAddContact applies every input through the field registry so the
// operator sees the same field-scoped errors the update path produces.
func (a *App) buildAddContact() (*session.Request, error) {
	contact := &domain.Contact{}
	inputs := []struct {
		field  string
		prompt string
	}{
		{"first_name", "Ad: "},
		{"middle_name", "İkinci ad (isteğe bağlı): "},
		{"last_name", "Soyad: "},
		{"nickname", "Takma ad (isteğe bağlı): "},
		{"phone_primary", "Birincil telefon (+905551234567): "},
		{"phone_secondary", "İkincil telefon (isteğe bağlı): "},
		{"email", "E-posta: "},
		{"linkedin_url", "LinkedIn adresi (isteğe bağlı): "},
		{"birth_date", "Doğum tarihi (yyyy-aa-gg, isteğe bağlı): "},
	}

	for _, input := range inputs {
		value := a.prompter.ReadLine(input.prompt)
		binding, err := fields.Resolve(input.field)
		if err != nil {
			return nil, err
		}
		if err := binding.Apply(contact, value); err != nil {
			return nil, err
		}
	}

	return &session.Request{Contact: contact}, nil
}

func (a *App) buildUpdateUser() (*session.Request, error) {
	id, err := a.prompter.ReadInt64("Güncellenecek kullanıcı no: ")
	if err != nil {
		return nil, err
	}

	current, err := a.users.GetUser(id)
	if err != nil {
		return nil, err
	}

	fmt.Fprintln(a.out, "Mevcut değeri korumak için alanı boş bırakın.")
	user := current.Clone()

	if v := a.prompter.ReadLine(fmt.Sprintf("Kullanıcı adı (%s): ", current.Username)); v != "" {
		user.Username = v
	}
	if v := a.prompter.ReadLine(fmt.Sprintf("Ad (%s): ", current.FirstName)); v != "" {
		user.FirstName = v
	}
	if v := a.prompter.ReadLine(fmt.Sprintf("Soyad (%s): ", current.LastName)); v != "" {
		user.LastName = v
	}
	if v := a.prompter.ReadLine(fmt.Sprintf("Rol (%s): ", current.Role)); v != "" {
		user.Role = domain.Role(v)
	}
	password := a.prompter.ReadLine("Yeni şifre (korumak için boş bırakın): ")

	return &session.Request{User: user, Password: password}, nil
}

func (a *App) promptField() string {
	fmt.Fprintln(a.out, "Kullanılabilir alanlar:")
	for _, name := range fields.Names() {
		fmt.Fprintf(a.out, "  %s\n", name)
	}
	return a.prompter.ReadLine("Alan adı: ")
}
