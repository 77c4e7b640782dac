package cli

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"text/tabwriter"

	"contactdesk/internal/domain"
	"contactdesk/internal/session"
	"contactdesk/internal/validation"
)

// Renderer formats the session's structured results for the terminal. The
// core never writes terminal output itself.
type Renderer struct {
	out io.Writer
}

func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

func (r *Renderer) Menu(user *domain.User, table *session.CapabilityTable) {
	roleTitle := strings.ToUpper(strings.ReplaceAll(string(table.Role()), "_", " "))
	fmt.Fprintf(r.out, "\n===== %s MENÜSÜ - %s =====\n", roleTitle, user.FullName())
	for _, cmd := range table.Commands() {
		fmt.Fprintf(r.out, "[%d] %s\n", int(cmd), cmd.Label())
	}
}

func (r *Renderer) Result(result *session.Result) {
	if result == nil {
		return
	}
	if result.Message != "" {
		fmt.Fprintln(r.out, result.Message)
	}
	if result.Contacts != nil {
		r.Contacts(result.Contacts)
	}
	if result.Users != nil {
		r.Users(result.Users)
	}
	if result.Stats != nil {
		r.Stats(result.Stats)
	}
	if result.Logs != nil {
		r.Logs(result.Logs)
	}
}

func (r *Renderer) Error(err error) {
	fmt.Fprintf(r.out, "Hata: %v\n", err)
}

func (r *Renderer) Contacts(contacts []*domain.Contact) {
	if len(contacts) == 0 {
		fmt.Fprintln(r.out, "Kayıtlı kişi bulunamadı.")
		return
	}

	w := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NO\tAD\tSOYAD\tTAKMA AD\tTELEFON\tE-POSTA\tDOĞUM TARİHİ")
	for _, c := range contacts {
		birth := "-"
		if c.BirthDate != nil {
			birth = c.BirthDate.Format(validation.DateLayout)
		}
		nickname := c.Nickname
		if nickname == "" {
			nickname = "-"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			c.ID, c.FirstName, c.LastName, nickname, c.PhonePrimary, c.Email, birth)
	}
	w.Flush()
	fmt.Fprintf(r.out, "%d kişi listelendi.\n", len(contacts))
}

func (r *Renderer) Users(users []*domain.User) {
	if len(users) == 0 {
		fmt.Fprintln(r.out, "Kayıtlı kullanıcı bulunamadı.")
		return
	}

	w := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NO\tKULLANICI ADI\tAD SOYAD\tROL")
	for _, u := range users {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", u.ID, u.Username, u.FullName(), u.Role)
	}
	w.Flush()
}

func (r *Renderer) Logs(logs []*domain.AuditLog) {
	if len(logs) == 0 {
		fmt.Fprintln(r.out, "Denetim kaydı bulunamadı.")
		return
	}

	w := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NO\tTARİH\tVARLIK\tİŞLEM\tAYRINTI")
	for _, entry := range logs {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			entry.ID, entry.CreatedAt.Format("2006-01-02 15:04:05"),
			entry.EntityType, entry.Action, entry.Details)
	}
	w.Flush()
}

func (r *Renderer) Stats(stats *domain.Statistics) {
	fmt.Fprintln(r.out, "=== KİŞİ VE KULLANICI İSTATİSTİKLERİ ===")
	fmt.Fprintf(r.out, "%-28s: %d\n", "Toplam kullanıcı", stats.TotalUsers)
	for role, count := range stats.UsersByRole {
		fmt.Fprintf(r.out, "%-28s: %d\n", "  "+string(role), count)
	}
	fmt.Fprintf(r.out, "%-28s: %d\n", "Toplam kişi", stats.TotalContacts)
	fmt.Fprintf(r.out, "%-28s: %d\n", "Bu ay doğum günü olan", stats.BirthdaysThisMonth)
	fmt.Fprintf(r.out, "%-28s: %d\n", "LinkedIn profili olan", stats.WithLinkedin)
	fmt.Fprintf(r.out, "%-28s: %d\n", "Yetişkin kişi", stats.AdultContacts)
	printCounts(r.out, "Ad dağılımı", stats.FirstNameCounts)
	printCounts(r.out, "Soyad dağılımı", stats.LastNameCounts)
	printCounts(r.out, "E-posta alan adları", stats.EmailDomainCounts)
}

func printCounts(out io.Writer, title string, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	fmt.Fprintf(out, "%s:\n", title)
	keys := make([]string, 0, len(counts))
	for key := range counts {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(out, "%-28s: %d\n", "  "+key, counts[key])
	}
}
