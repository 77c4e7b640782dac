package session

import "contactdesk/internal/domain"

// Command is a numeric menu command code. Code 0 is the universal logout
// sentinel, valid in every role's table.
type Command int

const (
	CommandLogout         Command = 0
	CommandChangePassword Command = 1
	CommandListContacts   Command = 2
	CommandSearchSingle   Command = 3
	CommandSearchMulti    Command = 4
	CommandSortContacts   Command = 5
	CommandUpdateContact  Command = 6
	CommandAddContact     Command = 7
	CommandDeleteContact  Command = 8
	CommandUndo           Command = 9
	CommandViewStats      Command = 10
	CommandListUsers      Command = 11
	CommandAddUser        Command = 12
	CommandUpdateUser     Command = 13
	CommandDeleteUser     Command = 14
	CommandViewAuditLog   Command = 15
)

var commandLabels = map[Command]string{
	CommandLogout:         "Çıkış yap",
	CommandChangePassword: "Şifre değiştir",
	CommandListContacts:   "Tüm kişileri listele",
	CommandSearchSingle:   "Kişi ara (tek alan)",
	CommandSearchMulti:    "Kişi ara (çoklu alan)",
	CommandSortContacts:   "Kişileri sırala",
	CommandUpdateContact:  "Kişi güncelle",
	CommandAddContact:     "Kişi ekle",
	CommandDeleteContact:  "Kişi sil",
	CommandUndo:           "Son işlemi geri al",
	CommandViewStats:      "İstatistikleri görüntüle",
	CommandListUsers:      "Tüm kullanıcıları listele",
	CommandAddUser:        "Kullanıcı ekle",
	CommandUpdateUser:     "Kullanıcı güncelle",
	CommandDeleteUser:     "Kullanıcı sil",
	CommandViewAuditLog:   "Denetim kayıtlarını görüntüle",
}

func (c Command) Label() string {
	return commandLabels[c]
}

// CapabilityTable is a role's fixed command set. Tables are built once at
// package init and never mutated.
type CapabilityTable struct {
	role     domain.Role
	commands []Command
	allowed  map[Command]bool
}

func newCapabilityTable(role domain.Role, commands ...Command) *CapabilityTable {
	allowed := make(map[Command]bool, len(commands))
	for _, cmd := range commands {
		allowed[cmd] = true
	}
	return &CapabilityTable{role: role, commands: commands, allowed: allowed}
}

func (t *CapabilityTable) Role() domain.Role {
	return t.role
}

func (t *CapabilityTable) Allows(cmd Command) bool {
	return t.allowed[cmd]
}

// Commands returns the table's command codes in menu order.
func (t *CapabilityTable) Commands() []Command {
	out := make([]Command, len(t.commands))
	copy(out, t.commands)
	return out
}

// Role capability tables. Testers are strictly read-only (no undo: a role
// that cannot mutate has nothing to revert). Managers administer users and
// statistics only; contact CRUD stays with the developer roles.
var capabilityTables = map[domain.Role]*CapabilityTable{
	domain.RoleTester: newCapabilityTable(domain.RoleTester,
		CommandChangePassword,
		CommandListContacts,
		CommandSearchSingle,
		CommandSearchMulti,
		CommandSortContacts,
		CommandLogout,
	),
	domain.RoleJuniorDeveloper: newCapabilityTable(domain.RoleJuniorDeveloper,
		CommandChangePassword,
		CommandListContacts,
		CommandSearchSingle,
		CommandSearchMulti,
		CommandSortContacts,
		CommandUpdateContact,
		CommandUndo,
		CommandLogout,
	),
	domain.RoleSeniorDeveloper: newCapabilityTable(domain.RoleSeniorDeveloper,
		CommandChangePassword,
		CommandListContacts,
		CommandSearchSingle,
		CommandSearchMulti,
		CommandSortContacts,
		CommandUpdateContact,
		CommandAddContact,
		CommandDeleteContact,
		CommandUndo,
		CommandLogout,
	),
	domain.RoleManager: newCapabilityTable(domain.RoleManager,
		CommandChangePassword,
		CommandViewStats,
		CommandListUsers,
		CommandAddUser,
		CommandUpdateUser,
		CommandDeleteUser,
		CommandViewAuditLog,
		CommandUndo,
		CommandLogout,
	),
}

// TableForRole returns the role's fixed capability table.
func TableForRole(role domain.Role) (*CapabilityTable, bool) {
	table, ok := capabilityTables[role]
	return table, ok
}
