package domain

import (
	"strings"
	"time"
)

type Contact struct {
	ID             int64      `json:"id"`
	FirstName      string     `json:"first_name"`
	MiddleName     string     `json:"middle_name,omitempty"`
	LastName       string     `json:"last_name"`
	Nickname       string     `json:"nickname,omitempty"`
	PhonePrimary   string     `json:"phone_primary"`
	PhoneSecondary string     `json:"phone_secondary,omitempty"`
	Email          string     `json:"email"`
	LinkedinURL    string     `json:"linkedin_url,omitempty"`
	BirthDate      *time.Time `json:"birth_date,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// SearchCriterion is one field/value pair of a multi-field search.
// Criteria order is preserved so error messages point at the first bad field.
type SearchCriterion struct {
	Field string
	Value string
}

func (c *Contact) FullName() string {
	parts := []string{c.FirstName}
	if c.MiddleName != "" {
		parts = append(parts, c.MiddleName)
	}
	parts = append(parts, c.LastName)
	return strings.Join(parts, " ")
}

func (c *Contact) IsAdult() bool {
	if c.BirthDate == nil {
		return false
	}
	return c.BirthDate.AddDate(18, 0, 0).Before(time.Now())
}

// Clone returns a deep copy, used for undo snapshots so later mutations
// cannot reach the captured state.
func (c *Contact) Clone() *Contact {
	clone := *c
	if c.BirthDate != nil {
		birth := *c.BirthDate
		clone.BirthDate = &birth
	}
	return &clone
}

type ContactRepository interface {
	FindAll() ([]*Contact, error)
	FindByID(id int64) (*Contact, error)
	Create(contact *Contact) error
	Update(contact *Contact) error
	Delete(id int64) error
	// Restore writes a snapshot back whole, keeping its original identity.
	Restore(contact *Contact) error
	CountByEmail(email string, excludeID int64) (int, error)
	CountByPhone(phone string, excludeID int64) (int, error)
}

type ContactService interface {
	ListContacts() ([]*Contact, error)
	GetContact(id int64) (*Contact, error)
	SearchSingleField(field, value string) ([]*Contact, error)
	SearchMultiField(criteria []SearchCriterion) ([]*Contact, error)
	SortContacts(contacts []*Contact, field string, ascending bool) error
	CreateContact(contact *Contact) error
	UpdateContact(contact *Contact) error
	DeleteContact(id int64) error
	RestoreContact(contact *Contact) error
}
