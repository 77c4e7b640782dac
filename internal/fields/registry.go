// Package fields is the single source of truth binding a logical contact
// field name to its extractor, sort comparator and validating mutator.
// Query, sorter and update paths all resolve field names here, so an
// unknown name is one structured error instead of a stray string match.
package fields

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"contactdesk/internal/domain"
	"contactdesk/internal/validation"
)

type Binding struct {
	Name    string
	Display string
	// Exact marks fields matched exactly in searches instead of by substring.
	Exact   bool
	Extract func(c *domain.Contact) string
	Compare func(a, b *domain.Contact) int
	Apply   func(c *domain.Contact, value string) error
}

var bindings = map[string]*Binding{}
var aliases = map[string]string{
	"id":         "contact_id",
	"contactid":  "contact_id",
	"firstname":  "first_name",
	"middlename": "middle_name",
	"lastname":   "last_name",
	"phone":      "phone_primary",
	"phone1":     "phone_primary",
	"phone2":     "phone_secondary",
	"mail":       "email",
	"linkedin":   "linkedin_url",
	"birthdate":  "birth_date",
}

func register(b *Binding) {
	bindings[b.Name] = b
}

func immutable(display string) func(*domain.Contact, string) error {
	return func(*domain.Contact, string) error {
		return &domain.ValidationError{Field: display, Reason: "değiştirilemez"}
	}
}

func compareStrings(a, b string) int {
	return strings.Compare(strings.ToLower(a), strings.ToLower(b))
}

// compareDates orders chronologically with missing dates after every value.
func compareDates(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return a.Compare(*b)
	}
}

func stringField(name, display string, extract func(*domain.Contact) string, apply func(*domain.Contact, string) error) *Binding {
	return &Binding{
		Name:    name,
		Display: display,
		Extract: extract,
		Compare: func(a, b *domain.Contact) int { return compareStrings(extract(a), extract(b)) },
		Apply:   apply,
	}
}

func nameApply(display string, required bool, maxLen int, set func(*domain.Contact, string)) func(*domain.Contact, string) error {
	return func(c *domain.Contact, value string) error {
		formatted := validation.FormatName(value)
		if err := validation.Name(display, formatted, required, maxLen); err != nil {
			return err
		}
		set(c, formatted)
		return nil
	}
}

func init() {
	register(&Binding{
		Name:    "contact_id",
		Display: "Kişi no",
		Exact:   true,
		Extract: func(c *domain.Contact) string { return strconv.FormatInt(c.ID, 10) },
		Compare: func(a, b *domain.Contact) int {
			switch {
			case a.ID < b.ID:
				return -1
			case a.ID > b.ID:
				return 1
			default:
				return 0
			}
		},
		Apply: immutable("Kişi no"),
	})

	register(stringField("first_name", validation.FieldFirstName,
		func(c *domain.Contact) string { return c.FirstName },
		nameApply(validation.FieldFirstName, true, validation.MaxNameLength,
			func(c *domain.Contact, v string) { c.FirstName = v })))

	register(stringField("middle_name", validation.FieldMiddleName,
		func(c *domain.Contact) string { return c.MiddleName },
		nameApply(validation.FieldMiddleName, false, validation.MaxNameLength,
			func(c *domain.Contact, v string) { c.MiddleName = v })))

	register(stringField("last_name", validation.FieldLastName,
		func(c *domain.Contact) string { return c.LastName },
		nameApply(validation.FieldLastName, true, validation.MaxNameLength,
			func(c *domain.Contact, v string) { c.LastName = v })))

	register(stringField("nickname", validation.FieldNickname,
		func(c *domain.Contact) string { return c.Nickname },
		nameApply(validation.FieldNickname, false, validation.MaxNicknameLength,
			func(c *domain.Contact, v string) { c.Nickname = v })))

	register(stringField("phone_primary", validation.FieldPhonePrimary,
		func(c *domain.Contact) string { return c.PhonePrimary },
		func(c *domain.Contact, value string) error {
			if err := validation.Phone(validation.FieldPhonePrimary, value, true); err != nil {
				return err
			}
			c.PhonePrimary = value
			return nil
		}))

	register(stringField("phone_secondary", validation.FieldPhoneSecondary,
		func(c *domain.Contact) string { return c.PhoneSecondary },
		func(c *domain.Contact, value string) error {
			if err := validation.Phone(validation.FieldPhoneSecondary, value, false); err != nil {
				return err
			}
			c.PhoneSecondary = value
			return nil
		}))

	register(stringField("email", validation.FieldEmail,
		func(c *domain.Contact) string { return c.Email },
		func(c *domain.Contact, value string) error {
			if err := validation.Email(validation.FieldEmail, value); err != nil {
				return err
			}
			c.Email = value
			return nil
		}))

	register(stringField("linkedin_url", validation.FieldLinkedinURL,
		func(c *domain.Contact) string { return c.LinkedinURL },
		func(c *domain.Contact, value string) error {
			if err := validation.LinkedinURL(validation.FieldLinkedinURL, value); err != nil {
				return err
			}
			c.LinkedinURL = value
			return nil
		}))

	register(&Binding{
		Name:    "birth_date",
		Display: validation.FieldBirthDate,
		Extract: func(c *domain.Contact) string {
			if c.BirthDate == nil {
				return ""
			}
			return c.BirthDate.Format(validation.DateLayout)
		},
		Compare: func(a, b *domain.Contact) int { return compareDates(a.BirthDate, b.BirthDate) },
		Apply: func(c *domain.Contact, value string) error {
			if value == "" {
				c.BirthDate = nil
				return nil
			}
			parsed, verr := validation.BirthDate(validation.FieldBirthDate, value)
			if verr != nil {
				return verr
			}
			c.BirthDate = &parsed
			return nil
		},
	})
}

// Resolve maps a case-insensitive field name or alias to its binding.
func Resolve(name string) (*Binding, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[key]; ok {
		key = canonical
	}
	if b, ok := bindings[key]; ok {
		return b, nil
	}
	return nil, fmt.Errorf("%w: %q", domain.ErrUnknownField, name)
}

// Names returns the canonical field names in stable order, for menus.
func Names() []string {
	names := make([]string, 0, len(bindings))
	for name := range bindings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
