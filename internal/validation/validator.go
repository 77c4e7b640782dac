package validation

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"contactdesk/internal/domain"
)

// DateLayout is the only accepted birth date input format.
const DateLayout = "2006-01-02"

const (
	MaxNameLength     = 50
	MaxNicknameLength = 40
	maxAgeYears       = 150
)

var (
	phonePattern    = regexp.MustCompile(`^\+\d{8,15}$`)
	emailPattern    = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w{2,}$`)
	linkedinPattern = regexp.MustCompile(`^https?://(www\.)?linkedin\.com/.*$`)
)

// phoneCountryCodes is the closed set of accepted international prefixes
// with the exact national digit count each one requires. Ordered longest
// prefix first so +234 is never consumed as +2.
var phoneCountryCodes = []struct {
	code   string
	digits int
}{
	{"234", 10},
	{"20", 10},
	{"44", 10},
	{"55", 11},
	{"81", 10},
	{"86", 11},
	{"90", 10},
	{"91", 10},
	{"1", 10},
	{"7", 10},
}

// allowedEmailDomains is the closed set of accepted mail providers. A
// well-formed address outside this set is still rejected.
var allowedEmailDomains = []string{
	"@gmail.com",
	"@outlook.com",
	"@hotmail.com",
	"@yahoo.com",
	"@protonmail.com",
}

func fail(field, format string, args ...interface{}) *domain.ValidationError {
	return &domain.ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

func lettersOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// Name checks a single name-like field. Optional fields pass when empty;
// everything else must be letters only and within maxLen runes.
func Name(field, value string, required bool, maxLen int) *domain.ValidationError {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		if required {
			return fail(field, "boş olamaz")
		}
		return nil
	}
	if len([]rune(trimmed)) > maxLen {
		return fail(field, "en fazla %d karakter olabilir (girilen: %d)", maxLen, len([]rune(trimmed)))
	}
	if !lettersOnly(trimmed) {
		return fail(field, "yalnızca harflerden oluşmalıdır")
	}
	return nil
}

// Phone checks the E.164-like shape, then the country-code allow-list and
// the per-code national digit count. Any other prefix or length fails,
// numeric-looking or not.
func Phone(field, value string, required bool) *domain.ValidationError {
	if value == "" {
		if required {
			return fail(field, "boş olamaz")
		}
		return nil
	}
	if !phonePattern.MatchString(value) {
		return fail(field, "+<ülke kodu><numara> biçiminde olmalıdır")
	}
	digits := value[1:]
	for _, cc := range phoneCountryCodes {
		if strings.HasPrefix(digits, cc.code) {
			rest := digits[len(cc.code):]
			if len(rest) != cc.digits {
				return fail(field, "+%s ülke kodu için %d haneli numara bekleniyor", cc.code, cc.digits)
			}
			return nil
		}
	}
	return fail(field, "ülke kodu desteklenmiyor")
}

// Email checks the general shape and then the provider allow-list.
func Email(field, value string) *domain.ValidationError {
	if value == "" {
		return fail(field, "boş olamaz")
	}
	if !emailPattern.MatchString(value) {
		return fail(field, "geçerli bir e-posta adresi değil")
	}
	lower := strings.ToLower(value)
	for _, domainSuffix := range allowedEmailDomains {
		if strings.HasSuffix(lower, domainSuffix) {
			return nil
		}
	}
	return fail(field, "e-posta sağlayıcısına izin verilmiyor")
}

// LinkedinURL is optional; when present it must be a LinkedIn profile URL.
func LinkedinURL(field, value string) *domain.ValidationError {
	if value == "" {
		return nil
	}
	if !linkedinPattern.MatchString(value) {
		return fail(field, "geçerli bir LinkedIn adresi değil")
	}
	return nil
}

// BirthDate parses value and checks it is strictly in the past and at most
// 150 years ago. Returns the parsed date on success.
func BirthDate(field, value string) (time.Time, *domain.ValidationError) {
	parsed, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fail(field, "geçersiz tarih biçimi (beklenen: yyyy-aa-gg)")
	}
	if verr := CheckBirthDate(field, parsed); verr != nil {
		return time.Time{}, verr
	}
	return parsed, nil
}

// CheckBirthDate applies the range rules to an already-parsed date.
func CheckBirthDate(field string, date time.Time) *domain.ValidationError {
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	date = time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	if !date.Before(today) {
		return fail(field, "bugünden önce bir tarih olmalıdır")
	}
	if date.Before(today.AddDate(-maxAgeYears, 0, 0)) {
		return fail(field, "%d yıldan daha eski olamaz", maxAgeYears)
	}
	return nil
}

// FormatName capitalizes the first letter of every space- or hyphen-delimited
// segment and lowercases the rest. Applied before validation and storage.
func FormatName(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return name
	}

	var formatted strings.Builder
	capitalizeNext := true

	for _, r := range name {
		switch {
		case unicode.IsSpace(r) || r == '-':
			formatted.WriteRune(r)
			capitalizeNext = true
		case capitalizeNext:
			formatted.WriteRune(unicode.ToUpper(r))
			capitalizeNext = false
		default:
			formatted.WriteRune(unicode.ToLower(r))
		}
	}

	return formatted.String()
}
