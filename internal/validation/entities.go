package validation

import "contactdesk/internal/domain"

// Display names used in field-scoped error messages and by the field registry.
const (
	FieldFirstName      = "Ad"
	FieldMiddleName     = "İkinci ad"
	FieldLastName       = "Soyad"
	FieldNickname       = "Takma ad"
	FieldPhonePrimary   = "Birincil telefon"
	FieldPhoneSecondary = "İkincil telefon"
	FieldEmail          = "E-posta"
	FieldLinkedinURL    = "LinkedIn adresi"
	FieldBirthDate      = "Doğum tarihi"
	FieldUsername       = "Kullanıcı adı"
	FieldPassword       = "Şifre"
)

// Contact checks every field of a contact. The first failing field wins;
// callers render the error and keep the session running.
func Contact(c *domain.Contact) *domain.ValidationError {
	if err := Name(FieldFirstName, c.FirstName, true, MaxNameLength); err != nil {
		return err
	}
	if err := Name(FieldMiddleName, c.MiddleName, false, MaxNameLength); err != nil {
		return err
	}
	if err := Name(FieldLastName, c.LastName, true, MaxNameLength); err != nil {
		return err
	}
	if err := Name(FieldNickname, c.Nickname, false, MaxNicknameLength); err != nil {
		return err
	}
	if err := Phone(FieldPhonePrimary, c.PhonePrimary, true); err != nil {
		return err
	}
	if err := Phone(FieldPhoneSecondary, c.PhoneSecondary, false); err != nil {
		return err
	}
	if err := Email(FieldEmail, c.Email); err != nil {
		return err
	}
	if err := LinkedinURL(FieldLinkedinURL, c.LinkedinURL); err != nil {
		return err
	}
	if c.BirthDate != nil {
		if err := CheckBirthDate(FieldBirthDate, *c.BirthDate); err != nil {
			return err
		}
	}
	return nil
}

// User checks the account fields that operators can set by hand.
func User(u *domain.User) *domain.ValidationError {
	if u.Username == "" {
		return fail(FieldUsername, "boş olamaz")
	}
	if err := Name(FieldFirstName, u.FirstName, true, MaxNameLength); err != nil {
		return err
	}
	if err := Name(FieldLastName, u.LastName, true, MaxNameLength); err != nil {
		return err
	}
	return nil
}

// Password applies the minimal credential rule before hashing.
func Password(password string) *domain.ValidationError {
	if password == "" {
		return fail(FieldPassword, "boş olamaz")
	}
	return nil
}
