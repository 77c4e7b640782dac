package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownField        = errors.New("bilinmeyen alan adı")
	ErrEmptyCriteria       = errors.New("arama kriteri boş olamaz")
	ErrDuplicateValue      = errors.New("bu değer başka bir kayıtta kullanılıyor")
	ErrNothingToUndo       = errors.New("geri alınacak işlem yok")
	ErrUnauthorizedCommand = errors.New("bu komut için yetkiniz yok")
	ErrStorage             = errors.New("veritabanı hatası")
	ErrContactNotFound     = errors.New("kişi bulunamadı")
	ErrUserNotFound        = errors.New("kullanıcı bulunamadı")
	ErrInvalidCredentials  = errors.New("geçersiz kullanıcı adı veya şifre")
)

// ValidationError is a field-scoped validation failure. Field holds the
// display name shown to the operator, Reason the human-readable cause.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// StorageErr wraps a driver error so callers can match ErrStorage without
// caring whether the failure was a connection, permission or constraint.
func StorageErr(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %v", ErrStorage, err)
}
