package repository

import (
	"database/sql"
	"time"

	"contactdesk/internal/domain"
	"contactdesk/pkg/logger"
)

type ContactRepository struct {
	db     *sql.DB
	logger logger.Logger
}

func NewContactRepository(db *sql.DB, logger logger.Logger) domain.ContactRepository {
	return &ContactRepository{
		db:     db,
		logger: logger,
	}
}

const contactColumns = `contact_id, first_name, middle_name, last_name, nickname,
	phone_primary, phone_secondary, email, linkedin_url, birth_date, created_at, updated_at`

func scanContact(row interface{ Scan(...interface{}) error }) (*domain.Contact, error) {
	var contact domain.Contact
	var birthDate sql.NullTime

	err := row.Scan(
		&contact.ID,
		&contact.FirstName,
		&contact.MiddleName,
		&contact.LastName,
		&contact.Nickname,
		&contact.PhonePrimary,
		&contact.PhoneSecondary,
		&contact.Email,
		&contact.LinkedinURL,
		&birthDate,
		&contact.CreatedAt,
		&contact.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if birthDate.Valid {
		birth := birthDate.Time
		contact.BirthDate = &birth
	}

	return &contact, nil
}

func nullableDate(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return *t
}

func (r *ContactRepository) FindAll() ([]*domain.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts ORDER BY contact_id`

	rows, err := r.db.Query(query)
	if err != nil {
		r.logger.Error("Kişiler yüklenemedi", map[string]interface{}{"error": err.Error()})
		return nil, domain.StorageErr(err)
	}
	defer rows.Close()

	var contacts []*domain.Contact
	for rows.Next() {
		contact, err := scanContact(rows)
		if err != nil {
			r.logger.Error("Kişi satırı okunamadı", map[string]interface{}{"error": err.Error()})
			return nil, domain.StorageErr(err)
		}
		contacts = append(contacts, contact)
	}

	if err := rows.Err(); err != nil {
		return nil, domain.StorageErr(err)
	}

	return contacts, nil
}

func (r *ContactRepository) FindByID(id int64) (*domain.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE contact_id = ?`

	contact, err := scanContact(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.Error("Kişi ID'ye göre bulunamadı", map[string]interface{}{"id": id, "error": err.Error()})
		return nil, domain.StorageErr(err)
	}

	return contact, nil
}

func (r *ContactRepository) Create(contact *domain.Contact) error {
	query := `
		INSERT INTO contacts (first_name, middle_name, last_name, nickname,
			phone_primary, phone_secondary, email, linkedin_url, birth_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	now := time.Now()
	contact.CreatedAt = now
	contact.UpdatedAt = now

	result, err := r.db.Exec(
		query,
		contact.FirstName,
		contact.MiddleName,
		contact.LastName,
		contact.Nickname,
		contact.PhonePrimary,
		contact.PhoneSecondary,
		contact.Email,
		contact.LinkedinURL,
		nullableDate(contact.BirthDate),
		contact.CreatedAt,
		contact.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("Kişi oluşturulamadı", map[string]interface{}{"error": err.Error()})
		return domain.StorageErr(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.StorageErr(err)
	}
	contact.ID = id

	return nil
}

func (r *ContactRepository) Update(contact *domain.Contact) error {
	query := `
		UPDATE contacts
		SET first_name = ?, middle_name = ?, last_name = ?, nickname = ?,
			phone_primary = ?, phone_secondary = ?, email = ?, linkedin_url = ?,
			birth_date = ?, updated_at = ?
		WHERE contact_id = ?
	`

	contact.UpdatedAt = time.Now()

	_, err := r.db.Exec(
		query,
		contact.FirstName,
		contact.MiddleName,
		contact.LastName,
		contact.Nickname,
		contact.PhonePrimary,
		contact.PhoneSecondary,
		contact.Email,
		contact.LinkedinURL,
		nullableDate(contact.BirthDate),
		contact.UpdatedAt,
		contact.ID,
	)
	if err != nil {
		r.logger.Error("Kişi güncellenemedi", map[string]interface{}{"id": contact.ID, "error": err.Error()})
		return domain.StorageErr(err)
	}

	return nil
}

func (r *ContactRepository) Restore(contact *domain.Contact) error {
	query := `
		INSERT OR REPLACE INTO contacts (contact_id, first_name, middle_name, last_name, nickname,
			phone_primary, phone_secondary, email, linkedin_url, birth_date, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	contact.UpdatedAt = time.Now()

	_, err := r.db.Exec(
		query,
		contact.ID,
		contact.FirstName,
		contact.MiddleName,
		contact.LastName,
		contact.Nickname,
		contact.PhonePrimary,
		contact.PhoneSecondary,
		contact.Email,
		contact.LinkedinURL,
		nullableDate(contact.BirthDate),
		contact.CreatedAt,
		contact.UpdatedAt,
	)
	if err != nil {
		r.logger.Error("Kişi geri yüklenemedi", map[string]interface{}{"id": contact.ID, "error": err.Error()})
		return domain.StorageErr(err)
	}

	return nil
}

func (r *ContactRepository) Delete(id int64) error {
	query := `DELETE FROM contacts WHERE contact_id = ?`

	_, err := r.db.Exec(query, id)
	if err != nil {
		r.logger.Error("Kişi silinemedi", map[string]interface{}{"id": id, "error": err.Error()})
		return domain.StorageErr(err)
	}

	return nil
}

func (r *ContactRepository) CountByEmail(email string, excludeID int64) (int, error) {
	query := `SELECT COUNT(*) FROM contacts WHERE LOWER(email) = LOWER(?) AND contact_id != ?`

	var count int
	if err := r.db.QueryRow(query, email, excludeID).Scan(&count); err != nil {
		r.logger.Error("E-posta kontrolü yapılamadı", map[string]interface{}{"error": err.Error()})
		return 0, domain.StorageErr(err)
	}

	return count, nil
}

func (r *ContactRepository) CountByPhone(phone string, excludeID int64) (int, error) {
	query := `SELECT COUNT(*) FROM contacts WHERE (phone_primary = ? OR phone_secondary = ?) AND contact_id != ?`

	var count int
	if err := r.db.QueryRow(query, phone, phone, excludeID).Scan(&count); err != nil {
		r.logger.Error("Telefon kontrolü yapılamadı", map[string]interface{}{"error": err.Error()})
		return 0, domain.StorageErr(err)
	}

	return count, nil
}
