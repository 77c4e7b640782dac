package repository

import (
	"database/sql"
	"time"

	"contactdesk/internal/domain"
	"contactdesk/pkg/logger"
)

type UserRepository struct {
	db     *sql.DB
	logger logger.Logger
}

func NewUserRepository(db *sql.DB, logger logger.Logger) domain.UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger,
	}
}

const userColumns = `user_id, username, password_hash, first_name, last_name, user_role, created_at`

func scanUser(row interface{ Scan(...interface{}) error }) (*domain.User, error) {
	var user domain.User
	var role string

	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.FirstName,
		&user.LastName,
		&role,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	user.Role = domain.Role(role)
	return &user, nil
}

func (r *UserRepository) FindAll() ([]*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY user_id`

	rows, err := r.db.Query(query)
	if err != nil {
		r.logger.Error("Kullanıcılar yüklenemedi", map[string]interface{}{"error": err.Error()})
		return nil, domain.StorageErr(err)
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			r.logger.Error("Kullanıcı satırı okunamadı", map[string]interface{}{"error": err.Error()})
			return nil, domain.StorageErr(err)
		}
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, domain.StorageErr(err)
	}

	return users, nil
}

func (r *UserRepository) FindByID(id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = ?`

	user, err := scanUser(r.db.QueryRow(query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.Error("Kullanıcı ID'ye göre bulunamadı", map[string]interface{}{"id": id, "error": err.Error()})
		return nil, domain.StorageErr(err)
	}

	return user, nil
}

func (r *UserRepository) FindByUsername(username string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = ?`

	user, err := scanUser(r.db.QueryRow(query, username))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		r.logger.Error("Kullanıcı adına göre bulunamadı", map[string]interface{}{"username": username, "error": err.Error()})
		return nil, domain.StorageErr(err)
	}

	return user, nil
}

func (r *UserRepository) Create(user *domain.User) error {
	query := `
		INSERT INTO users (username, password_hash, first_name, last_name, user_role, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	user.CreatedAt = time.Now()

	result, err := r.db.Exec(
		query,
		user.Username,
		user.PasswordHash,
		user.FirstName,
		user.LastName,
		string(user.Role),
		user.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Kullanıcı oluşturulamadı", map[string]interface{}{"error": err.Error()})
		return domain.StorageErr(err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return domain.StorageErr(err)
	}
	user.ID = id

	return nil
}

func (r *UserRepository) Update(user *domain.User) error {
	query := `
		UPDATE users
		SET username = ?, password_hash = ?, first_name = ?, last_name = ?, user_role = ?
		WHERE user_id = ?
	`

	_, err := r.db.Exec(
		query,
		user.Username,
		user.PasswordHash,
		user.FirstName,
		user.LastName,
		string(user.Role),
		user.ID,
	)
	if err != nil {
		r.logger.Error("Kullanıcı güncellenemedi", map[string]interface{}{"id": user.ID, "error": err.Error()})
		return domain.StorageErr(err)
	}

	return nil
}

func (r *UserRepository) Restore(user *domain.User) error {
	query := `
		INSERT OR REPLACE INTO users (user_id, username, password_hash, first_name, last_name, user_role, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(
		query,
		user.ID,
		user.Username,
		user.PasswordHash,
		user.FirstName,
		user.LastName,
		string(user.Role),
		user.CreatedAt,
	)
	if err != nil {
		r.logger.Error("Kullanıcı geri yüklenemedi", map[string]interface{}{"id": user.ID, "error": err.Error()})
		return domain.StorageErr(err)
	}

	return nil
}

func (r *UserRepository) Delete(id int64) error {
	query := `DELETE FROM users WHERE user_id = ?`

	_, err := r.db.Exec(query, id)
	if err != nil {
		r.logger.Error("Kullanıcı silinemedi", map[string]interface{}{"id": id, "error": err.Error()})
		return domain.StorageErr(err)
	}

	return nil
}
