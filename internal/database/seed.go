package database

import (
	"database/sql"
	"fmt"
	"time"

	"contactdesk/internal/config"
	"contactdesk/internal/domain"
	"contactdesk/pkg/logger"
)

// SeedAdminUser creates the initial manager account when the users table is
// empty, so a fresh database is never unreachable.
func SeedAdminUser(db *sql.DB, hasher domain.PasswordHasher, cfg config.SeedConfig, log logger.Logger) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count); err != nil {
		return fmt.Errorf("kullanıcı sayısı okunamadı: %w", err)
	}
	if count > 0 {
		return nil
	}

	hash, err := hasher.Hash(cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("başlangıç şifresi işlenemedi: %w", err)
	}

	query := `
		INSERT INTO users (username, password_hash, first_name, last_name, user_role, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err = db.Exec(query, cfg.AdminUsername, hash, "Sistem", "Yöneticisi", string(domain.RoleManager), time.Now())
	if err != nil {
		return fmt.Errorf("başlangıç kullanıcısı oluşturulamadı: %w", err)
	}

	log.Info("Başlangıç yönetici hesabı oluşturuldu", map[string]interface{}{"username": cfg.AdminUsername})
	return nil
}
