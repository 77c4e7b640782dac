package factory

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"contactdesk/internal/auth"
	"contactdesk/internal/config"
	"contactdesk/internal/domain"
	"contactdesk/internal/repository"
	"contactdesk/internal/service"
	"contactdesk/pkg/logger"
)

type Factory interface {
	GetLogger() logger.Logger
	GetConfig() *config.Config
	GetDB() *sql.DB
	GetPasswordHasher() domain.PasswordHasher

	GetContactRepository() domain.ContactRepository
	GetUserRepository() domain.UserRepository
	GetAuditLogRepository() domain.AuditLogRepository

	GetContactService() domain.ContactService
	GetUserService() domain.UserService
	GetAuthService() domain.AuthService
	GetStatisticsService() domain.StatisticsService
	GetAuditLogService() domain.AuditLogService
}

type AppFactory struct {
	config *config.Config
	logger logger.Logger
	db     *sql.DB
	hasher domain.PasswordHasher

	contactRepository  domain.ContactRepository
	userRepository     domain.UserRepository
	auditLogRepository domain.AuditLogRepository

	contactService    domain.ContactService
	userService       domain.UserService
	authService       domain.AuthService
	statisticsService domain.StatisticsService
	auditLogService   domain.AuditLogService
}

func NewFactory() (Factory, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := logger.New(logger.LogLevel(cfg.LogLevel), nil)

	db, err := sql.Open("sqlite3", cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("veritabanı bağlantısı kurulamadı: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("veritabanı bağlantısı test edilemedi: %w", err)
	}

	factory := &AppFactory{
		config: cfg,
		logger: log,
		db:     db,
		hasher: auth.NewBcryptHasher(),
	}

	factory.initRepositories()
	factory.initServices()

	return factory, nil
}

func (f *AppFactory) initRepositories() {
	f.contactRepository = repository.NewContactRepository(f.db, f.logger)
	f.userRepository = repository.NewUserRepository(f.db, f.logger)
	f.auditLogRepository = repository.NewAuditLogRepository(f.db, f.logger)
}

func (f *AppFactory) initServices() {
	f.contactService = service.NewContactService(f.contactRepository, f.auditLogRepository, f.logger)
	f.userService = service.NewUserService(f.userRepository, f.auditLogRepository, f.hasher, f.logger)
	f.authService = service.NewAuthService(f.userRepository, f.hasher, f.logger)
	f.statisticsService = service.NewStatisticsService(f.userRepository, f.contactRepository, f.logger)
	f.auditLogService = service.NewAuditLogService(f.auditLogRepository, f.logger)
}

func (f *AppFactory) GetLogger() logger.Logger {
	return f.logger
}

func (f *AppFactory) GetConfig() *config.Config {
	return f.config
}

func (f *AppFactory) GetDB() *sql.DB {
	return f.db
}

func (f *AppFactory) GetPasswordHasher() domain.PasswordHasher {
	return f.hasher
}

func (f *AppFactory) GetContactRepository() domain.ContactRepository {
	return f.contactRepository
}

func (f *AppFactory) GetUserRepository() domain.UserRepository {
	return f.userRepository
}

func (f *AppFactory) GetAuditLogRepository() domain.AuditLogRepository {
	return f.auditLogRepository
}

func (f *AppFactory) GetContactService() domain.ContactService {
	return f.contactService
}

func (f *AppFactory) GetUserService() domain.UserService {
	return f.userService
}

func (f *AppFactory) GetAuthService() domain.AuthService {
	return f.authService
}

func (f *AppFactory) GetStatisticsService() domain.StatisticsService {
	return f.statisticsService
}

func (f *AppFactory) GetAuditLogService() domain.AuditLogService {
	return f.auditLogService
}
