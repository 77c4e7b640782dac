package service

import (
	"fmt"

	"contactdesk/internal/domain"
	"contactdesk/internal/validation"
	"contactdesk/pkg/logger"
)

type UserService struct {
	repo         domain.UserRepository
	auditLogRepo domain.AuditLogRepository
	hasher       domain.PasswordHasher
	logger       logger.Logger
}

func NewUserService(
	repo domain.UserRepository,
	auditLogRepo domain.AuditLogRepository,
	hasher domain.PasswordHasher,
	logger logger.Logger,
) domain.UserService {
	return &UserService{
		repo:         repo,
		auditLogRepo: auditLogRepo,
		hasher:       hasher,
		logger:       logger,
	}
}

func (s *UserService) ListUsers() ([]*domain.User, error) {
	users, err := s.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("kullanıcılar listelenemedi: %w", err)
	}
	return users, nil
}

func (s *UserService) GetUser(id int64) (*domain.User, error) {
	user, err := s.repo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("kullanıcı yüklenemedi: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: %d", domain.ErrUserNotFound, id)
	}
	return user, nil
}

func (s *UserService) CreateUser(user *domain.User, password string) error {
	user.FirstName = validation.FormatName(user.FirstName)
	user.LastName = validation.FormatName(user.LastName)

	if verr := validation.User(user); verr != nil {
		return verr
	}
	if verr := validation.Password(password); verr != nil {
		return verr
	}

	role, err := domain.ParseRole(string(user.Role))
	if err != nil {
		return err
	}
	user.Role = role

	existing, err := s.repo.FindByUsername(user.Username)
	if err != nil {
		return fmt.Errorf("kullanıcı adı kontrolü yapılamadı: %w", err)
	}
	if existing != nil {
		return fmt.Errorf("%w (%s: %s)", domain.ErrDuplicateValue, validation.FieldUsername, user.Username)
	}

	user.PasswordHash, err = s.hasher.Hash(password)
	if err != nil {
		return fmt.Errorf("şifre işlenemedi: %w", err)
	}

	if err := s.repo.Create(user); err != nil {
		s.logger.Error("Kullanıcı oluşturma sırasında hata oluştu", map[string]interface{}{"error": err.Error()})
		return fmt.Errorf("kullanıcı oluşturulamadı: %w", err)
	}

	s.audit(domain.ActionTypeCreate, user.ID, fmt.Sprintf("Kullanıcı oluşturuldu: %s", user.Username))
	return nil
}

func (s *UserService) UpdateUser(user *domain.User, newPassword string) error {
	existing, err := s.repo.FindByID(user.ID)
	if err != nil {
		return fmt.Errorf("kullanıcı güncellenemedi: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("%w: %d", domain.ErrUserNotFound, user.ID)
	}

	user.FirstName = validation.FormatName(user.FirstName)
	user.LastName = validation.FormatName(user.LastName)

	if verr := validation.User(user); verr != nil {
		return verr
	}

	role, err := domain.ParseRole(string(user.Role))
	if err != nil {
		return err
	}
	user.Role = role

	if existing.Username != user.Username {
		sameName, err := s.repo.FindByUsername(user.Username)
		if err != nil {
			return fmt.Errorf("kullanıcı adı kontrolü yapılamadı: %w", err)
		}
		if sameName != nil {
			return fmt.Errorf("%w (%s: %s)", domain.ErrDuplicateValue, validation.FieldUsername, user.Username)
		}
	}

	if newPassword != "" {
		user.PasswordHash, err = s.hasher.Hash(newPassword)
		if err != nil {
			return fmt.Errorf("şifre işlenemedi: %w", err)
		}
	} else {
		user.PasswordHash = existing.PasswordHash
	}
	user.CreatedAt = existing.CreatedAt

	if err := s.repo.Update(user); err != nil {
		s.logger.Error("Kullanıcı güncelleme sırasında hata oluştu", map[string]interface{}{"id": user.ID, "error": err.Error()})
		return fmt.Errorf("kullanıcı güncellenemedi: %w", err)
	}

	s.audit(domain.ActionTypeUpdate, user.ID, fmt.Sprintf("Kullanıcı güncellendi: %s", user.Username))
	return nil
}

func (s *UserService) DeleteUser(id int64) error {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return fmt.Errorf("kullanıcı silinemedi: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("%w: %d", domain.ErrUserNotFound, id)
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("Kullanıcı silme sırasında hata oluştu", map[string]interface{}{"id": id, "error": err.Error()})
		return fmt.Errorf("kullanıcı silinemedi: %w", err)
	}

	s.audit(domain.ActionTypeDelete, id, fmt.Sprintf("Kullanıcı silindi: %s", existing.Username))
	return nil
}

// RestoreUser re-persists an undo snapshot as-is, hash and identity included.
func (s *UserService) RestoreUser(user *domain.User) error {
	if err := s.repo.Restore(user); err != nil {
		s.logger.Error("Kullanıcı geri yükleme sırasında hata oluştu", map[string]interface{}{"id": user.ID, "error": err.Error()})
		return fmt.Errorf("kullanıcı geri yüklenemedi: %w", err)
	}

	s.audit(domain.ActionTypeUndo, user.ID, fmt.Sprintf("Kullanıcı geri yüklendi: %s", user.Username))
	return nil
}

func (s *UserService) audit(action domain.ActionType, entityID int64, details string) {
	entry := &domain.AuditLog{
		EntityType: domain.EntityTypeUser,
		EntityID:   entityID,
		Action:     action,
		Details:    details,
	}
	if err := s.auditLogRepo.Create(entry); err != nil {
		s.logger.Error("Denetim kaydı oluşturulamadı", map[string]interface{}{"entity_id": entityID, "error": err.Error()})
	}
}
