package service

import (
	"fmt"

	"contactdesk/internal/domain"
	"contactdesk/internal/fields"
	"contactdesk/internal/query"
	"contactdesk/internal/validation"
	"contactdesk/pkg/logger"
)

type ContactService struct {
	repo         domain.ContactRepository
	auditLogRepo domain.AuditLogRepository
	logger       logger.Logger
}

func NewContactService(
	repo domain.ContactRepository,
	auditLogRepo domain.AuditLogRepository,
	logger logger.Logger,
) domain.ContactService {
	return &ContactService{
		repo:         repo,
		auditLogRepo: auditLogRepo,
		logger:       logger,
	}
}

func (s *ContactService) ListContacts() ([]*domain.Contact, error) {
	contacts, err := s.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("kişiler listelenemedi: %w", err)
	}
	return contacts, nil
}

func (s *ContactService) GetContact(id int64) (*domain.Contact, error) {
	contact, err := s.repo.FindByID(id)
	if err != nil {
		return nil, fmt.Errorf("kişi yüklenemedi: %w", err)
	}
	if contact == nil {
		return nil, fmt.Errorf("%w: %d", domain.ErrContactNotFound, id)
	}
	return contact, nil
}

func (s *ContactService) SearchSingleField(field, value string) ([]*domain.Contact, error) {
	contacts, err := s.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("arama yapılamadı: %w", err)
	}
	return query.SingleField(contacts, field, value)
}

func (s *ContactService) SearchMultiField(criteria []domain.SearchCriterion) ([]*domain.Contact, error) {
	// Empty criteria fail before any storage round trip.
	if len(criteria) == 0 {
		return nil, domain.ErrEmptyCriteria
	}

	contacts, err := s.repo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("arama yapılamadı: %w", err)
	}
	return query.MultiField(contacts, criteria)
}

func (s *ContactService) SortContacts(contacts []*domain.Contact, field string, ascending bool) error {
	return fields.Sort(contacts, field, ascending)
}

// checkUniqueness blocks a mutation whose primary phone, secondary phone or
// email already belongs to another contact.
func (s *ContactService) checkUniqueness(contact *domain.Contact) error {
	count, err := s.repo.CountByEmail(contact.Email, contact.ID)
	if err != nil {
		return fmt.Errorf("e-posta kontrolü yapılamadı: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w (%s: %s)", domain.ErrDuplicateValue, validation.FieldEmail, contact.Email)
	}

	count, err = s.repo.CountByPhone(contact.PhonePrimary, contact.ID)
	if err != nil {
		return fmt.Errorf("telefon kontrolü yapılamadı: %w", err)
	}
	if count > 0 {
		return fmt.Errorf("%w (%s: %s)", domain.ErrDuplicateValue, validation.FieldPhonePrimary, contact.PhonePrimary)
	}

	if contact.PhoneSecondary != "" {
		count, err = s.repo.CountByPhone(contact.PhoneSecondary, contact.ID)
		if err != nil {
			return fmt.Errorf("telefon kontrolü yapılamadı: %w", err)
		}
		if count > 0 {
			return fmt.Errorf("%w (%s: %s)", domain.ErrDuplicateValue, validation.FieldPhoneSecondary, contact.PhoneSecondary)
		}
	}

	return nil
}

func (s *ContactService) CreateContact(contact *domain.Contact) error {
	contact.FirstName = validation.FormatName(contact.FirstName)
	contact.MiddleName = validation.FormatName(contact.MiddleName)
	contact.LastName = validation.FormatName(contact.LastName)

	if verr := validation.Contact(contact); verr != nil {
		return verr
	}

	if err := s.checkUniqueness(contact); err != nil {
		return err
	}

	if err := s.repo.Create(contact); err != nil {
		s.logger.Error("Kişi oluşturma sırasında hata oluştu", map[string]interface{}{"error": err.Error()})
		return fmt.Errorf("kişi eklenemedi: %w", err)
	}

	s.audit(domain.ActionTypeCreate, contact.ID, fmt.Sprintf("Kişi eklendi: %s", contact.FullName()))
	return nil
}

func (s *ContactService) UpdateContact(contact *domain.Contact) error {
	existing, err := s.repo.FindByID(contact.ID)
	if err != nil {
		return fmt.Errorf("kişi güncellenemedi: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("%w: %d", domain.ErrContactNotFound, contact.ID)
	}

	if verr := validation.Contact(contact); verr != nil {
		return verr
	}

	if err := s.checkUniqueness(contact); err != nil {
		return err
	}

	if err := s.repo.Update(contact); err != nil {
		s.logger.Error("Kişi güncelleme sırasında hata oluştu", map[string]interface{}{"id": contact.ID, "error": err.Error()})
		return fmt.Errorf("kişi güncellenemedi: %w", err)
	}

	s.audit(domain.ActionTypeUpdate, contact.ID, fmt.Sprintf("Kişi güncellendi: %s", contact.FullName()))
	return nil
}

func (s *ContactService) DeleteContact(id int64) error {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return fmt.Errorf("kişi silinemedi: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("%w: %d", domain.ErrContactNotFound, id)
	}

	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("Kişi silme sırasında hata oluştu", map[string]interface{}{"id": id, "error": err.Error()})
		return fmt.Errorf("kişi silinemedi: %w", err)
	}

	s.audit(domain.ActionTypeDelete, id, fmt.Sprintf("Kişi silindi: %s", existing.FullName()))
	return nil
}

// RestoreContact re-persists an undo snapshot as-is, identity included.
// The snapshot was valid when captured, so it is not re-validated.
func (s *ContactService) RestoreContact(contact *domain.Contact) error {
	if err := s.repo.Restore(contact); err != nil {
		s.logger.Error("Kişi geri yükleme sırasında hata oluştu", map[string]interface{}{"id": contact.ID, "error": err.Error()})
		return fmt.Errorf("kişi geri yüklenemedi: %w", err)
	}

	s.audit(domain.ActionTypeUndo, contact.ID, fmt.Sprintf("Kişi geri yüklendi: %s", contact.FullName()))
	return nil
}

// audit failures are logged and swallowed; the mutation already succeeded.
func (s *ContactService) audit(action domain.ActionType, entityID int64, details string) {
	entry := &domain.AuditLog{
		EntityType: domain.EntityTypeContact,
		EntityID:   entityID,
		Action:     action,
		Details:    details,
	}
	if err := s.auditLogRepo.Create(entry); err != nil {
		s.logger.Error("Denetim kaydı oluşturulamadı", map[string]interface{}{"entity_id": entityID, "error": err.Error()})
	}
}
