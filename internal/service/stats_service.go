package service

import (
	"fmt"
	"strings"
	"time"

	"contactdesk/internal/domain"
	"contactdesk/pkg/logger"
)

type StatisticsService struct {
	userRepo    domain.UserRepository
	contactRepo domain.ContactRepository
	logger      logger.Logger
}

func NewStatisticsService(
	userRepo domain.UserRepository,
	contactRepo domain.ContactRepository,
	logger logger.Logger,
) domain.StatisticsService {
	return &StatisticsService{
		userRepo:    userRepo,
		contactRepo: contactRepo,
		logger:      logger,
	}
}

func (s *StatisticsService) GetStatistics() (*domain.Statistics, error) {
	users, err := s.userRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("istatistikler hesaplanamadı: %w", err)
	}

	contacts, err := s.contactRepo.FindAll()
	if err != nil {
		return nil, fmt.Errorf("istatistikler hesaplanamadı: %w", err)
	}

	stats := &domain.Statistics{
		TotalUsers:        len(users),
		UsersByRole:       make(map[domain.Role]int),
		TotalContacts:     len(contacts),
		FirstNameCounts:   make(map[string]int),
		LastNameCounts:    make(map[string]int),
		EmailDomainCounts: make(map[string]int),
	}

	for _, user := range users {
		stats.UsersByRole[user.Role]++
	}

	currentMonth := time.Now().Month()
	for _, contact := range contacts {
		if contact.BirthDate != nil && contact.BirthDate.Month() == currentMonth {
			stats.BirthdaysThisMonth++
		}
		if contact.LinkedinURL != "" {
			stats.WithLinkedin++
		}
		if contact.IsAdult() {
			stats.AdultContacts++
		}
		if contact.FirstName != "" {
			stats.FirstNameCounts[contact.FirstName]++
		}
		if contact.LastName != "" {
			stats.LastNameCounts[contact.LastName]++
		}
		if at := strings.LastIndex(contact.Email, "@"); at >= 0 {
			stats.EmailDomainCounts[strings.ToLower(contact.Email[at+1:])]++
		}
	}

	return stats, nil
}
