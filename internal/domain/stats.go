package domain

// Statistics is the aggregated view the manager menu renders.
type Statistics struct {
	TotalUsers         int          `json:"total_users"`
	UsersByRole        map[Role]int `json:"users_by_role"`
	TotalContacts      int          `json:"total_contacts"`
	BirthdaysThisMonth int          `json:"birthdays_this_month"`
	WithLinkedin       int          `json:"with_linkedin"`
	AdultContacts      int          `json:"adult_contacts"`

	FirstNameCounts   map[string]int `json:"first_name_counts"`
	LastNameCounts    map[string]int `json:"last_name_counts"`
	EmailDomainCounts map[string]int `json:"email_domain_counts"`
}

type StatisticsService interface {
	GetStatistics() (*Statistics, error)
}
