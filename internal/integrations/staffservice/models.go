package staffservice

import "github.com/m04kA/SMC-SpaBookingService/internal/domain"

// Staff модель мастера из StaffService
type Staff struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"is_active"`
}

// ToDomain конвертирует в доменную модель
func (s Staff) ToDomain() domain.StaffMember {
	return domain.StaffMember{ID: s.ID, Name: s.Name, IsActive: s.IsActive}
}

// ToDomainRoster конвертирует ростер, сохраняя порядок
func ToDomainRoster(roster []Staff) []domain.StaffMember {
	result := make([]domain.StaffMember, 0, len(roster))
	for _, s := range roster {
		result = append(result, s.ToDomain())
	}
	return result
}
