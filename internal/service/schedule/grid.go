package schedule

import (
	"time"

	"github.com/m04kA/SMC-SpaBookingService/internal/domain"
)

// NormalizeSlotDuration возвращает minutes, если длительность из списка
// допустимых, иначе длительность по умолчанию (15)
func NormalizeSlotDuration(minutes int) int {
	if domain.IsAllowedSlotDuration(minutes) {
		return minutes
	}
	return domain.DefaultSlotDurationMinutes
}

// GenerateSlots строит упорядоченную сетку слотов [startHour:00, endHour:00)
// для даты. Каждый слот полуоткрытый, начало последнего слота строго меньше endHour:00.
func GenerateSlots(date time.Time, startHour, endHour, slotDurationMinutes int) ([]domain.TimeSlot, error) {
	if startHour < 0 || startHour > 23 {
		return nil, domain.NewValidationError("startHour", "must be between 0 and 23")
	}
	if endHour < 1 || endHour > 24 {
		return nil, domain.NewValidationError("endHour", "must be between 1 and 24")
	}
	if startHour >= endHour {
		return nil, domain.NewValidationError("endHour", "must be greater than startHour")
	}

	duration := NormalizeSlotDuration(slotDurationMinutes)
	y, m, d := date.Date()
	loc := date.Location()

	total := (endHour - startHour) * 60
	slots := make([]domain.TimeSlot, 0, total/duration+1)
	for offset := 0; offset < total; offset += duration {
		slots = append(slots, domain.TimeSlot{
			Start:           time.Date(y, m, d, startHour, offset, 0, 0, loc),
			DurationMinutes: duration,
		})
	}

	return slots, nil
}
