package schedule

import (
	"sort"
	"time"

	"github.com/m04kA/SMC-SpaBookingService/internal/domain"
)

// Overlaps проверяет пересечение полуоткрытых интервалов [aStart, aEnd) и [bStart, bEnd).
// Касание границ (одна запись заканчивается, когда начинается другая) пересечением не считается.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// FindConflicts возвращает неотмененные записи мастера, пересекающиеся с [start, end).
// excludeID исключает редактируемую запись. Результат упорядочен по началу, затем по ID.
func FindConflicts(appointments []*domain.Appointment, staffID int64, start, end time.Time, excludeID *int64) []*domain.Appointment {
	var conflicts []*domain.Appointment
	for _, a := range appointments {
		if a == nil || a.StaffID != staffID || !a.BlocksTime() {
			continue
		}
		if excludeID != nil && a.ID == *excludeID {
			continue
		}
		if Overlaps(start, end, a.StartTime, a.EndTime) {
			conflicts = append(conflicts, a)
		}
	}

	sortByStart(conflicts)
	return conflicts
}

// CheckConflict возвращает *domain.ConflictError с первой пересекающейся записью
// или nil, если интервал свободен
func CheckConflict(appointments []*domain.Appointment, staffID int64, start, end time.Time, excludeID *int64) error {
	conflicts := FindConflicts(appointments, staffID, start, end, excludeID)
	if len(conflicts) == 0 {
		return nil
	}
	return domain.NewConflictError(conflicts[0])
}

func sortByStart(appointments []*domain.Appointment) {
	sort.SliceStable(appointments, func(i, j int) bool {
		a, b := appointments[i], appointments[j]
		if !a.StartTime.Equal(b.StartTime) {
			return a.StartTime.Before(b.StartTime)
		}
		return a.ID < b.ID
	})
}
