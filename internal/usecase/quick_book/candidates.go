package quick_book

import (
	"time"

	"github.com/m04kA/SMC-SpaBookingService/internal/domain"
	"github.com/m04kA/SMC-SpaBookingService/internal/service/schedule"
)

// pickCandidates возвращает мастеров в порядке ростера, которым можно поставить
// услугу длительностью duration с момента start: ячейка свободна, услуга
// заканчивается до конца смены, не задевает перерыв и не пересекается с записями.
func pickCandidates(
	classifier *schedule.Classifier,
	staff []domain.StaffMember,
	shifts map[int64]*domain.ResolvedShift,
	appointments []*domain.Appointment,
	start time.Time,
	slotDurationMinutes int,
	duration time.Duration,
) []domain.StaffMember {
	end := start.Add(duration)
	slot := domain.TimeSlot{Start: start, DurationMinutes: slotDurationMinutes}

	var result []domain.StaffMember
	for _, member := range staff {
		if !member.IsActive {
			continue
		}

		shift := shifts[member.ID]
		cell := classifier.Classify(member, shift, slot, appointments)
		if cell.Status != domain.CellAvailable || !cell.CanBook {
			continue
		}

		if end.After(shift.ShiftEnd.On(start)) {
			continue
		}

		if shift.HasBreak() && schedule.Overlaps(start, end, shift.BreakStart.On(start), shift.BreakEnd.On(start)) {
			continue
		}

		if len(schedule.FindConflicts(appointments, member.ID, start, end, nil)) > 0 {
			continue
		}

		result = append(result, member)
	}

	return result
}
