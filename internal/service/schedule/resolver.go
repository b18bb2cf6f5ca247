package schedule

import (
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-SpaBookingService/internal/domain"
)

// ResolveShift возвращает действующую смену мастера на дату.
// Из подходящих диапазонов выбирается диапазон с наибольшим приоритетом,
// при равенстве - созданный позже (затем с большим ID).
// nil означает выходной, это не ошибка.
func ResolveShift(ranges []*domain.ShiftRange, staffID int64, date time.Time) *domain.ResolvedShift {
	candidates := make([]*domain.ShiftRange, 0, len(ranges))
	for _, r := range ranges {
		if r == nil || r.StaffID != staffID {
			continue
		}
		if r.Covers(date) {
			candidates = append(candidates, r)
		}
	}

	if len(candidates) == 0 {
		return nil
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Priority != b.Priority {
			return a.Priority > b.Priority
		}
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID > b.ID
	})

	winner := candidates[0]
	y, m, d := date.Date()

	resolved := &domain.ResolvedShift{
		ShiftRangeID: winner.ID,
		StaffID:      staffID,
		Date:         time.Date(y, m, d, 0, 0, 0, 0, date.Location()),
		ShiftStart:   winner.ShiftStart,
		ShiftEnd:     winner.ShiftEnd,
	}
	if winner.HasBreak() {
		bs, be := *winner.BreakStart, *winner.BreakEnd
		resolved.BreakStart = &bs
		resolved.BreakEnd = &be
	}
	resolved.Label = scheduleLabel(winner, resolved)

	return resolved
}

// ResolveShifts resolves shifts for every staff member of the roster
func ResolveShifts(ranges []*domain.ShiftRange, staff []domain.StaffMember, date time.Time) map[int64]*domain.ResolvedShift {
	result := make(map[int64]*domain.ResolvedShift, len(staff))
	for _, member := range staff {
		if shift := ResolveShift(ranges, member.ID, date); shift != nil {
			result[member.ID] = shift
		}
	}
	return result
}

func scheduleLabel(r *domain.ShiftRange, s *domain.ResolvedShift) string {
	if r.Label != nil && *r.Label != "" {
		return *r.Label
	}
	if s.HasBreak() {
		return fmt.Sprintf("%s (break %s)", s.ShiftWindow(), s.BreakWindow())
	}
	return s.ShiftWindow()
}
