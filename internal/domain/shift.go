package domain

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SpaBookingService/pkg/types"
)

// ShiftRange is a recurring working-hours definition for a staff member
// over an inclusive date range
type ShiftRange struct {
	ID       int64
	StaffID  int64
	FromDate time.Time
	ToDate   time.Time

	Monday    bool
	Tuesday   bool
	Wednesday bool
	Thursday  bool
	Friday    bool
	Saturday  bool
	Sunday    bool

	ShiftStart types.TimeString
	ShiftEnd   types.TimeString
	BreakStart *types.TimeString
	BreakEnd   *types.TimeString

	Priority int // higher wins on overlap
	IsActive bool
	Label    *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// WorksOn returns the weekday flag for the given day
func (r *ShiftRange) WorksOn(weekday time.Weekday) bool {
	switch weekday {
	case time.Monday:
		return r.Monday
	case time.Tuesday:
		return r.Tuesday
	case time.Wednesday:
		return r.Wednesday
	case time.Thursday:
		return r.Thursday
	case time.Friday:
		return r.Friday
	case time.Saturday:
		return r.Saturday
	case time.Sunday:
		return r.Sunday
	default:
		return false
	}
}

// HasAnyWorkday returns true if at least one weekday flag is set
func (r *ShiftRange) HasAnyWorkday() bool {
	return r.Monday || r.Tuesday || r.Wednesday || r.Thursday || r.Friday || r.Saturday || r.Sunday
}

// HasBreak returns true if both break bounds are set
func (r *ShiftRange) HasBreak() bool {
	return r.BreakStart != nil && r.BreakEnd != nil
}

// Covers returns true if the range is active and applies to the calendar date
func (r *ShiftRange) Covers(date time.Time) bool {
	if !r.IsActive {
		return false
	}
	day := DateKey(date)
	if day < DateKey(r.FromDate) || day > DateKey(r.ToDate) {
		return false
	}
	return r.WorksOn(date.Weekday())
}

// Validate checks the shift range invariants
func (r *ShiftRange) Validate() error {
	if r.StaffID <= 0 {
		return NewValidationError("staffId", "must be positive")
	}
	if r.FromDate.IsZero() {
		return NewValidationError("fromDate", "is required")
	}
	if r.ToDate.IsZero() {
		return NewValidationError("toDate", "is required")
	}
	if DateKey(r.FromDate) > DateKey(r.ToDate) {
		return NewValidationError("toDate", "must not be before fromDate")
	}
	if !r.HasAnyWorkday() {
		return NewValidationError("weekdays", "at least one working weekday is required")
	}
	if err := r.ShiftStart.Validate(); err != nil {
		return NewValidationError("shiftStart", "must be in HH:MM format")
	}
	if err := r.ShiftEnd.Validate(); err != nil {
		return NewValidationError("shiftEnd", "must be in HH:MM format")
	}
	if !r.ShiftStart.IsBefore(r.ShiftEnd) {
		return NewValidationError("shiftEnd", "must be after shiftStart")
	}

	if (r.BreakStart == nil) != (r.BreakEnd == nil) {
		return NewValidationError("breakStart", "breakStart and breakEnd must be set together")
	}
	if r.HasBreak() {
		if err := r.BreakStart.Validate(); err != nil {
			return NewValidationError("breakStart", "must be in HH:MM format")
		}
		if err := r.BreakEnd.Validate(); err != nil {
			return NewValidationError("breakEnd", "must be in HH:MM format")
		}
		if r.BreakStart.IsBefore(r.ShiftStart) {
			return NewValidationError("breakStart", "must not be before shiftStart")
		}
		if !r.BreakStart.IsBefore(*r.BreakEnd) {
			return NewValidationError("breakEnd", "must be after breakStart")
		}
		if r.BreakEnd.IsAfter(r.ShiftEnd) {
			return NewValidationError("breakEnd", "must not be after shiftEnd")
		}
	}

	if r.Label != nil && len(*r.Label) > MaxLabelLength {
		return NewValidationError("label", fmt.Sprintf("must be at most %d characters", MaxLabelLength))
	}

	return nil
}

// ResolvedShift is the effective working window of a staff member on one date
type ResolvedShift struct {
	ShiftRangeID int64
	StaffID      int64
	Date         time.Time
	ShiftStart   types.TimeString
	ShiftEnd     types.TimeString
	BreakStart   *types.TimeString
	BreakEnd     *types.TimeString
	Label        string
}

// HasBreak returns true if the resolved shift has a break window
func (s *ResolvedShift) HasBreak() bool {
	return s.BreakStart != nil && s.BreakEnd != nil
}

// ShiftWindow formats the working window, e.g. "09:00-17:00"
func (s *ResolvedShift) ShiftWindow() string {
	return fmt.Sprintf("%s-%s", s.ShiftStart, s.ShiftEnd)
}

// BreakWindow formats the break window or returns an empty string
func (s *ResolvedShift) BreakWindow() string {
	if !s.HasBreak() {
		return ""
	}
	return fmt.Sprintf("%s-%s", *s.BreakStart, *s.BreakEnd)
}

// DateKey returns the calendar date as YYYY-MM-DD; keys compare lexicographically
func DateKey(t time.Time) string {
	return t.Format(DateFormat)
}
