package domain

import "time"

// StaffMember is a roster entry owned by the staff service
type StaffMember struct {
	ID       int64
	Name     string
	IsActive bool
}

// TimeSlot is a half-open interval [Start, Start+Duration) of the grid
type TimeSlot struct {
	Start           time.Time
	DurationMinutes int
}

// End returns the exclusive end of the slot
func (s TimeSlot) End() time.Time {
	return s.Start.Add(time.Duration(s.DurationMinutes) * time.Minute)
}

// Contains returns true if t is inside [Start, End)
func (s TimeSlot) Contains(t time.Time) bool {
	return !t.Before(s.Start) && t.Before(s.End())
}

// CellStatus is the availability class of a (staff, slot) pair
type CellStatus string

const (
	CellNotAvailable       CellStatus = "not_available"
	CellOffDuty            CellStatus = "off_duty"
	CellBreak              CellStatus = "break"
	CellBooked             CellStatus = "booked"
	CellBookedContinuation CellStatus = "booked_continuation"
	CellAvailable          CellStatus = "available"
)

// AvailabilityCell is the computed status of one (staff, slot) pair
type AvailabilityCell struct {
	StaffID     int64
	StaffName   string
	Slot        TimeSlot
	Status      CellStatus
	DisplayText string
	Reason      string
	CanBook     bool

	// Only for available cells
	RemainingMinutes *int

	ShiftWindow string
	BreakWindow string

	// Only for booked and booked_continuation cells
	Blocking *Appointment
}

// AvailabilityGrid is a classified grid for one date
type AvailabilityGrid struct {
	Date                time.Time
	View                GridView
	StartHour           int
	EndHour             int
	SlotDurationMinutes int
	Staff               []StaffMember
	Slots               []TimeSlot
	Cells               []AvailabilityCell // staff-major, slots ascending
}

// GridView is a rendering preset of the grid
type GridView string

const (
	ViewCalendar GridView = "calendar"
	ViewStaff    GridView = "staff"
	ViewTimeline GridView = "timeline"
)

// IsValid returns true for known views
func (v GridView) IsValid() bool {
	return v == ViewCalendar || v == ViewStaff || v == ViewTimeline
}
