package domain

import (
	"time"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	StatusScheduled  AppointmentStatus = "scheduled"
	StatusConfirmed  AppointmentStatus = "confirmed"
	StatusInProgress AppointmentStatus = "in_progress"
	StatusCompleted  AppointmentStatus = "completed"
	StatusCancelled  AppointmentStatus = "cancelled"
	StatusNoShow     AppointmentStatus = "no_show"
)

// BookingSource is the channel through which an appointment was created
type BookingSource string

const (
	SourceManual    BookingSource = "manual"
	SourceWalkIn    BookingSource = "walk_in"
	SourcePhone     BookingSource = "phone"
	SourceOnline    BookingSource = "online"
	SourceQuickBook BookingSource = "quick_book"
)

// PaymentStatus of an appointment
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPartial  PaymentStatus = "partial"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// allowedTransitions is the booking state machine.
// Terminal states have no outgoing edges.
var allowedTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusScheduled:  {StatusConfirmed, StatusCancelled, StatusNoShow},
	StatusConfirmed:  {StatusInProgress, StatusCancelled, StatusNoShow},
	StatusInProgress: {StatusCompleted, StatusCancelled, StatusNoShow},
	StatusCompleted:  {},
	StatusCancelled:  {},
	StatusNoShow:     {},
}

// IsValid returns true for known statuses
func (s AppointmentStatus) IsValid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

// IsTerminal returns true if no further transitions are possible
func (s AppointmentStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusNoShow
}

// CanTransitionTo reports whether next is an allowed edge from s
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// IsValid returns true for known booking sources
func (s BookingSource) IsValid() bool {
	switch s {
	case SourceManual, SourceWalkIn, SourcePhone, SourceOnline, SourceQuickBook:
		return true
	}
	return false
}

// IsValid returns true for known payment statuses
func (p PaymentStatus) IsValid() bool {
	switch p {
	case PaymentPending, PaymentPartial, PaymentPaid, PaymentRefunded:
		return true
	}
	return false
}

// Appointment is a booked service for a client with a staff member
type Appointment struct {
	ID        int64
	StaffID   int64
	ClientID  int64
	ServiceID int64
	StartTime time.Time
	EndTime   time.Time // start + service duration unless overridden

	Status        AppointmentStatus
	BookingSource BookingSource
	Notes         *string
	Amount        float64
	PaymentStatus PaymentStatus

	// Denormalized data for history
	ClientName  string
	ServiceName string

	CreatedBy          *int64 // operator from X-User-ID
	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DurationMinutes returns the appointment length in minutes
func (a *Appointment) DurationMinutes() int {
	return int(a.EndTime.Sub(a.StartTime) / time.Minute)
}

// BlocksTime returns true if the appointment claims its interval.
// Only cancelled appointments release their time.
func (a *Appointment) BlocksTime() bool {
	return a.Status != StatusCancelled
}

// IsTerminal returns true if the appointment reached a final state
func (a *Appointment) IsTerminal() bool {
	return a.Status.IsTerminal()
}

// InLocation returns a copy with all timestamps expressed in loc
func (a *Appointment) InLocation(loc *time.Location) *Appointment {
	cp := *a
	cp.StartTime = a.StartTime.In(loc)
	cp.EndTime = a.EndTime.In(loc)
	if a.CancelledAt != nil {
		cancelled := a.CancelledAt.In(loc)
		cp.CancelledAt = &cancelled
	}
	return &cp
}

// CanBeUpdated returns true if time, staff or service may still change
func (a *Appointment) CanBeUpdated() bool {
	return !a.IsTerminal()
}

// AppointmentFilter фильтр для выборки записей
type AppointmentFilter struct {
	StaffID          *int64             // Фильтр по мастеру (nil - все)
	From             *time.Time         // Записи, заканчивающиеся после From
	To               *time.Time         // Записи, начинающиеся до To
	Status           *AppointmentStatus // Фильтр по статусу
	IncludeCancelled bool               // Включать ли отмененные записи
}
