package events

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-SpaBookingService/internal/domain"
)

// EventType тип события жизненного цикла записи
type EventType string

const (
	EventAppointmentCreated       EventType = "appointment.created"
	EventAppointmentRescheduled   EventType = "appointment.rescheduled"
	EventAppointmentUpdated       EventType = "appointment.updated"
	EventAppointmentStatusChanged EventType = "appointment.status_changed"
	EventAppointmentCancelled     EventType = "appointment.cancelled"
)

// AppointmentEvent сообщение для сервиса уведомлений
type AppointmentEvent struct {
	ID             string    `json:"id"`
	Type           EventType `json:"type"`
	OccurredAt     time.Time `json:"occurredAt"`
	AppointmentID  int64     `json:"appointmentId"`
	StaffID        int64     `json:"staffId"`
	ClientID       int64     `json:"clientId"`
	ServiceID      int64     `json:"serviceId"`
	ClientName     string    `json:"clientName"`
	ServiceName    string    `json:"serviceName"`
	StartTime      time.Time `json:"startTime"`
	EndTime        time.Time `json:"endTime"`
	Status         string    `json:"status"`
	PreviousStatus string    `json:"previousStatus,omitempty"`
	BookingSource  string    `json:"bookingSource"`
}

// NewAppointmentEvent создает событие по записи. previous задается для смены статуса.
func NewAppointmentEvent(eventType EventType, appt *domain.Appointment, previous domain.AppointmentStatus, occurredAt time.Time) AppointmentEvent {
	return AppointmentEvent{
		ID:             uuid.NewString(),
		Type:           eventType,
		OccurredAt:     occurredAt.UTC(),
		AppointmentID:  appt.ID,
		StaffID:        appt.StaffID,
		ClientID:       appt.ClientID,
		ServiceID:      appt.ServiceID,
		ClientName:     appt.ClientName,
		ServiceName:    appt.ServiceName,
		StartTime:      appt.StartTime,
		EndTime:        appt.EndTime,
		Status:         string(appt.Status),
		PreviousStatus: string(previous),
		BookingSource:  string(appt.BookingSource),
	}
}
