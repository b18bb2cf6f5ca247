package handlers

import (
	"time"

	"github.com/m04kA/SMC-SpaBookingService/internal/service/appointments/models"
)

// AppointmentResponse HTTP представление записи.
// Общее для всех эндпоинтов, возвращающих запись.
type AppointmentResponse struct {
	ID                 int64      `json:"id"`
	AppointmentID      int64      `json:"appointmentId"`
	StaffID            int64      `json:"staffId"`
	ClientID           int64      `json:"clientId"`
	ServiceID          int64      `json:"serviceId"`
	Start              time.Time  `json:"start"`
	End                time.Time  `json:"end"`
	DurationMinutes    int        `json:"durationMinutes"`
	Status             string     `json:"status"`
	BookingSource      string     `json:"bookingSource"`
	Notes              *string    `json:"notes,omitempty"`
	Amount             float64    `json:"amount"`
	PaymentStatus      string     `json:"paymentStatus"`
	ClientName         string     `json:"clientName"`
	ServiceName        string     `json:"serviceName"`
	CreatedBy          *int64     `json:"createdBy,omitempty"`
	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

// AppointmentListResponse HTTP представление списка записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse `json:"appointments"`
	Total        int                   `json:"total"`
}

// FromAppointment конвертирует модель сервиса в HTTP ответ
func FromAppointment(a *models.AppointmentResponse) *AppointmentResponse {
	if a == nil {
		return nil
	}
	return &AppointmentResponse{
		ID:                 a.ID,
		AppointmentID:      a.ID,
		StaffID:            a.StaffID,
		ClientID:           a.ClientID,
		ServiceID:          a.ServiceID,
		Start:              a.StartTime,
		End:                a.EndTime,
		DurationMinutes:    a.DurationMinutes,
		Status:             a.Status,
		BookingSource:      a.BookingSource,
		Notes:              a.Notes,
		Amount:             a.Amount,
		PaymentStatus:      a.PaymentStatus,
		ClientName:         a.ClientName,
		ServiceName:        a.ServiceName,
		CreatedBy:          a.CreatedBy,
		CancellationReason: a.CancellationReason,
		CancelledAt:        a.CancelledAt,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

// FromAppointmentList конвертирует список
func FromAppointmentList(list *models.AppointmentListResponse) *AppointmentListResponse {
	result := make([]AppointmentResponse, 0, len(list.Appointments))
	for i := range list.Appointments {
		result = append(result, *FromAppointment(&list.Appointments[i]))
	}
	return &AppointmentListResponse{Appointments: result, Total: list.Total}
}
