package models

import (
	"time"

	"github.com/m04kA/SMC-SpaBookingService/internal/domain"
)

// Request модели

// ListRequest запрос списка записей за день
type ListRequest struct {
	Date             time.Time // календарная дата, время игнорируется
	StaffID          *int64
	Status           *string
	IncludeCancelled bool
}

// TransitionStatusRequest запрос на смену статуса
type TransitionStatusRequest struct {
	Status string
	UserID *int64 // оператор из X-User-ID
}

// CancelRequest запрос на отмену записи
type CancelRequest struct {
	Reason *string
	UserID *int64
}

// ToDomainStatus конвертирует строку в статус записи
func ToDomainStatus(s string) (domain.AppointmentStatus, error) {
	status := domain.AppointmentStatus(s)
	if !status.IsValid() {
		return "", domain.NewValidationError("status", "unknown status "+s)
	}
	return status, nil
}

// Response модели

// AppointmentResponse данные записи
type AppointmentResponse struct {
	ID                 int64
	StaffID            int64
	ClientID           int64
	ServiceID          int64
	StartTime          time.Time
	EndTime            time.Time
	DurationMinutes    int
	Status             string
	BookingSource      string
	Notes              *string
	Amount             float64
	PaymentStatus      string
	ClientName         string
	ServiceName        string
	CreatedBy          *int64
	CancellationReason *string
	CancelledAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// AppointmentListResponse список записей
type AppointmentListResponse struct {
	Appointments []AppointmentResponse
	Total        int
}

// FromDomainAppointment конвертирует domain модель в response
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	if a == nil {
		return nil
	}
	return &AppointmentResponse{
		ID:                 a.ID,
		StaffID:            a.StaffID,
		ClientID:           a.ClientID,
		ServiceID:          a.ServiceID,
		StartTime:          a.StartTime,
		EndTime:            a.EndTime,
		DurationMinutes:    a.DurationMinutes(),
		Status:             string(a.Status),
		BookingSource:      string(a.BookingSource),
		Notes:              a.Notes,
		Amount:             a.Amount,
		PaymentStatus:      string(a.PaymentStatus),
		ClientName:         a.ClientName,
		ServiceName:        a.ServiceName,
		CreatedBy:          a.CreatedBy,
		CancellationReason: a.CancellationReason,
		CancelledAt:        a.CancelledAt,
		CreatedAt:          a.CreatedAt,
		UpdatedAt:          a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список domain моделей
func FromDomainAppointmentList(list []*domain.Appointment) *AppointmentListResponse {
	result := make([]AppointmentResponse, 0, len(list))
	for _, a := range list {
		result = append(result, *FromDomainAppointment(a))
	}
	return &AppointmentListResponse{
		Appointments: result,
		Total:        len(result),
	}
}
