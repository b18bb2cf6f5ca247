package update_appointment

import (
	"github.com/m04kA/SMC-SpaBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SpaBookingService/internal/domain"
	"github.com/m04kA/SMC-SpaBookingService/internal/usecase/update_appointment"
	"github.com/m04kA/SMC-SpaBookingService/pkg/types"
)

// UpdateAppointmentRequest HTTP request model. Отсутствующие поля не меняются.
type UpdateAppointmentRequest struct {
	StaffID         *int64   `json:"staffId,omitempty"`
	ClientID        *int64   `json:"clientId,omitempty"`
	ServiceID       *int64   `json:"serviceId,omitempty"`
	Date            *string  `json:"date,omitempty"`
	StartTime       *string  `json:"startTime,omitempty"`
	DurationMinutes *int     `json:"durationMinutes,omitempty"`
	Notes           *string  `json:"notes,omitempty"`
	Amount          *float64 `json:"amount,omitempty"`
	PaymentStatus   *string  `json:"paymentStatus,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос usecase
func (r *UpdateAppointmentRequest) ToUseCaseRequest(appointmentID int64) (*update_appointment.Request, error) {
	req := &update_appointment.Request{
		AppointmentID:   appointmentID,
		StaffID:         r.StaffID,
		ClientID:        r.ClientID,
		ServiceID:       r.ServiceID,
		DurationMinutes: r.DurationMinutes,
		Notes:           r.Notes,
		Amount:          r.Amount,
		PaymentStatus:   r.PaymentStatus,
	}

	if r.Date != nil {
		date, err := handlers.ParseDate(*r.Date)
		if err != nil {
			return nil, domain.NewValidationError("date", "must be in YYYY-MM-DD format")
		}
		req.Date = &date
	}

	if r.StartTime != nil {
		startTime := types.TimeString(*r.StartTime)
		req.StartTime = &startTime
	}

	return req, nil
}
