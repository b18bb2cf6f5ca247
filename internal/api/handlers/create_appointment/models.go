package create_appointment

import (
	"github.com/m04kA/SMC-SpaBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SpaBookingService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-SpaBookingService/pkg/types"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	StaffID         int64    `json:"staffId"`
	ClientID        int64    `json:"clientId"`
	ServiceID       int64    `json:"serviceId"`
	Date            string   `json:"date"`      // YYYY-MM-DD
	StartTime       string   `json:"startTime"` // HH:MM
	DurationMinutes *int     `json:"durationMinutes,omitempty"`
	Notes           *string  `json:"notes,omitempty"`
	Source          string   `json:"source,omitempty"`
	Amount          *float64 `json:"amount,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос usecase
func (r *CreateAppointmentRequest) ToUseCaseRequest(createdBy *int64) (*create_appointment.Request, error) {
	date, err := handlers.ParseDateField("date", r.Date)
	if err != nil {
		return nil, err
	}

	return &create_appointment.Request{
		StaffID:         r.StaffID,
		ClientID:        r.ClientID,
		ServiceID:       r.ServiceID,
		Date:            date,
		StartTime:       types.TimeString(r.StartTime),
		DurationMinutes: r.DurationMinutes,
		Notes:           r.Notes,
		Source:          r.Source,
		Amount:          r.Amount,
		CreatedBy:       createdBy,
	}, nil
}
