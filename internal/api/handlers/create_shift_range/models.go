package create_shift_range

import (
	"github.com/m04kA/SMC-SpaBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SpaBookingService/internal/service/shifts/models"
)

// CreateShiftRangeRequest HTTP request model
type CreateShiftRangeRequest struct {
	FromDate   string            `json:"fromDate"`
	ToDate     string            `json:"toDate"`
	Weekdays   handlers.Weekdays `json:"weekdays"`
	ShiftStart string            `json:"shiftStart"`
	ShiftEnd   string            `json:"shiftEnd"`
	BreakStart *string           `json:"breakStart,omitempty"`
	BreakEnd   *string           `json:"breakEnd,omitempty"`
	Priority   int               `json:"priority"`
	Label      *string           `json:"label,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CreateShiftRangeRequest) ToServiceRequest(staffID int64) (*models.CreateShiftRangeRequest, error) {
	fromDate, err := handlers.ParseDateField("fromDate", r.FromDate)
	if err != nil {
		return nil, err
	}
	toDate, err := handlers.ParseDateField("toDate", r.ToDate)
	if err != nil {
		return nil, err
	}
	shiftStart, err := handlers.ParseTime("shiftStart", r.ShiftStart)
	if err != nil {
		return nil, err
	}
	shiftEnd, err := handlers.ParseTime("shiftEnd", r.ShiftEnd)
	if err != nil {
		return nil, err
	}
	breakStart, err := handlers.ParseOptionalTime("breakStart", r.BreakStart)
	if err != nil {
		return nil, err
	}
	breakEnd, err := handlers.ParseOptionalTime("breakEnd", r.BreakEnd)
	if err != nil {
		return nil, err
	}

	return &models.CreateShiftRangeRequest{
		StaffID:    staffID,
		FromDate:   fromDate,
		ToDate:     toDate,
		Weekdays:   r.Weekdays.ToModel(),
		ShiftStart: shiftStart,
		ShiftEnd:   shiftEnd,
		BreakStart: breakStart,
		BreakEnd:   breakEnd,
		Priority:   r.Priority,
		Label:      r.Label,
	}, nil
}
