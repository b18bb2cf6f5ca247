package update_shift_range

import (
	"github.com/m04kA/SMC-SpaBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SpaBookingService/internal/service/shifts/models"
)

// UpdateShiftRangeRequest HTTP request model. Отсутствующие поля не меняются.
type UpdateShiftRangeRequest struct {
	FromDate   *string            `json:"fromDate,omitempty"`
	ToDate     *string            `json:"toDate,omitempty"`
	Weekdays   *handlers.Weekdays `json:"weekdays,omitempty"`
	ShiftStart *string            `json:"shiftStart,omitempty"`
	ShiftEnd   *string            `json:"shiftEnd,omitempty"`
	BreakStart *string            `json:"breakStart,omitempty"`
	BreakEnd   *string            `json:"breakEnd,omitempty"`
	ClearBreak bool               `json:"clearBreak,omitempty"`
	Priority   *int               `json:"priority,omitempty"`
	IsActive   *bool              `json:"isActive,omitempty"`
	Label      *string            `json:"label,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateShiftRangeRequest) ToServiceRequest() (*models.UpdateShiftRangeRequest, error) {
	req := &models.UpdateShiftRangeRequest{
		ClearBreak: r.ClearBreak,
		Priority:   r.Priority,
		IsActive:   r.IsActive,
		Label:      r.Label,
	}

	if r.FromDate != nil {
		fromDate, err := handlers.ParseDateField("fromDate", *r.FromDate)
		if err != nil {
			return nil, err
		}
		req.FromDate = &fromDate
	}
	if r.ToDate != nil {
		toDate, err := handlers.ParseDateField("toDate", *r.ToDate)
		if err != nil {
			return nil, err
		}
		req.ToDate = &toDate
	}
	if r.Weekdays != nil {
		weekdays := r.Weekdays.ToModel()
		req.Weekdays = &weekdays
	}

	var err error
	if req.ShiftStart, err = handlers.ParseOptionalTime("shiftStart", r.ShiftStart); err != nil {
		return nil, err
	}
	if req.ShiftEnd, err = handlers.ParseOptionalTime("shiftEnd", r.ShiftEnd); err != nil {
		return nil, err
	}
	if req.BreakStart, err = handlers.ParseOptionalTime("breakStart", r.BreakStart); err != nil {
		return nil, err
	}
	if req.BreakEnd, err = handlers.ParseOptionalTime("breakEnd", r.BreakEnd); err != nil {
		return nil, err
	}

	return req, nil
}
