package models

import (
	"time"

	"github.com/m04kA/SMC-SpaBookingService/internal/domain"
	"github.com/m04kA/SMC-SpaBookingService/pkg/types"
)

// Weekdays флаги рабочих дней недели
type Weekdays struct {
	Monday    bool
	Tuesday   bool
	Wednesday bool
	Thursday  bool
	Friday    bool
	Saturday  bool
	Sunday    bool
}

// Request модели

// CreateShiftRangeRequest запрос на создание диапазона смен
type CreateShiftRangeRequest struct {
	StaffID    int64
	FromDate   time.Time
	ToDate     time.Time
	Weekdays   Weekdays
	ShiftStart types.TimeString
	ShiftEnd   types.TimeString
	BreakStart *types.TimeString
	BreakEnd   *types.TimeString
	Priority   int
	Label      *string
}

// ToDomain конвертирует запрос в domain модель
func (r *CreateShiftRangeRequest) ToDomain() *domain.ShiftRange {
	return &domain.ShiftRange{
		StaffID:    r.StaffID,
		FromDate:   r.FromDate,
		ToDate:     r.ToDate,
		Monday:     r.Weekdays.Monday,
		Tuesday:    r.Weekdays.Tuesday,
		Wednesday:  r.Weekdays.Wednesday,
		Thursday:   r.Weekdays.Thursday,
		Friday:     r.Weekdays.Friday,
		Saturday:   r.Weekdays.Saturday,
		Sunday:     r.Weekdays.Sunday,
		ShiftStart: r.ShiftStart,
		ShiftEnd:   r.ShiftEnd,
		BreakStart: r.BreakStart,
		BreakEnd:   r.BreakEnd,
		Priority:   r.Priority,
		IsActive:   true,
		Label:      r.Label,
	}
}

// UpdateShiftRangeRequest частичное обновление: nil поля не меняются
type UpdateShiftRangeRequest struct {
	FromDate   *time.Time
	ToDate     *time.Time
	Weekdays   *Weekdays
	ShiftStart *types.TimeString
	ShiftEnd   *types.TimeString
	BreakStart *types.TimeString
	BreakEnd   *types.TimeString
	ClearBreak bool // убрать перерыв
	Priority   *int
	IsActive   *bool
	Label      *string
}

// ApplyTo применяет изменения к диапазону
func (r *UpdateShiftRangeRequest) ApplyTo(sr *domain.ShiftRange) {
	if r.FromDate != nil {
		sr.FromDate = *r.FromDate
	}
	if r.ToDate != nil {
		sr.ToDate = *r.ToDate
	}
	if r.Weekdays != nil {
		sr.Monday = r.Weekdays.Monday
		sr.Tuesday = r.Weekdays.Tuesday
		sr.Wednesday = r.Weekdays.Wednesday
		sr.Thursday = r.Weekdays.Thursday
		sr.Friday = r.Weekdays.Friday
		sr.Saturday = r.Weekdays.Saturday
		sr.Sunday = r.Weekdays.Sunday
	}
	if r.ShiftStart != nil {
		sr.ShiftStart = *r.ShiftStart
	}
	if r.ShiftEnd != nil {
		sr.ShiftEnd = *r.ShiftEnd
	}
	if r.ClearBreak {
		sr.BreakStart = nil
		sr.BreakEnd = nil
	} else {
		if r.BreakStart != nil {
			sr.BreakStart = r.BreakStart
		}
		if r.BreakEnd != nil {
			sr.BreakEnd = r.BreakEnd
		}
	}
	if r.Priority != nil {
		sr.Priority = *r.Priority
	}
	if r.IsActive != nil {
		sr.IsActive = *r.IsActive
	}
	if r.Label != nil {
		sr.Label = r.Label
	}
}

// Response модели

// ShiftRangeResponse данные диапазона смен
type ShiftRangeResponse struct {
	ID         int64
	StaffID    int64
	FromDate   time.Time
	ToDate     time.Time
	Weekdays   Weekdays
	ShiftStart types.TimeString
	ShiftEnd   types.TimeString
	BreakStart *types.TimeString
	BreakEnd   *types.TimeString
	Priority   int
	IsActive   bool
	Label      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// FromDomainShiftRange конвертирует domain модель в response
func FromDomainShiftRange(sr *domain.ShiftRange) *ShiftRangeResponse {
	return &ShiftRangeResponse{
		ID:       sr.ID,
		StaffID:  sr.StaffID,
		FromDate: sr.FromDate,
		ToDate:   sr.ToDate,
		Weekdays: Weekdays{
			Monday:    sr.Monday,
			Tuesday:   sr.Tuesday,
			Wednesday: sr.Wednesday,
			Thursday:  sr.Thursday,
			Friday:    sr.Friday,
			Saturday:  sr.Saturday,
			Sunday:    sr.Sunday,
		},
		ShiftStart: sr.ShiftStart,
		ShiftEnd:   sr.ShiftEnd,
		BreakStart: sr.BreakStart,
		BreakEnd:   sr.BreakEnd,
		Priority:   sr.Priority,
		IsActive:   sr.IsActive,
		Label:      sr.Label,
		CreatedAt:  sr.CreatedAt,
		UpdatedAt:  sr.UpdatedAt,
	}
}

// FromDomainShiftRangeList конвертирует список
func FromDomainShiftRangeList(list []*domain.ShiftRange) []ShiftRangeResponse {
	result := make([]ShiftRangeResponse, 0, len(list))
	for _, sr := range list {
		result = append(result, *FromDomainShiftRange(sr))
	}
	return result
}

// ResolvedShiftResponse эффективная смена мастера на дату.
// Working=false означает выходной: смена не найдена.
type ResolvedShiftResponse struct {
	StaffID      int64
	Date         time.Time
	Working      bool
	ShiftRangeID int64
	ShiftStart   types.TimeString
	ShiftEnd     types.TimeString
	BreakStart   *types.TimeString
	BreakEnd     *types.TimeString
	Label        string
}

// FromDomainResolvedShift конвертирует результат резолвера; shift может быть nil
func FromDomainResolvedShift(staffID int64, date time.Time, shift *domain.ResolvedShift) *ResolvedShiftResponse {
	if shift == nil {
		return &ResolvedShiftResponse{StaffID: staffID, Date: date}
	}
	return &ResolvedShiftResponse{
		StaffID:      staffID,
		Date:         date,
		Working:      true,
		ShiftRangeID: shift.ShiftRangeID,
		ShiftStart:   shift.ShiftStart,
		ShiftEnd:     shift.ShiftEnd,
		BreakStart:   shift.BreakStart,
		BreakEnd:     shift.BreakEnd,
		Label:        shift.Label,
	}
}
