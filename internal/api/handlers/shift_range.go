package handlers

import (
	"github.com/m04kA/SMC-SpaBookingService/internal/domain"
	"github.com/m04kA/SMC-SpaBookingService/internal/service/shifts/models"
	"github.com/m04kA/SMC-SpaBookingService/pkg/types"
)

// Weekdays HTTP представление рабочих дней недели
type Weekdays struct {
	Monday    bool `json:"monday"`
	Tuesday   bool `json:"tuesday"`
	Wednesday bool `json:"wednesday"`
	Thursday  bool `json:"thursday"`
	Friday    bool `json:"friday"`
	Saturday  bool `json:"saturday"`
	Sunday    bool `json:"sunday"`
}

// ToModel конвертирует в модель сервиса
func (w Weekdays) ToModel() models.Weekdays {
	return models.Weekdays(w)
}

// ShiftRangeResponse HTTP представление диапазона смен
type ShiftRangeResponse struct {
	ID         int64             `json:"id"`
	StaffID    int64             `json:"staffId"`
	FromDate   string            `json:"fromDate"`
	ToDate     string            `json:"toDate"`
	Weekdays   Weekdays          `json:"weekdays"`
	ShiftStart types.TimeString  `json:"shiftStart"`
	ShiftEnd   types.TimeString  `json:"shiftEnd"`
	BreakStart *types.TimeString `json:"breakStart,omitempty"`
	BreakEnd   *types.TimeString `json:"breakEnd,omitempty"`
	Priority   int               `json:"priority"`
	IsActive   bool              `json:"isActive"`
	Label      *string           `json:"label,omitempty"`
}

// FromShiftRange конвертирует модель сервиса в HTTP ответ
func FromShiftRange(sr *models.ShiftRangeResponse) *ShiftRangeResponse {
	return &ShiftRangeResponse{
		ID:         sr.ID,
		StaffID:    sr.StaffID,
		FromDate:   domain.DateKey(sr.FromDate),
		ToDate:     domain.DateKey(sr.ToDate),
		Weekdays:   Weekdays(sr.Weekdays),
		ShiftStart: sr.ShiftStart,
		ShiftEnd:   sr.ShiftEnd,
		BreakStart: sr.BreakStart,
		BreakEnd:   sr.BreakEnd,
		Priority:   sr.Priority,
		IsActive:   sr.IsActive,
		Label:      sr.Label,
	}
}

// FromShiftRangeList конвертирует список
func FromShiftRangeList(list []models.ShiftRangeResponse) []ShiftRangeResponse {
	result := make([]ShiftRangeResponse, 0, len(list))
	for i := range list {
		result = append(result, *FromShiftRange(&list[i]))
	}
	return result
}
