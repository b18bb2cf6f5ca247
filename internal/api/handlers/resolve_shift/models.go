package resolve_shift

import (
	"github.com/m04kA/SMC-SpaBookingService/internal/domain"
	"github.com/m04kA/SMC-SpaBookingService/internal/service/shifts/models"
	"github.com/m04kA/SMC-SpaBookingService/pkg/types"
)

// ResolvedShiftResponse HTTP представление смены мастера на дату
type ResolvedShiftResponse struct {
	StaffID      int64             `json:"staffId"`
	Date         string            `json:"date"`
	Working      bool              `json:"working"`
	ShiftRangeID *int64            `json:"shiftRangeId,omitempty"`
	ShiftStart   *types.TimeString `json:"shiftStart,omitempty"`
	ShiftEnd     *types.TimeString `json:"shiftEnd,omitempty"`
	BreakStart   *types.TimeString `json:"breakStart,omitempty"`
	BreakEnd     *types.TimeString `json:"breakEnd,omitempty"`
	Label        string            `json:"label,omitempty"`
}

// FromServiceResponse конвертирует модель сервиса в HTTP ответ
func FromServiceResponse(resp *models.ResolvedShiftResponse) *ResolvedShiftResponse {
	out := &ResolvedShiftResponse{
		StaffID: resp.StaffID,
		Date:    domain.DateKey(resp.Date),
		Working: resp.Working,
	}
	if !resp.Working {
		return out
	}

	shiftRangeID := resp.ShiftRangeID
	shiftStart, shiftEnd := resp.ShiftStart, resp.ShiftEnd
	out.ShiftRangeID = &shiftRangeID
	out.ShiftStart = &shiftStart
	out.ShiftEnd = &shiftEnd
	out.BreakStart = resp.BreakStart
	out.BreakEnd = resp.BreakEnd
	out.Label = resp.Label
	return out
}
