package get_availability_grid

import (
	"github.com/m04kA/SMC-SpaBookingService/internal/domain"
	"github.com/m04kA/SMC-SpaBookingService/internal/service/schedule"
)

// window итоговые параметры сетки после применения пресета
type window struct {
	view      domain.GridView
	startHour int
	endHour   int
	duration  int
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Date.IsZero() {
		return domain.NewValidationError("date", "is required")
	}

	if req.StaffID != nil && *req.StaffID <= 0 {
		return domain.NewValidationError("staffId", "must be positive")
	}

	if req.View != "" && !domain.GridView(req.View).IsValid() {
		return domain.NewValidationError("view", "must be one of calendar, staff, timeline")
	}

	return nil
}

// resolveWindow накладывает параметры запроса на пресет представления
func resolveWindow(req *Request, presets ViewPresets) window {
	view := domain.ViewCalendar
	if req.View != "" {
		view = domain.GridView(req.View)
	}

	preset := presets.View(view)
	w := window{
		view:      view,
		startHour: preset.StartHour,
		endHour:   preset.EndHour,
		duration:  preset.SlotDurationMinutes,
	}

	if req.StartHour != nil {
		w.startHour = *req.StartHour
	}
	if req.EndHour != nil {
		w.endHour = *req.EndHour
	}
	if req.SlotDurationMinutes != nil {
		w.duration = *req.SlotDurationMinutes
	}
	w.duration = schedule.NormalizeSlotDuration(w.duration)

	return w
}
