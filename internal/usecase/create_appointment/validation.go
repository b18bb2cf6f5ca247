package create_appointment

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SpaBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.StaffID <= 0 {
		return domain.NewValidationError("staffId", "must be positive")
	}

	if req.ClientID <= 0 {
		return domain.NewValidationError("clientId", "must be positive")
	}

	if req.ServiceID <= 0 {
		return domain.NewValidationError("serviceId", "must be positive")
	}

	if req.Date.IsZero() {
		return domain.NewValidationError("date", "is required")
	}

	if req.StartTime.IsZero() {
		return domain.NewValidationError("startTime", "is required")
	}

	if err := req.StartTime.Validate(); err != nil {
		return domain.NewValidationError("startTime", "must be in HH:MM format")
	}

	if req.Source != "" && !domain.BookingSource(req.Source).IsValid() {
		return domain.NewValidationError("source", "must be one of manual, walk_in, phone, online, quick_book")
	}

	if req.DurationMinutes != nil && (*req.DurationMinutes <= 0 || *req.DurationMinutes > domain.MaxAppointmentMinutes) {
		return domain.NewValidationError("durationMinutes",
			fmt.Sprintf("must be between 1 and %d", domain.MaxAppointmentMinutes))
	}

	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return domain.NewValidationError("notes",
			fmt.Sprintf("must be at most %d characters", domain.MaxNotesLength))
	}

	if req.Amount != nil && *req.Amount < 0 {
		return domain.NewValidationError("amount", "must not be negative")
	}

	return nil
}

// validateDate проверяет, что дата записи не раньше текущей даты салона
func validateDate(date, now time.Time) error {
	if domain.DateKey(date) < domain.DateKey(now) {
		return domain.NewValidationError("date", "must not be in the past")
	}
	return nil
}
