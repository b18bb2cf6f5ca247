package update_appointment

import (
	"fmt"

	"github.com/m04kA/SMC-SpaBookingService/internal/domain"
)

// validateRequest валидирует переданные поля запроса
func validateRequest(req *Request) error {
	if req.AppointmentID <= 0 {
		return domain.NewValidationError("appointmentId", "must be positive")
	}

	if req.StaffID != nil && *req.StaffID <= 0 {
		return domain.NewValidationError("staffId", "must be positive")
	}

	if req.ClientID != nil && *req.ClientID <= 0 {
		return domain.NewValidationError("clientId", "must be positive")
	}

	if req.ServiceID != nil && *req.ServiceID <= 0 {
		return domain.NewValidationError("serviceId", "must be positive")
	}

	if req.Date != nil && req.Date.IsZero() {
		return domain.NewValidationError("date", "must not be empty")
	}

	if req.StartTime != nil {
		if err := req.StartTime.Validate(); err != nil {
			return domain.NewValidationError("startTime", "must be in HH:MM format")
		}
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

	if req.PaymentStatus != nil && !domain.PaymentStatus(*req.PaymentStatus).IsValid() {
		return domain.NewValidationError("paymentStatus", "must be one of pending, partial, paid, refunded")
	}

	return nil
}
