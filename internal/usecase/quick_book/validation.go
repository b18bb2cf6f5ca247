package quick_book

import (
	"github.com/m04kA/SMC-SpaBookingService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
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

	if req.StaffID != nil && *req.StaffID <= 0 {
		return domain.NewValidationError("staffId", "must be positive")
	}

	return nil
}
