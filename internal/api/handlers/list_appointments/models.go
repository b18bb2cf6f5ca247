package list_appointments

import (
	"net/http"

	"github.com/m04kA/SMC-SpaBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SpaBookingService/internal/domain"
	"github.com/m04kA/SMC-SpaBookingService/internal/service/appointments/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(r *http.Request) (*models.ListRequest, error) {
	q := r.URL.Query()

	date, err := handlers.ParseDateField("date", q.Get("date"))
	if err != nil {
		return nil, err
	}

	staffID, err := handlers.QueryInt64(r, "staffId")
	if err != nil {
		return nil, domain.NewValidationError("staffId", "must be an integer")
	}

	includeCancelled, err := handlers.QueryBool(r, "includeCancelled")
	if err != nil {
		return nil, domain.NewValidationError("includeCancelled", "must be a boolean")
	}

	req := &models.ListRequest{
		Date:             date,
		StaffID:          staffID,
		IncludeCancelled: includeCancelled,
	}
	if status := q.Get("status"); status != "" {
		req.Status = &status
	}
	return req, nil
}
