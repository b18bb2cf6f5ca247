package resolve_shift

import (
	"net/http"

	"github.com/m04kA/SMC-SpaBookingService/internal/api/handlers"
)

const (
	msgInvalidStaffID = "некорректный ID мастера"
)

type Handler struct {
	service ShiftService
	logger  Logger
}

func NewHandler(service ShiftService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/staff/{staffId}/shift?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, err := handlers.PathID(r, "staffId")
	if err != nil {
		h.logger.Warn("GET /staff/{id}/shift - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	date, err := handlers.ParseDateField("date", r.URL.Query().Get("date"))
	if err != nil {
		h.logger.Warn("GET /staff/{id}/shift - Invalid date: %v", err)
		handlers.RespondDomainError(w, err)
		return
	}

	result, err := h.service.Resolve(r.Context(), staffID, date)
	if err != nil {
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("GET /staff/{id}/shift - Rejected: staff_id=%d: %v", staffID, err)
			return
		}
		h.logger.Error("GET /staff/{id}/shift - Failed to resolve shift: staff_id=%d, error=%v", staffID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /staff/{id}/shift - Shift resolved: staff_id=%d, working=%t", staffID, result.Working)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
