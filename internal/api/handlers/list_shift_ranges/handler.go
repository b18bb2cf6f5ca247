package list_shift_ranges

import (
	"net/http"

	"github.com/m04kA/SMC-SpaBookingService/internal/api/handlers"
)

const (
	msgInvalidStaffID = "некорректный ID мастера"
	msgInvalidParams  = "некорректные параметры запроса"
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

// Handle GET /api/v1/staff/{staffId}/shift-ranges
// Query params: includeInactive (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, err := handlers.PathID(r, "staffId")
	if err != nil {
		h.logger.Warn("GET /staff/{id}/shift-ranges - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	includeInactive, err := handlers.QueryBool(r, "includeInactive")
	if err != nil {
		h.logger.Warn("GET /staff/{id}/shift-ranges - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.ListByStaff(r.Context(), staffID, includeInactive)
	if err != nil {
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("GET /staff/{id}/shift-ranges - Rejected: staff_id=%d: %v", staffID, err)
			return
		}
		h.logger.Error("GET /staff/{id}/shift-ranges - Failed to list shift ranges: staff_id=%d, error=%v", staffID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /staff/{id}/shift-ranges - Shift ranges retrieved successfully: staff_id=%d, count=%d",
		staffID, len(result))
	handlers.RespondJSON(w, http.StatusOK, handlers.FromShiftRangeList(result))
}
