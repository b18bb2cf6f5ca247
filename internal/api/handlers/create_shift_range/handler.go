package create_shift_range

import (
	"net/http"

	"github.com/m04kA/SMC-SpaBookingService/internal/api/handlers"
)

const (
	msgInvalidStaffID     = "некорректный ID мастера"
	msgInvalidRequestBody = "некорректное тело запроса"
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

// Handle POST /api/v1/staff/{staffId}/shift-ranges
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID, err := handlers.PathID(r, "staffId")
	if err != nil {
		h.logger.Warn("POST /staff/{id}/shift-ranges - Invalid staff ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidStaffID)
		return
	}

	var req CreateShiftRangeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /staff/{id}/shift-ranges - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(staffID)
	if err != nil {
		h.logger.Warn("POST /staff/{id}/shift-ranges - Invalid request: staff_id=%d: %v", staffID, err)
		handlers.RespondDomainError(w, err)
		return
	}

	result, err := h.service.Create(r.Context(), serviceReq)
	if err != nil {
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("POST /staff/{id}/shift-ranges - Rejected: staff_id=%d: %v", staffID, err)
			return
		}
		h.logger.Error("POST /staff/{id}/shift-ranges - Failed to create shift range: staff_id=%d, error=%v", staffID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /staff/{id}/shift-ranges - Shift range created successfully: id=%d, staff_id=%d",
		result.ID, staffID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromShiftRange(result))
}
