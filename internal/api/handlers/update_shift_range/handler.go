package update_shift_range

import (
	"net/http"

	"github.com/m04kA/SMC-SpaBookingService/internal/api/handlers"
)

const (
	msgInvalidShiftRangeID = "некорректный ID диапазона смен"
	msgInvalidRequestBody  = "некорректное тело запроса"
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

// Handle PUT /api/v1/shift-ranges/{shiftRangeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shiftRangeID, err := handlers.PathID(r, "shiftRangeId")
	if err != nil {
		h.logger.Warn("PUT /shift-ranges/{id} - Invalid shift range ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidShiftRangeID)
		return
	}

	var req UpdateShiftRangeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /shift-ranges/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest()
	if err != nil {
		h.logger.Warn("PUT /shift-ranges/{id} - Invalid request: id=%d: %v", shiftRangeID, err)
		handlers.RespondDomainError(w, err)
		return
	}

	result, err := h.service.Update(r.Context(), shiftRangeID, serviceReq)
	if err != nil {
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("PUT /shift-ranges/{id} - Rejected: id=%d: %v", shiftRangeID, err)
			return
		}
		h.logger.Error("PUT /shift-ranges/{id} - Failed to update shift range: id=%d, error=%v", shiftRangeID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PUT /shift-ranges/{id} - Shift range updated successfully: id=%d", shiftRangeID)
	handlers.RespondJSON(w, http.StatusOK, handlers.FromShiftRange(result))
}
