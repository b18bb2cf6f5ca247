package deactivate_shift_range

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SpaBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SpaBookingService/internal/domain"
)

const (
	msgInvalidShiftRangeID = "некорректный ID диапазона смен"
	msgNotFound            = "диапазон смен не найден"
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

// Handle PATCH /api/v1/shift-ranges/{shiftRangeId}/deactivate
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shiftRangeID, err := handlers.PathID(r, "shiftRangeId")
	if err != nil {
		h.logger.Warn("PATCH /shift-ranges/{id}/deactivate - Invalid shift range ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidShiftRangeID)
		return
	}

	if err := h.service.Deactivate(r.Context(), shiftRangeID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.logger.Warn("PATCH /shift-ranges/{id}/deactivate - Shift range not found: id=%d", shiftRangeID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("PATCH /shift-ranges/{id}/deactivate - Failed to deactivate: id=%d, error=%v", shiftRangeID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("PATCH /shift-ranges/{id}/deactivate - Shift range deactivated: id=%d", shiftRangeID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
