package get_shift_range

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

// Handle GET /api/v1/shift-ranges/{shiftRangeId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	shiftRangeID, err := handlers.PathID(r, "shiftRangeId")
	if err != nil {
		h.logger.Warn("GET /shift-ranges/{id} - Invalid shift range ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidShiftRangeID)
		return
	}

	result, err := h.service.GetByID(r.Context(), shiftRangeID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			h.logger.Warn("GET /shift-ranges/{id} - Shift range not found: id=%d", shiftRangeID)
			handlers.RespondNotFound(w, msgNotFound)
			return
		}
		h.logger.Error("GET /shift-ranges/{id} - Failed to get shift range: id=%d, error=%v", shiftRangeID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, handlers.FromShiftRange(result))
}
