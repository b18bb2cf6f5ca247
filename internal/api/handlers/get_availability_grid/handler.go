package get_availability_grid

import (
	"net/http"

	"github.com/m04kA/SMC-SpaBookingService/internal/api/handlers"
)

// CacheHeader сообщает, получена ли сетка из кеша (HIT/MISS)
const CacheHeader = "X-Cache"

type Handler struct {
	useCase GetAvailabilityGridUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityGridUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability
// Query params: date (обязательно), staffId, view, startHour, endHour, slotDuration
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ucReq, err := ToUseCaseRequest(r)
	if err != nil {
		h.logger.Warn("GET /availability - Invalid parameters: %v", err)
		handlers.RespondDomainError(w, err)
		return
	}

	result, err := h.useCase.Execute(r.Context(), ucReq)
	if err != nil {
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("GET /availability - Rejected: %v", err)
			return
		}
		h.logger.Error("GET /availability - Failed to build grid: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /availability - Grid built: date=%s, staff=%d, cells=%d, from_cache=%t",
		r.URL.Query().Get("date"), len(result.Grid.Staff), len(result.Grid.Cells), result.FromCache)
	cacheStatus := "MISS"
	if result.FromCache {
		cacheStatus = "HIT"
	}
	w.Header().Set(CacheHeader, cacheStatus)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
