package quick_book

import (
	"net/http"

	"github.com/m04kA/SMC-SpaBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SpaBookingService/internal/api/middleware"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
)

type Handler struct {
	useCase QuickBookUseCase
	logger  Logger
}

func NewHandler(useCase QuickBookUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments/quick-book
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuickBookRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments/quick-book - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	ucReq, err := req.ToUseCaseRequest(middleware.UserIDPtr(r.Context()))
	if err != nil {
		h.logger.Warn("POST /appointments/quick-book - Invalid request: %v", err)
		handlers.RespondDomainError(w, err)
		return
	}

	result, err := h.useCase.Execute(r.Context(), ucReq)
	if err != nil {
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("POST /appointments/quick-book - Rejected: service_id=%d, date=%s, start=%s: %v",
				req.ServiceID, req.Date, req.StartTime, err)
			return
		}
		h.logger.Error("POST /appointments/quick-book - Failed to book: service_id=%d, error=%v", req.ServiceID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /appointments/quick-book - Appointment booked: appointment_id=%d, staff_id=%d",
		result.ID, result.StaffID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromAppointment(result))
}
