package create_appointment

import (
	"net/http"

	"github.com/m04kA/SMC-SpaBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SpaBookingService/internal/api/middleware"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Декодируем body
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем в модель usecase, оператор берется из X-User-ID
	ucReq, err := req.ToUseCaseRequest(middleware.UserIDPtr(r.Context()))
	if err != nil {
		h.logger.Warn("POST /appointments - Invalid request: %v", err)
		handlers.RespondDomainError(w, err)
		return
	}

	// Создаем запись
	result, err := h.useCase.Execute(r.Context(), ucReq)
	if err != nil {
		if handlers.RespondDomainError(w, err) {
			h.logger.Warn("POST /appointments - Rejected: staff_id=%d, date=%s, start=%s: %v",
				req.StaffID, req.Date, req.StartTime, err)
			return
		}
		h.logger.Error("POST /appointments - Failed to create appointment: staff_id=%d, error=%v", req.StaffID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: appointment_id=%d, staff_id=%d",
		result.ID, result.StaffID)
	handlers.RespondJSON(w, http.StatusCreated, handlers.FromAppointment(result))
}
