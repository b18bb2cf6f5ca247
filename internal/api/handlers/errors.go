package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SpaBookingService/internal/domain"
)

const msgNotFound = "объект не найден"

// BlockingSummary запись, из-за которой слот занят
type BlockingSummary struct {
	ID          int64     `json:"id"`
	ClientName  string    `json:"clientName"`
	ServiceName string    `json:"serviceName"`
	Start       time.Time `json:"start"`
	End         time.Time `json:"end"`
}

func blockingSummary(a *domain.Appointment) *BlockingSummary {
	if a == nil {
		return nil
	}
	return &BlockingSummary{
		ID:          a.ID,
		ClientName:  a.ClientName,
		ServiceName: a.ServiceName,
		Start:       a.StartTime,
		End:         a.EndTime,
	}
}

// RespondDomainError отвечает на ошибки бизнес-логики:
// validation -> 400, not found -> 404, conflict и invalid transition -> 409.
// Возвращает false, если ошибка не распознана и ответ не записан.
func RespondDomainError(w http.ResponseWriter, err error) bool {
	var (
		validationErr *domain.ValidationError
		conflictErr   *domain.ConflictError
		transitionErr *domain.InvalidTransitionError
	)

	switch {
	case errors.As(err, &validationErr):
		RespondValidation(w, validationErr.Field, validationErr.Message)

	case errors.As(err, &conflictErr):
		RespondJSON(w, http.StatusConflict, ErrorResponse{
			Error:               codeConflict,
			Message:             conflictErr.Message,
			BlockingAppointment: blockingSummary(conflictErr.Blocking),
		})

	case errors.As(err, &transitionErr):
		RespondJSON(w, http.StatusConflict, ErrorResponse{
			Error:   codeInvalidTransition,
			Message: string(transitionErr.From) + " -> " + string(transitionErr.To),
		})

	case errors.Is(err, domain.ErrNotFound):
		RespondNotFound(w, msgNotFound)

	default:
		return false
	}
	return true
}
