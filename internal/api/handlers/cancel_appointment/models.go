package cancel_appointment

import (
	"github.com/m04kA/SMC-SpaBookingService/internal/service/appointments/models"
)

// CancelAppointmentRequest HTTP request model, тело необязательно
type CancelAppointmentRequest struct {
	CancellationReason *string `json:"cancellationReason,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CancelAppointmentRequest) ToServiceRequest(userID *int64) *models.CancelRequest {
	return &models.CancelRequest{
		Reason: r.CancellationReason,
		UserID: userID,
	}
}
