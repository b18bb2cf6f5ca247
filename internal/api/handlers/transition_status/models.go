package transition_status

import (
	"github.com/m04kA/SMC-SpaBookingService/internal/service/appointments/models"
)

// TransitionStatusRequest HTTP request model
type TransitionStatusRequest struct {
	Status string `json:"status"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *TransitionStatusRequest) ToServiceRequest(userID *int64) *models.TransitionStatusRequest {
	return &models.TransitionStatusRequest{
		Status: r.Status,
		UserID: userID,
	}
}
