package transition_status

import (
	"context"

	"github.com/m04kA/SMC-SpaBookingService/internal/service/appointments/models"
)

type AppointmentService interface {
	TransitionStatus(ctx context.Context, id int64, req *models.TransitionStatusRequest) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
