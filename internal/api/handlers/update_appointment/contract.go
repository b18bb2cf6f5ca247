package update_appointment

import (
	"context"

	"github.com/m04kA/SMC-SpaBookingService/internal/service/appointments/models"
	"github.com/m04kA/SMC-SpaBookingService/internal/usecase/update_appointment"
)

type UpdateAppointmentUseCase interface {
	Execute(ctx context.Context, req *update_appointment.Request) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
