package create_appointment

import (
	"context"

	"github.com/m04kA/SMC-SpaBookingService/internal/service/appointments/models"
	"github.com/m04kA/SMC-SpaBookingService/internal/usecase/create_appointment"
)

type CreateAppointmentUseCase interface {
	Execute(ctx context.Context, req *create_appointment.Request) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
