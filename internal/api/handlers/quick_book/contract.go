package quick_book

import (
	"context"

	"github.com/m04kA/SMC-SpaBookingService/internal/service/appointments/models"
	"github.com/m04kA/SMC-SpaBookingService/internal/usecase/quick_book"
)

type QuickBookUseCase interface {
	Execute(ctx context.Context, req *quick_book.Request) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
