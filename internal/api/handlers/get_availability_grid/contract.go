package get_availability_grid

import (
	"context"

	"github.com/m04kA/SMC-SpaBookingService/internal/usecase/get_availability_grid"
)

type GetAvailabilityGridUseCase interface {
	Execute(ctx context.Context, req *get_availability_grid.Request) (*get_availability_grid.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
