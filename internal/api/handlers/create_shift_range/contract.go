package create_shift_range

import (
	"context"

	"github.com/m04kA/SMC-SpaBookingService/internal/service/shifts/models"
)

type ShiftService interface {
	Create(ctx context.Context, req *models.CreateShiftRangeRequest) (*models.ShiftRangeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
