package get_shift_range

import (
	"context"

	"github.com/m04kA/SMC-SpaBookingService/internal/service/shifts/models"
)

type ShiftService interface {
	GetByID(ctx context.Context, id int64) (*models.ShiftRangeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
