package list_shift_ranges

import (
	"context"

	"github.com/m04kA/SMC-SpaBookingService/internal/service/shifts/models"
)

type ShiftService interface {
	ListByStaff(ctx context.Context, staffID int64, includeInactive bool) ([]models.ShiftRangeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
