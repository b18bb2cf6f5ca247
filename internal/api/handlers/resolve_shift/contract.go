package resolve_shift

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SpaBookingService/internal/service/shifts/models"
)

type ShiftService interface {
	Resolve(ctx context.Context, staffID int64, date time.Time) (*models.ResolvedShiftResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
