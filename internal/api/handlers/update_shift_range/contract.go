package update_shift_range

import (
	"context"

	"github.com/m04kA/SMC-SpaBookingService/internal/service/shifts/models"
)

type ShiftService interface {
	Update(ctx context.Context, id int64, req *models.UpdateShiftRangeRequest) (*models.ShiftRangeResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
