package get_availability_grid

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SpaBookingService/internal/config"
	"github.com/m04kA/SMC-SpaBookingService/internal/domain"
	"github.com/m04kA/SMC-SpaBookingService/internal/infra/cache/gridcache"
	"github.com/m04kA/SMC-SpaBookingService/internal/integrations/staffservice"
)

// StaffServiceClient интерфейс клиента для StaffService
type StaffServiceClient interface {
	GetRoster(ctx context.Context, activeOnly bool) ([]staffservice.Staff, error)
}

// ShiftRepository интерфейс репозитория диапазонов смен
type ShiftRepository interface {
	ListCovering(ctx context.Context, staffIDs []int64, date time.Time) ([]*domain.ShiftRange, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error)
}

// GridCache интерфейс кеша сеток
type GridCache interface {
	Version(ctx context.Context, date time.Time) (int64, error)
	Get(ctx context.Context, q gridcache.Query) (*domain.AvailabilityGrid, bool, error)
	Set(ctx context.Context, q gridcache.Query, grid *domain.AvailabilityGrid) error
}

// ViewPresets пресеты часов и шага сетки для представлений
type ViewPresets interface {
	View(view domain.GridView) config.ViewConfig
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
