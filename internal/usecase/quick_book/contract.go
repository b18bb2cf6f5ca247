package quick_book

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SpaBookingService/internal/domain"
	"github.com/m04kA/SMC-SpaBookingService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-SpaBookingService/internal/integrations/staffservice"
	"github.com/m04kA/SMC-SpaBookingService/internal/service/appointments/models"
	"github.com/m04kA/SMC-SpaBookingService/internal/usecase/create_appointment"
)

// StaffServiceClient интерфейс клиента для StaffService
type StaffServiceClient interface {
	GetRoster(ctx context.Context, activeOnly bool) ([]staffservice.Staff, error)
}

// CatalogServiceClient интерфейс клиента для CatalogService
type CatalogServiceClient interface {
	GetService(ctx context.Context, serviceID int64) (*catalogservice.Service, error)
}

// ShiftRepository интерфейс репозитория диапазонов смен
type ShiftRepository interface {
	ListCovering(ctx context.Context, staffIDs []int64, date time.Time) ([]*domain.ShiftRange, error)
}

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error)
}

// CreateAppointmentUseCase обычный путь создания записи
type CreateAppointmentUseCase interface {
	Execute(ctx context.Context, req *create_appointment.Request) (*models.AppointmentResponse, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
