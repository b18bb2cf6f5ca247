package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SpaBookingService/internal/domain"
	"github.com/m04kA/SMC-SpaBookingService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-SpaBookingService/internal/integrations/clientservice"
	"github.com/m04kA/SMC-SpaBookingService/internal/integrations/staffservice"
	"github.com/m04kA/SMC-SpaBookingService/internal/service/notify"
)

// AppointmentRepository интерфейс репозитория записей
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	LockStaffDay(ctx context.Context, staffID int64, date time.Time) error
	ListForStaffWindowForUpdate(ctx context.Context, staffID int64, from, to time.Time) ([]*domain.Appointment, error)
}

// StaffServiceClient интерфейс клиента для StaffService
type StaffServiceClient interface {
	GetStaff(ctx context.Context, staffID int64) (*staffservice.Staff, error)
}

// CatalogServiceClient интерфейс клиента для CatalogService
type CatalogServiceClient interface {
	GetService(ctx context.Context, serviceID int64) (*catalogservice.Service, error)
}

// ClientServiceClient интерфейс клиента для ClientService
type ClientServiceClient interface {
	GetClient(ctx context.Context, clientID int64) (*clientservice.ClientCard, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Notifier действия после успешного коммита (кеш, события)
type Notifier interface {
	Changed(ctx context.Context, change notify.Change)
}

// Metrics счетчики записей и конфликтов
type Metrics interface {
	IncAppointmentCreated(source string)
	IncBookingConflict(source string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
