package shifts

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SpaBookingService/internal/domain"
)

// ShiftRepository интерфейс репозитория диапазонов смен
type ShiftRepository interface {
	Create(ctx context.Context, sr *domain.ShiftRange) (*domain.ShiftRange, error)
	GetByID(ctx context.Context, id int64) (*domain.ShiftRange, error)
	ListByStaff(ctx context.Context, staffID int64, includeInactive bool) ([]*domain.ShiftRange, error)
	ListCovering(ctx context.Context, staffIDs []int64, date time.Time) ([]*domain.ShiftRange, error)
	Update(ctx context.Context, sr *domain.ShiftRange) error
	Deactivate(ctx context.Context, id int64) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// GridCache инвалидация кеша сеток
type GridCache interface {
	Invalidate(ctx context.Context, dates ...time.Time) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
