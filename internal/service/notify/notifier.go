package notify

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SpaBookingService/internal/domain"
	"github.com/m04kA/SMC-SpaBookingService/internal/infra/events"
)

// GridCache инвалидация кеша сеток
type GridCache interface {
	Invalidate(ctx context.Context, dates ...time.Time) error
}

// EventPublisher издатель событий жизненного цикла записи
type EventPublisher interface {
	Publish(ctx context.Context, evt events.AppointmentEvent) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Change изменение записи, зафиксированное в БД
type Change struct {
	Type           events.EventType
	Appointment    *domain.Appointment
	PreviousStatus domain.AppointmentStatus
	PreviousStart  *time.Time // для переноса: старая дата тоже инвалидируется
}

// Notifier выполняет действия после коммита: сбрасывает кеш сеток затронутых дат
// и публикует событие. Ошибки только логируются, запрос уже успешно выполнен.
type Notifier struct {
	cache     GridCache
	publisher EventPublisher
	location  *time.Location
	now       func() time.Time
	logger    Logger
}

// NewNotifier создает Notifier. Даты для кеша считаются в часовом поясе салона.
func NewNotifier(cache GridCache, publisher EventPublisher, location *time.Location, logger Logger) *Notifier {
	if location == nil {
		location = time.UTC
	}
	return &Notifier{
		cache:     cache,
		publisher: publisher,
		location:  location,
		now:       time.Now,
		logger:    logger,
	}
}

// Changed обрабатывает зафиксированное изменение записи
func (n *Notifier) Changed(ctx context.Context, change Change) {
	appt := change.Appointment
	if appt == nil {
		return
	}

	dates := []time.Time{appt.StartTime.In(n.location)}
	if change.PreviousStart != nil {
		dates = append(dates, change.PreviousStart.In(n.location))
	}

	if err := n.cache.Invalidate(ctx, dates...); err != nil {
		n.logger.Error("Notify: failed to invalidate grid cache for appointment id=%d: %v", appt.ID, err)
	}

	evt := events.NewAppointmentEvent(change.Type, appt, change.PreviousStatus, n.now())
	if err := n.publisher.Publish(ctx, evt); err != nil {
		n.logger.Error("Notify: failed to publish %s for appointment id=%d: %v", change.Type, appt.ID, err)
		return
	}

	n.logger.Info("Notify: published %s for appointment id=%d", change.Type, appt.ID)
}
