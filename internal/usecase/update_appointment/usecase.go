package update_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SpaBookingService/internal/domain"
	"github.com/m04kA/SMC-SpaBookingService/internal/infra/events"
	appointmentRepo "github.com/m04kA/SMC-SpaBookingService/internal/infra/storage/appointment"
	catalogClient "github.com/m04kA/SMC-SpaBookingService/internal/integrations/catalogservice"
	clientClient "github.com/m04kA/SMC-SpaBookingService/internal/integrations/clientservice"
	staffClient "github.com/m04kA/SMC-SpaBookingService/internal/integrations/staffservice"
	"github.com/m04kA/SMC-SpaBookingService/internal/service/appointments/models"
	"github.com/m04kA/SMC-SpaBookingService/internal/service/notify"
	"github.com/m04kA/SMC-SpaBookingService/internal/service/schedule"
	"github.com/m04kA/SMC-SpaBookingService/pkg/types"
)

// UseCase use case изменения записи (перенос, смена мастера или услуги, заметки, оплата)
type UseCase struct {
	appointmentRepo AppointmentRepository
	staffClient     StaffServiceClient
	catalogClient   CatalogServiceClient
	clientClient    ClientServiceClient
	txManager       TransactionManager
	notifier        Notifier
	metrics         Metrics
	location        *time.Location
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	staffClient StaffServiceClient,
	catalogClient CatalogServiceClient,
	clientClient ClientServiceClient,
	txManager TransactionManager,
	notifier Notifier,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		appointmentRepo: appointmentRepo,
		staffClient:     staffClient,
		catalogClient:   catalogClient,
		clientClient:    clientClient,
		txManager:       txManager,
		notifier:        notifier,
		metrics:         metrics,
		location:        location,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// lookups данные внешних сервисов для измененных полей
type lookups struct {
	service    *catalogClient.Service
	clientName *string
}

// Execute выполняет use case изменения записи.
// При изменении интервала или мастера конфликты проверяются заново,
// без учета самой записи, в той же транзакции, что и обновление.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.AppointmentResponse, error) {
	uc.logger.Info("UpdateAppointment: appointment id=%d, staff=%v, service=%v, date=%v, time=%v",
		req.AppointmentID, req.StaffID, req.ServiceID, req.Date, req.StartTime)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("UpdateAppointment: validation failed: %v", err)
		return nil, err
	}

	// 2. Данные внешних сервисов запрашиваем до транзакции
	lk, err := uc.lookup(ctx, req)
	if err != nil {
		return nil, err
	}

	now := uc.timeProvider.Now().In(uc.location)

	var (
		result        *domain.Appointment
		previous      *domain.Appointment
		timingChanged bool
	)

	// 3. Изменение в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 3.1. Блокируем строку записи
		current, err := uc.appointmentRepo.GetByIDForUpdate(txCtx, req.AppointmentID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				uc.logger.Warn("UpdateAppointment: appointment id=%d not found", req.AppointmentID)
				return ErrAppointmentNotFound
			}
			uc.logger.Error("UpdateAppointment: failed to get appointment id=%d: %v", req.AppointmentID, err)
			return fmt.Errorf("%w: failed to get appointment: %w", ErrInternal, err)
		}
		current = current.InLocation(uc.location)

		// 3.2. Завершенные записи не редактируются
		if !current.CanBeUpdated() {
			uc.logger.Warn("UpdateAppointment: appointment id=%d is %s", current.ID, current.Status)
			return domain.NewValidationError("status",
				fmt.Sprintf("appointment in status %s cannot be changed", current.Status))
		}

		before := *current
		updated := uc.apply(current, req, lk)

		// 3.3. Повторная проверка конфликтов при изменении интервала или мастера
		timingChanged = updated.StaffID != before.StaffID ||
			!updated.StartTime.Equal(before.StartTime) ||
			!updated.EndTime.Equal(before.EndTime)

		if timingChanged {
			if req.Date != nil && domain.DateKey(updated.StartTime) < domain.DateKey(now) {
				return domain.NewValidationError("date", "must not be in the past")
			}

			day := updated.StartTime
			if err := uc.appointmentRepo.LockStaffDay(txCtx, updated.StaffID, day); err != nil {
				uc.logger.Error("UpdateAppointment: failed to lock staff=%d: %v", updated.StaffID, err)
				return fmt.Errorf("%w: failed to lock staff day: %w", ErrInternal, err)
			}

			existing, err := uc.appointmentRepo.ListForStaffWindowForUpdate(txCtx, updated.StaffID, updated.StartTime, updated.EndTime)
			if err != nil {
				uc.logger.Error("UpdateAppointment: failed to get appointments: %v", err)
				return fmt.Errorf("%w: failed to get appointments: %w", ErrInternal, err)
			}

			for i, a := range existing {
				existing[i] = a.InLocation(uc.location)
			}

			if err := schedule.CheckConflict(existing, updated.StaffID, updated.StartTime, updated.EndTime, &updated.ID); err != nil {
				return err
			}
		}

		// 3.4. Сохраняем
		if err := uc.appointmentRepo.Update(txCtx, updated); err != nil {
			if errors.Is(err, appointmentRepo.ErrOverlap) {
				return domain.NewConflictError(nil)
			}
			uc.logger.Error("UpdateAppointment: failed to update appointment id=%d: %v", updated.ID, err)
			return fmt.Errorf("%w: failed to update appointment: %w", ErrInternal, err)
		}

		previous = &before
		result = updated
		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			uc.metrics.IncBookingConflict("update")
			uc.logger.Warn("UpdateAppointment: appointment id=%d rejected: %v", req.AppointmentID, err)
		}
		return nil, err
	}

	// 4. После коммита: кеш и событие
	change := notify.Change{
		Type:           events.EventAppointmentUpdated,
		Appointment:    result,
		PreviousStatus: previous.Status,
	}
	if timingChanged {
		change.Type = events.EventAppointmentRescheduled
		change.PreviousStart = &previous.StartTime
	}
	uc.notifier.Changed(ctx, change)

	uc.logger.Info("UpdateAppointment: successfully updated appointment id=%d (%s-%s)",
		result.ID, result.StartTime.Format(domain.TimeFormat), result.EndTime.Format(domain.TimeFormat))
	return models.FromDomainAppointment(result), nil
}

// apply применяет изменения к копии записи и пересчитывает конец интервала
func (uc *UseCase) apply(current *domain.Appointment, req *Request, lk lookups) *domain.Appointment {
	updated := *current

	if req.StaffID != nil {
		updated.StaffID = *req.StaffID
	}
	if req.ClientID != nil {
		updated.ClientID = *req.ClientID
		if lk.clientName != nil {
			updated.ClientName = *lk.clientName
		}
	}

	duration := current.DurationMinutes()
	if lk.service != nil {
		updated.ServiceID = lk.service.ID
		updated.ServiceName = lk.service.Name
		duration = lk.service.DurationMinutes
		if req.Amount == nil {
			updated.Amount = lk.service.PriceOrZero()
		}
	}
	if req.DurationMinutes != nil {
		duration = *req.DurationMinutes
	}

	date := current.StartTime
	if req.Date != nil {
		date = time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, uc.location)
	}
	startTime := types.NewTimeString(current.StartTime)
	if req.StartTime != nil {
		startTime = *req.StartTime
	}

	updated.StartTime = startTime.On(date)
	updated.EndTime = updated.StartTime.Add(time.Duration(duration) * time.Minute)

	if req.Notes != nil {
		updated.Notes = req.Notes
	}
	if req.Amount != nil {
		updated.Amount = *req.Amount
	}
	if req.PaymentStatus != nil {
		updated.PaymentStatus = domain.PaymentStatus(*req.PaymentStatus)
	}

	return &updated
}

// lookup запрашивает мастера, услугу и клиента, если они меняются
func (uc *UseCase) lookup(ctx context.Context, req *Request) (lookups, error) {
	var lk lookups

	if req.StaffID != nil {
		staff, err := uc.staffClient.GetStaff(ctx, *req.StaffID)
		if err != nil {
			if errors.Is(err, staffClient.ErrStaffNotFound) {
				uc.logger.Warn("UpdateAppointment: staff id=%d not found", *req.StaffID)
				return lk, domain.NewValidationError("staffId", "unknown staff member")
			}
			uc.logger.Error("UpdateAppointment: failed to get staff id=%d: %v", *req.StaffID, err)
			return lk, fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
		}
		if !staff.IsActive {
			return lk, domain.NewValidationError("staffId", "staff member is not active")
		}
	}

	if req.ServiceID != nil {
		service, err := uc.catalogClient.GetService(ctx, *req.ServiceID)
		if err != nil {
			if errors.Is(err, catalogClient.ErrServiceNotFound) {
				uc.logger.Warn("UpdateAppointment: service id=%d not found", *req.ServiceID)
				return lk, domain.NewValidationError("serviceId", "unknown service")
			}
			uc.logger.Error("UpdateAppointment: failed to get service id=%d: %v", *req.ServiceID, err)
			return lk, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
		}
		if !service.IsActive {
			return lk, domain.NewValidationError("serviceId", "service is not active")
		}
		lk.service = service
	}

	if req.ClientID != nil {
		client, err := uc.clientClient.GetClient(ctx, *req.ClientID)
		if err != nil {
			if errors.Is(err, clientClient.ErrClientNotFound) {
				uc.logger.Warn("UpdateAppointment: client id=%d not found", *req.ClientID)
				return lk, domain.NewValidationError("clientId", "unknown client")
			}
			uc.logger.Error("UpdateAppointment: failed to get client id=%d: %v", *req.ClientID, err)
			return lk, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
		}
		lk.clientName = &client.FullName
	}

	return lk, nil
}
