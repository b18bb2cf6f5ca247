package create_appointment

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
)

// UseCase use case создания записи
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

// Execute выполняет use case создания записи.
// Проверка конфликтов и вставка выполняются в одной сериализуемой транзакции
// под блокировкой (мастер, дата).
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.AppointmentResponse, error) {
	uc.logger.Info("CreateAppointment: staff=%d, client=%d, service=%d, date=%s, time=%s, source=%s",
		req.StaffID, req.ClientID, req.ServiceID, domain.DateKey(req.Date), req.StartTime, req.Source)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	source := domain.SourceManual
	if req.Source != "" {
		source = domain.BookingSource(req.Source)
	}

	// 2. Дата в часовом поясе салона, запись в прошлое запрещена
	now := uc.timeProvider.Now().In(uc.location)
	date := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, uc.location)
	if err := validateDate(date, now); err != nil {
		uc.logger.Warn("CreateAppointment: date %s is before %s", domain.DateKey(date), domain.DateKey(now))
		return nil, err
	}

	// 3. Проверяем мастера
	if err := uc.checkStaff(ctx, req.StaffID); err != nil {
		return nil, err
	}

	// 4. Получаем услугу (длительность и цена)
	service, err := uc.catalogClient.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("CreateAppointment: service id=%d not found", req.ServiceID)
			return nil, domain.NewValidationError("serviceId", "unknown service")
		}
		uc.logger.Error("CreateAppointment: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	if !service.IsActive {
		uc.logger.Warn("CreateAppointment: service id=%d is not active", req.ServiceID)
		return nil, domain.NewValidationError("serviceId", "service is not active")
	}

	// 5. Получаем клиента для денормализации имени
	client, err := uc.clientClient.GetClient(ctx, req.ClientID)
	if err != nil {
		if errors.Is(err, clientClient.ErrClientNotFound) {
			uc.logger.Warn("CreateAppointment: client id=%d not found", req.ClientID)
			return nil, domain.NewValidationError("clientId", "unknown client")
		}
		uc.logger.Error("CreateAppointment: failed to get client id=%d: %v", req.ClientID, err)
		return nil, fmt.Errorf("%w: failed to get client: %v", ErrInternal, err)
	}

	// 6. Интервал записи: end = start + длительность услуги
	duration := service.DurationMinutes
	if req.DurationMinutes != nil {
		duration = *req.DurationMinutes
	}
	start := req.StartTime.On(date)
	end := start.Add(time.Duration(duration) * time.Minute)

	amount := service.PriceOrZero()
	if req.Amount != nil {
		amount = *req.Amount
	}

	candidate := &domain.Appointment{
		StaffID:       req.StaffID,
		ClientID:      req.ClientID,
		ServiceID:     req.ServiceID,
		StartTime:     start,
		EndTime:       end,
		Status:        domain.StatusScheduled,
		BookingSource: source,
		Notes:         req.Notes,
		Amount:        amount,
		PaymentStatus: domain.PaymentPending,
		ClientName:    client.FullName,
		ServiceName:   service.Name,
		CreatedBy:     req.CreatedBy,
	}

	// 7. Проверка конфликтов и вставка в сериализуемой транзакции
	var result *domain.Appointment
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Сериализуем запись на (мастер, дата)
		if err := uc.appointmentRepo.LockStaffDay(txCtx, req.StaffID, date); err != nil {
			uc.logger.Error("CreateAppointment: failed to lock staff=%d day=%s: %v", req.StaffID, domain.DateKey(date), err)
			return fmt.Errorf("%w: failed to lock staff day: %w", ErrInternal, err)
		}

		// 7.2. Неотмененные записи мастера в окне кандидата
		existing, err := uc.appointmentRepo.ListForStaffWindowForUpdate(txCtx, req.StaffID, start, end)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %w", ErrInternal, err)
		}

		// 7.3. Тот же детектор конфликтов, что и при построении сетки
		if err := schedule.CheckConflict(localize(existing, uc.location), req.StaffID, start, end, nil); err != nil {
			return err
		}

		// 7.4. Сохраняем запись
		created, err := uc.appointmentRepo.Create(txCtx, candidate)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrOverlap) {
				return domain.NewConflictError(nil)
			}
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %w", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			uc.metrics.IncBookingConflict(string(source))
			uc.logger.Warn("CreateAppointment: staff=%d %s-%s rejected: %v",
				req.StaffID, start.Format(domain.TimeFormat), end.Format(domain.TimeFormat), err)
		}
		return nil, err
	}

	result = result.InLocation(uc.location)

	// 8. После коммита: метрики, кеш, событие
	uc.metrics.IncAppointmentCreated(string(source))
	uc.notifier.Changed(ctx, notify.Change{
		Type:        events.EventAppointmentCreated,
		Appointment: result,
	})

	uc.logger.Info("CreateAppointment: successfully created appointment id=%d", result.ID)
	return models.FromDomainAppointment(result), nil
}

// checkStaff проверяет, что мастер существует и активен
func (uc *UseCase) checkStaff(ctx context.Context, staffID int64) error {
	staff, err := uc.staffClient.GetStaff(ctx, staffID)
	if err != nil {
		if errors.Is(err, staffClient.ErrStaffNotFound) {
			uc.logger.Warn("CreateAppointment: staff id=%d not found", staffID)
			return domain.NewValidationError("staffId", "unknown staff member")
		}
		uc.logger.Error("CreateAppointment: failed to get staff id=%d: %v", staffID, err)
		return fmt.Errorf("%w: failed to get staff: %v", ErrInternal, err)
	}
	if !staff.IsActive {
		uc.logger.Warn("CreateAppointment: staff id=%d is not active", staffID)
		return domain.NewValidationError("staffId", "staff member is not active")
	}
	return nil
}

func localize(list []*domain.Appointment, loc *time.Location) []*domain.Appointment {
	out := make([]*domain.Appointment, 0, len(list))
	for _, a := range list {
		out = append(out, a.InLocation(loc))
	}
	return out
}
