package quick_book

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SpaBookingService/internal/domain"
	catalogClient "github.com/m04kA/SMC-SpaBookingService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-SpaBookingService/internal/integrations/staffservice"
	"github.com/m04kA/SMC-SpaBookingService/internal/service/appointments/models"
	"github.com/m04kA/SMC-SpaBookingService/internal/service/schedule"
	"github.com/m04kA/SMC-SpaBookingService/internal/usecase/create_appointment"
)

// UseCase use case быстрой записи с автоматическим подбором мастера
type UseCase struct {
	staffClient         StaffServiceClient
	catalogClient       CatalogServiceClient
	shiftRepo           ShiftRepository
	appointmentRepo     AppointmentRepository
	createAppointment   CreateAppointmentUseCase
	classifier          *schedule.Classifier
	slotDurationMinutes int
	location            *time.Location
	logger              Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	staffClient StaffServiceClient,
	catalogClient CatalogServiceClient,
	shiftRepo ShiftRepository,
	appointmentRepo AppointmentRepository,
	createAppointment CreateAppointmentUseCase,
	slotDurationMinutes int,
	minBookableMinutes int,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		staffClient:         staffClient,
		catalogClient:       catalogClient,
		shiftRepo:           shiftRepo,
		appointmentRepo:     appointmentRepo,
		createAppointment:   createAppointment,
		classifier:          schedule.NewClassifier(minBookableMinutes),
		slotDurationMinutes: schedule.NormalizeSlotDuration(slotDurationMinutes),
		location:            location,
		logger:              logger,
	}
}

// Execute выполняет быструю запись.
// С указанным мастером сразу идет обычное создание записи. Без мастера выбирается
// первый подходящий мастер ростера; если его слот успели занять, пробуется следующий.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*models.AppointmentResponse, error) {
	uc.logger.Info("QuickBook: client=%d, service=%d, date=%s, time=%s, staff=%v",
		req.ClientID, req.ServiceID, domain.DateKey(req.Date), req.StartTime, req.StaffID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("QuickBook: validation failed: %v", err)
		return nil, err
	}

	// 2. Мастер указан явно
	if req.StaffID != nil {
		return uc.createAppointment.Execute(ctx, uc.createRequest(req, *req.StaffID))
	}

	date := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, uc.location)
	start := req.StartTime.On(date)

	// 3. Длительность услуги
	service, err := uc.catalogClient.GetService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogClient.ErrServiceNotFound) {
			uc.logger.Warn("QuickBook: service id=%d not found", req.ServiceID)
			return nil, domain.NewValidationError("serviceId", "unknown service")
		}
		uc.logger.Error("QuickBook: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}
	duration := time.Duration(service.DurationMinutes) * time.Minute

	// 4. Ростер, смены и записи дня
	roster, err := uc.staffClient.GetRoster(ctx, true)
	if err != nil {
		uc.logger.Error("QuickBook: failed to get staff roster: %v", err)
		return nil, fmt.Errorf("%w: failed to get staff roster: %v", ErrInternal, err)
	}
	staff := staffservice.ToDomainRoster(roster)

	staffIDs := make([]int64, 0, len(staff))
	for _, s := range staff {
		staffIDs = append(staffIDs, s.ID)
	}

	var ranges []*domain.ShiftRange
	if len(staffIDs) > 0 {
		ranges, err = uc.shiftRepo.ListCovering(ctx, staffIDs, date)
		if err != nil {
			uc.logger.Error("QuickBook: failed to get shift ranges: %v", err)
			return nil, fmt.Errorf("%w: failed to get shift ranges: %v", ErrInternal, err)
		}
	}
	shifts := schedule.ResolveShifts(ranges, staff, date)

	dayEnd := date.AddDate(0, 0, 1)
	appointments, err := uc.appointmentRepo.List(ctx, domain.AppointmentFilter{From: &date, To: &dayEnd})
	if err != nil {
		uc.logger.Error("QuickBook: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}
	for i, a := range appointments {
		appointments[i] = a.InLocation(uc.location)
	}

	// 5. Подбор мастера
	candidates := pickCandidates(uc.classifier, staff, shifts, appointments, start, uc.slotDurationMinutes, duration)
	if len(candidates) == 0 {
		uc.logger.Warn("QuickBook: no staff available at %s %s", domain.DateKey(date), req.StartTime)
		return nil, &domain.ConflictError{Message: "no staff available"}
	}

	// 6. Создание записи; конфликт у кандидата - пробуем следующего
	var lastErr error
	for _, member := range candidates {
		uc.logger.Info("QuickBook: trying staff id=%d (%s)", member.ID, member.Name)

		resp, err := uc.createAppointment.Execute(ctx, uc.createRequest(req, member.ID))
		if err == nil {
			uc.logger.Info("QuickBook: booked appointment id=%d with staff id=%d", resp.ID, member.ID)
			return resp, nil
		}
		if !errors.Is(err, domain.ErrConflict) {
			return nil, err
		}
		lastErr = err
	}

	uc.logger.Warn("QuickBook: all %d candidates were taken concurrently: %v", len(candidates), lastErr)
	return nil, &domain.ConflictError{Message: "no staff available"}
}

func (uc *UseCase) createRequest(req *Request, staffID int64) *create_appointment.Request {
	return &create_appointment.Request{
		StaffID:   staffID,
		ClientID:  req.ClientID,
		ServiceID: req.ServiceID,
		Date:      req.Date,
		StartTime: req.StartTime,
		Notes:     req.Notes,
		Source:    string(domain.SourceQuickBook),
		CreatedBy: req.CreatedBy,
	}
}
