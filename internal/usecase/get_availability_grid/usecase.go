package get_availability_grid

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SpaBookingService/internal/domain"
	"github.com/m04kA/SMC-SpaBookingService/internal/infra/cache/gridcache"
	"github.com/m04kA/SMC-SpaBookingService/internal/integrations/staffservice"
	"github.com/m04kA/SMC-SpaBookingService/internal/service/schedule"
)

// UseCase use case построения сетки доступности мастеров на дату.
// Один классификатор обслуживает все представления и оба API.
type UseCase struct {
	staffClient     StaffServiceClient
	shiftRepo       ShiftRepository
	appointmentRepo AppointmentRepository
	cache           GridCache
	presets         ViewPresets
	classifier      *schedule.Classifier
	location        *time.Location
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	staffClient StaffServiceClient,
	shiftRepo ShiftRepository,
	appointmentRepo AppointmentRepository,
	cache GridCache,
	presets ViewPresets,
	minBookableMinutes int,
	location *time.Location,
	logger Logger,
) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		staffClient:     staffClient,
		shiftRepo:       shiftRepo,
		appointmentRepo: appointmentRepo,
		cache:           cache,
		presets:         presets,
		classifier:      schedule.NewClassifier(minBookableMinutes),
		location:        location,
		logger:          logger,
	}
}

// Execute выполняет use case получения сетки.
// Чтение без блокировок: для отображения допустимы слегка устаревшие данные.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetAvailabilityGrid: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата в часовом поясе салона и параметры сетки
	date := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, uc.location)
	w := resolveWindow(req, uc.presets)

	uc.logger.Info("GetAvailabilityGrid: date=%s, staff=%v, view=%s, hours=%d-%d, slot=%d",
		domain.DateKey(date), req.StaffID, w.view, w.startHour, w.endHour, w.duration)

	// 3. Проверяем кеш. Версия даты читается до загрузки данных.
	query := gridcache.Query{
		Date:                date,
		StaffID:             req.StaffID,
		View:                w.view,
		StartHour:           w.startHour,
		EndHour:             w.endHour,
		SlotDurationMinutes: w.duration,
	}

	cacheable := true
	query.Version, err = uc.cache.Version(ctx, date)
	if err != nil {
		uc.logger.Warn("GetAvailabilityGrid: cache unavailable: %v", err)
		cacheable = false
	}

	if cacheable {
		cached, ok, err := uc.cache.Get(ctx, query)
		if err != nil {
			uc.logger.Warn("GetAvailabilityGrid: cache unavailable: %v", err)
		}
		if ok {
			uc.logger.Info("GetAvailabilityGrid: served from cache, %d cells", len(cached.Cells))
			return &Response{Grid: cached, FromCache: true}, nil
		}
	}

	// 4. Ростер мастеров
	staff, err := uc.loadStaff(ctx, req.StaffID)
	if err != nil {
		return nil, err
	}

	staffIDs := make([]int64, 0, len(staff))
	for _, s := range staff {
		staffIDs = append(staffIDs, s.ID)
	}

	// 5. Смены на дату
	var ranges []*domain.ShiftRange
	if len(staffIDs) > 0 {
		ranges, err = uc.shiftRepo.ListCovering(ctx, staffIDs, date)
		if err != nil {
			uc.logger.Error("GetAvailabilityGrid: failed to get shift ranges: %v", err)
			return nil, fmt.Errorf("%w: failed to get shift ranges: %v", ErrInternal, err)
		}
	}
	shifts := schedule.ResolveShifts(ranges, staff, date)

	// 6. Неотмененные записи дня
	dayEnd := date.AddDate(0, 0, 1)
	appointments, err := uc.appointmentRepo.List(ctx, domain.AppointmentFilter{
		StaffID: req.StaffID,
		From:    &date,
		To:      &dayEnd,
	})
	if err != nil {
		uc.logger.Error("GetAvailabilityGrid: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}
	for i, a := range appointments {
		appointments[i] = a.InLocation(uc.location)
	}

	// 7. Классификация
	grid, err := uc.classifier.BuildGrid(schedule.GridInput{
		Date:                date,
		View:                w.view,
		StartHour:           w.startHour,
		EndHour:             w.endHour,
		SlotDurationMinutes: w.duration,
		Staff:               staff,
		Shifts:              shifts,
		Appointments:        appointments,
	})
	if err != nil {
		uc.logger.Warn("GetAvailabilityGrid: invalid grid parameters: %v", err)
		return nil, err
	}

	// 8. Сохраняем в кеш под версией, прочитанной до загрузки
	if cacheable {
		if err := uc.cache.Set(ctx, query, grid); err != nil {
			uc.logger.Warn("GetAvailabilityGrid: failed to cache grid: %v", err)
		}
	}

	uc.logger.Info("GetAvailabilityGrid: built grid with %d staff, %d slots, %d appointments",
		len(staff), len(grid.Slots), len(appointments))
	return &Response{Grid: grid}, nil
}

// loadStaff получает активный ростер; при фильтре оставляет одного мастера
func (uc *UseCase) loadStaff(ctx context.Context, staffID *int64) ([]domain.StaffMember, error) {
	roster, err := uc.staffClient.GetRoster(ctx, true)
	if err != nil {
		uc.logger.Error("GetAvailabilityGrid: failed to get staff roster: %v", err)
		return nil, fmt.Errorf("%w: failed to get staff roster: %v", ErrInternal, err)
	}

	staff := staffservice.ToDomainRoster(roster)
	if staffID == nil {
		return staff, nil
	}

	for _, s := range staff {
		if s.ID == *staffID {
			return []domain.StaffMember{s}, nil
		}
	}

	uc.logger.Warn("GetAvailabilityGrid: staff id=%d is not in active roster", *staffID)
	return nil, domain.NewValidationError("staffId", "unknown or inactive staff member")
}
