package shifts

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SpaBookingService/internal/domain"
	shiftRepo "github.com/m04kA/SMC-SpaBookingService/internal/infra/storage/shift"
	"github.com/m04kA/SMC-SpaBookingService/internal/service/schedule"
	"github.com/m04kA/SMC-SpaBookingService/internal/service/shifts/models"
)

// maxInvalidatedDays верхняя граница числа дат, сбрасываемых в кеше за одно изменение.
// Более дальние даты обновятся по TTL.
const maxInvalidatedDays = 92

// Service сервис управления диапазонами смен мастеров
type Service struct {
	shiftRepo ShiftRepository
	txManager TransactionManager
	cache     GridCache
	logger    Logger
}

// NewService создает новый экземпляр сервиса смен
func NewService(
	shiftRepo ShiftRepository,
	txManager TransactionManager,
	cache GridCache,
	logger Logger,
) *Service {
	return &Service{
		shiftRepo: shiftRepo,
		txManager: txManager,
		cache:     cache,
		logger:    logger,
	}
}

// Create создает диапазон смен
func (s *Service) Create(ctx context.Context, req *models.CreateShiftRangeRequest) (*models.ShiftRangeResponse, error) {
	s.logger.Info("CreateShiftRange: staff=%d, period=%s..%s, shift=%s-%s, priority=%d",
		req.StaffID, domain.DateKey(req.FromDate), domain.DateKey(req.ToDate), req.ShiftStart, req.ShiftEnd, req.Priority)

	sr := req.ToDomain()
	if err := sr.Validate(); err != nil {
		s.logger.Warn("CreateShiftRange: validation failed: %v", err)
		return nil, err
	}

	created, err := s.shiftRepo.Create(ctx, sr)
	if err != nil {
		return nil, s.mapWriteError("CreateShiftRange", err)
	}

	s.invalidate(ctx, "CreateShiftRange", created)

	s.logger.Info("CreateShiftRange: successfully created shift range id=%d", created.ID)
	return models.FromDomainShiftRange(created), nil
}

// GetByID получает диапазон смен по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.ShiftRangeResponse, error) {
	sr, err := s.get(ctx, "GetShiftRange", id)
	if err != nil {
		return nil, err
	}
	return models.FromDomainShiftRange(sr), nil
}

// ListByStaff получает диапазоны смен мастера
func (s *Service) ListByStaff(ctx context.Context, staffID int64, includeInactive bool) ([]models.ShiftRangeResponse, error) {
	s.logger.Info("ListShiftRanges: staff=%d, includeInactive=%t", staffID, includeInactive)

	if staffID <= 0 {
		return nil, domain.NewValidationError("staffId", "must be positive")
	}

	list, err := s.shiftRepo.ListByStaff(ctx, staffID, includeInactive)
	if err != nil {
		s.logger.Error("ListShiftRanges: repository error for staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: ListByStaff - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainShiftRangeList(list), nil
}

// Update частично обновляет диапазон смен и проверяет результат целиком
func (s *Service) Update(ctx context.Context, id int64, req *models.UpdateShiftRangeRequest) (*models.ShiftRangeResponse, error) {
	s.logger.Info("UpdateShiftRange: updating shift range id=%d", id)

	var before, after domain.ShiftRange

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		sr, err := s.get(txCtx, "UpdateShiftRange", id)
		if err != nil {
			return err
		}
		before = *sr

		req.ApplyTo(sr)
		if err := sr.Validate(); err != nil {
			s.logger.Warn("UpdateShiftRange: validation failed for id=%d: %v", id, err)
			return err
		}

		if err := s.shiftRepo.Update(txCtx, sr); err != nil {
			return s.mapWriteError("UpdateShiftRange", err)
		}

		after = *sr
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx, "UpdateShiftRange", &before, &after)

	s.logger.Info("UpdateShiftRange: successfully updated shift range id=%d", id)
	return models.FromDomainShiftRange(&after), nil
}

// Deactivate мягко отключает диапазон смен
func (s *Service) Deactivate(ctx context.Context, id int64) error {
	s.logger.Info("DeactivateShiftRange: deactivating shift range id=%d", id)

	sr, err := s.get(ctx, "DeactivateShiftRange", id)
	if err != nil {
		return err
	}

	if err := s.shiftRepo.Deactivate(ctx, id); err != nil {
		if errors.Is(err, shiftRepo.ErrShiftRangeNotFound) {
			return ErrShiftRangeNotFound
		}
		s.logger.Error("DeactivateShiftRange: repository error for id=%d: %v", id, err)
		return fmt.Errorf("%w: Deactivate - repository error: %v", ErrInternal, err)
	}

	s.invalidate(ctx, "DeactivateShiftRange", sr)

	s.logger.Info("DeactivateShiftRange: successfully deactivated shift range id=%d", id)
	return nil
}

// Resolve возвращает действующую смену мастера на дату
func (s *Service) Resolve(ctx context.Context, staffID int64, date time.Time) (*models.ResolvedShiftResponse, error) {
	s.logger.Info("ResolveShift: staff=%d, date=%s", staffID, domain.DateKey(date))

	if staffID <= 0 {
		return nil, domain.NewValidationError("staffId", "must be positive")
	}
	if date.IsZero() {
		return nil, domain.NewValidationError("date", "is required")
	}

	ranges, err := s.shiftRepo.ListCovering(ctx, []int64{staffID}, date)
	if err != nil {
		s.logger.Error("ResolveShift: repository error for staff=%d: %v", staffID, err)
		return nil, fmt.Errorf("%w: Resolve - repository error: %v", ErrInternal, err)
	}

	shift := schedule.ResolveShift(ranges, staffID, date)
	if shift == nil {
		s.logger.Info("ResolveShift: staff=%d has no shift on %s", staffID, domain.DateKey(date))
	}

	return models.FromDomainResolvedShift(staffID, date, shift), nil
}

func (s *Service) get(ctx context.Context, op string, id int64) (*domain.ShiftRange, error) {
	sr, err := s.shiftRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, shiftRepo.ErrShiftRangeNotFound) {
			s.logger.Warn("%s: shift range id=%d not found", op, id)
			return nil, ErrShiftRangeNotFound
		}
		s.logger.Error("%s: repository error for shift range id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return sr, nil
}

func (s *Service) mapWriteError(op string, err error) error {
	switch {
	case errors.Is(err, shiftRepo.ErrInvalidShiftRange):
		s.logger.Warn("%s: rejected by storage constraints: %v", op, err)
		return domain.NewValidationError("shiftRange", "violates schedule constraints")
	case errors.Is(err, shiftRepo.ErrShiftRangeNotFound):
		return ErrShiftRangeNotFound
	default:
		s.logger.Error("%s: repository error: %v", op, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
}

// invalidate сбрасывает кеш сеток для дат, которые покрывают диапазоны
func (s *Service) invalidate(ctx context.Context, op string, ranges ...*domain.ShiftRange) {
	var dates []time.Time
	for _, sr := range ranges {
		dates = append(dates, datesBetween(sr.FromDate, sr.ToDate, maxInvalidatedDays)...)
	}

	if err := s.cache.Invalidate(ctx, dates...); err != nil {
		s.logger.Error("%s: failed to invalidate grid cache: %v", op, err)
	}
}

// datesBetween возвращает не более limit дат из [from, to]
func datesBetween(from, to time.Time, limit int) []time.Time {
	var dates []time.Time
	for d := from; !d.After(to) && len(dates) < limit; d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}
