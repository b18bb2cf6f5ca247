package appointments

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-SpaBookingService/internal/domain"
	"github.com/m04kA/SMC-SpaBookingService/internal/infra/events"
	appointmentRepo "github.com/m04kA/SMC-SpaBookingService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SpaBookingService/internal/service/appointments/models"
	"github.com/m04kA/SMC-SpaBookingService/internal/service/notify"
)

// Service сервис чтения записей и переходов их статусов
type Service struct {
	appointmentRepo AppointmentRepository
	txManager       TransactionManager
	notifier        Notifier
	metrics         Metrics
	location        *time.Location
	logger          Logger
}

// NewService создает новый экземпляр сервиса записей.
// location - часовой пояс салона, в нем считаются границы дня.
func NewService(
	appointmentRepo AppointmentRepository,
	txManager TransactionManager,
	notifier Notifier,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		appointmentRepo: appointmentRepo,
		txManager:       txManager,
		notifier:        notifier,
		metrics:         metrics,
		location:        location,
		logger:          logger,
	}
}

// GetByID получает запись по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d", id)

	appt, err := s.appointmentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found", id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// List получает записи за календарный день салона.
// Отмененные записи включаются только по флагу IncludeCancelled.
func (s *Service) List(ctx context.Context, req *models.ListRequest) (*models.AppointmentListResponse, error) {
	if req.Date.IsZero() {
		return nil, domain.NewValidationError("date", "is required")
	}

	from := time.Date(req.Date.Year(), req.Date.Month(), req.Date.Day(), 0, 0, 0, 0, s.location)
	to := from.AddDate(0, 0, 1)

	filter := domain.AppointmentFilter{
		StaffID:          req.StaffID,
		From:             &from,
		To:               &to,
		IncludeCancelled: req.IncludeCancelled,
	}

	if req.Status != nil {
		status, err := models.ToDomainStatus(*req.Status)
		if err != nil {
			s.logger.Warn("List: invalid status=%s", *req.Status)
			return nil, err
		}
		filter.Status = &status
		if status == domain.StatusCancelled {
			filter.IncludeCancelled = true
		}
	}

	s.logger.Info("List: fetching appointments for date=%s, staff=%v, includeCancelled=%t",
		domain.DateKey(from), req.StaffID, filter.IncludeCancelled)

	list, err := s.appointmentRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d appointments", len(list))
	return models.FromDomainAppointmentList(list), nil
}

// TransitionStatus переводит запись в новый статус по таблице переходов.
// Переход в cancelled выполняется как отмена без причины.
func (s *Service) TransitionStatus(ctx context.Context, id int64, req *models.TransitionStatusRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("TransitionStatus: appointment id=%d to status=%s by user=%v", id, req.Status, req.UserID)

	next, err := models.ToDomainStatus(req.Status)
	if err != nil {
		s.logger.Warn("TransitionStatus: invalid status=%s", req.Status)
		return nil, err
	}

	if next == domain.StatusCancelled {
		return s.Cancel(ctx, id, &models.CancelRequest{UserID: req.UserID})
	}

	var (
		result   *domain.Appointment
		previous domain.AppointmentStatus
	)

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		appt, err := s.getForUpdate(txCtx, "TransitionStatus", id)
		if err != nil {
			return err
		}

		if !appt.Status.CanTransitionTo(next) {
			s.logger.Warn("TransitionStatus: appointment id=%d cannot move %s -> %s", id, appt.Status, next)
			return &domain.InvalidTransitionError{From: appt.Status, To: next}
		}

		if err := s.appointmentRepo.UpdateStatus(txCtx, id, next); err != nil {
			s.logger.Error("TransitionStatus: failed to update appointment id=%d: %v", id, err)
			return fmt.Errorf("%w: TransitionStatus - repository error: %v", ErrInternal, err)
		}

		previous = appt.Status
		appt.Status = next
		result = appt
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncAppointmentTransition(string(previous), string(next))
	s.notifier.Changed(ctx, notify.Change{
		Type:           events.EventAppointmentStatusChanged,
		Appointment:    result,
		PreviousStatus: previous,
	})

	s.logger.Info("TransitionStatus: appointment id=%d moved %s -> %s", id, previous, next)
	return models.FromDomainAppointment(result), nil
}

// Cancel отменяет запись. Отмененная запись освобождает свое время.
func (s *Service) Cancel(ctx context.Context, id int64, req *models.CancelRequest) (*models.AppointmentResponse, error) {
	s.logger.Info("Cancel: cancelling appointment id=%d by user=%v", id, req.UserID)

	if req.Reason != nil && len(*req.Reason) > domain.MaxCancellationReasonLength {
		return nil, domain.NewValidationError("reason",
			fmt.Sprintf("must be at most %d characters", domain.MaxCancellationReasonLength))
	}

	var (
		result   *domain.Appointment
		previous domain.AppointmentStatus
	)

	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		appt, err := s.getForUpdate(txCtx, "Cancel", id)
		if err != nil {
			return err
		}

		if !appt.Status.CanTransitionTo(domain.StatusCancelled) {
			s.logger.Warn("Cancel: appointment id=%d cannot be cancelled, status=%s", id, appt.Status)
			return &domain.InvalidTransitionError{From: appt.Status, To: domain.StatusCancelled}
		}

		if err := s.appointmentRepo.Cancel(txCtx, id, req.Reason); err != nil {
			s.logger.Error("Cancel: failed to cancel appointment id=%d: %v", id, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}

		previous = appt.Status
		appt.Status = domain.StatusCancelled
		appt.CancellationReason = req.Reason
		result = appt
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.metrics.IncAppointmentTransition(string(previous), string(domain.StatusCancelled))
	s.notifier.Changed(ctx, notify.Change{
		Type:           events.EventAppointmentCancelled,
		Appointment:    result,
		PreviousStatus: previous,
	})

	s.logger.Info("Cancel: successfully cancelled appointment id=%d", id)
	return models.FromDomainAppointment(result), nil
}

// Delete физически удаляет запись. Служебная операция для очистки тестовых данных,
// рабочий поток использует Cancel.
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.logger.Info("Delete: deleting appointment id=%d", id)

	var deleted *domain.Appointment
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		appt, err := s.getForUpdate(txCtx, "Delete", id)
		if err != nil {
			return err
		}

		if err := s.appointmentRepo.Delete(txCtx, id); err != nil {
			s.logger.Error("Delete: failed to delete appointment id=%d: %v", id, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}

		deleted = appt
		return nil
	})
	if err != nil {
		return err
	}

	previous := deleted.Status
	deleted.Status = domain.StatusCancelled
	s.notifier.Changed(ctx, notify.Change{
		Type:           events.EventAppointmentCancelled,
		Appointment:    deleted,
		PreviousStatus: previous,
	})

	s.logger.Info("Delete: successfully deleted appointment id=%d", id)
	return nil
}

func (s *Service) getForUpdate(ctx context.Context, op string, id int64) (*domain.Appointment, error) {
	appt, err := s.appointmentRepo.GetByIDForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("%s: appointment id=%d not found", op, id)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("%s: repository error for appointment id=%d: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return appt, nil
}
