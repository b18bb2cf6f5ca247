package update_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SpaBookingService/internal/domain"
	"github.com/m04kA/SMC-SpaBookingService/internal/infra/events"
	appointmentRepo "github.com/m04kA/SMC-SpaBookingService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SpaBookingService/pkg/logger"
	"github.com/m04kA/SMC-SpaBookingService/pkg/ptr"
	"github.com/m04kA/SMC-SpaBookingService/pkg/types"
)

func at(hh, mm int) time.Time {
	return time.Date(2024, 3, 11, hh, mm, 0, 0, time.UTC)
}

func appt(id, staffID int64, start time.Time, minutes int, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:            id,
		StaffID:       staffID,
		ClientID:      7,
		ServiceID:     1,
		StartTime:     start,
		EndTime:       start.Add(time.Duration(minutes) * time.Minute),
		Status:        status,
		BookingSource: domain.SourceManual,
		PaymentStatus: domain.PaymentPending,
		Amount:        3000,
		ClientName:    "Anna",
		ServiceName:   "Massage",
	}
}

type fixture struct {
	uc       *UseCase
	repo     *fakeRepo
	notifier *fakeNotifier
	metrics  *fakeMetrics
}

func newFixture(items ...*domain.Appointment) *fixture {
	f := &fixture{
		repo:     newFakeRepo(items...),
		notifier: &fakeNotifier{},
		metrics:  &fakeMetrics{},
	}
	f.uc = NewUseCase(f.repo, fakeStaff{}, fakeCatalog{}, fakeClients{}, fakeTx{}, f.notifier, f.metrics, time.UTC, logger.NewNop())
	f.uc.timeProvider = fixedTime{now: at(8, 0)}
	return f
}

func TestExecute_RescheduleOverOwnInterval(t *testing.T) {
	f := newFixture(appt(1, 1, at(10, 0), 60, domain.StatusScheduled))

	// сдвиг на 30 минут пересекается только с самой записью
	resp, err := f.uc.Execute(context.Background(), &Request{
		AppointmentID: 1,
		StartTime:     ptr.Ptr(types.TimeString("10:30")),
	})
	require.NoError(t, err)
	assert.True(t, resp.StartTime.Equal(at(10, 30)))
	assert.True(t, resp.EndTime.Equal(at(11, 30)))
	assert.Equal(t, []int64{1}, f.repo.locked)

	require.Len(t, f.notifier.changes, 1)
	change := f.notifier.changes[0]
	assert.Equal(t, events.EventAppointmentRescheduled, change.Type)
	require.NotNil(t, change.PreviousStart)
	assert.True(t, change.PreviousStart.Equal(at(10, 0)))
}

func TestExecute_RescheduleConflict(t *testing.T) {
	f := newFixture(
		appt(1, 1, at(10, 0), 60, domain.StatusScheduled),
		appt(2, 1, at(12, 0), 60, domain.StatusConfirmed),
	)

	_, err := f.uc.Execute(context.Background(), &Request{
		AppointmentID: 1,
		StartTime:     ptr.Ptr(types.TimeString("11:30")),
	})

	var cErr *domain.ConflictError
	require.ErrorAs(t, err, &cErr)
	require.NotNil(t, cErr.Blocking)
	assert.Equal(t, int64(2), cErr.Blocking.ID)
	assert.Equal(t, 1, f.metrics.conflicts)
	assert.True(t, f.repo.items[1].StartTime.Equal(at(10, 0)), "unchanged")
	assert.Empty(t, f.notifier.changes)
}

func TestExecute_ChangeServiceRecomputesEnd(t *testing.T) {
	f := newFixture(
		appt(1, 1, at(10, 0), 60, domain.StatusScheduled),
		appt(2, 1, at(10, 30), 30, domain.StatusCancelled),
	)

	resp, err := f.uc.Execute(context.Background(), &Request{AppointmentID: 1, ServiceID: ptr.Ptr(int64(2))})
	require.NoError(t, err)
	assert.True(t, resp.EndTime.Equal(at(10, 30)))
	assert.Equal(t, "Manicure", resp.ServiceName)
	assert.Equal(t, 1500.0, resp.Amount)
}

func TestExecute_MoveToOtherStaff(t *testing.T) {
	f := newFixture(
		appt(1, 1, at(10, 0), 60, domain.StatusScheduled),
		appt(2, 2, at(11, 0), 60, domain.StatusScheduled),
	)

	// у мастера 2 запись с 11:00, перенос 10:00-11:00 встык допустим
	resp, err := f.uc.Execute(context.Background(), &Request{AppointmentID: 1, StaffID: ptr.Ptr(int64(2))})
	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.StaffID)
	assert.Equal(t, []int64{2}, f.repo.locked)
}

func TestExecute_NotesOnlyDoesNotLock(t *testing.T) {
	f := newFixture(appt(1, 1, at(10, 0), 60, domain.StatusConfirmed))

	resp, err := f.uc.Execute(context.Background(), &Request{
		AppointmentID: 1,
		Notes:         ptr.Ptr("allergic to almond oil"),
		PaymentStatus: ptr.Ptr("paid"),
	})
	require.NoError(t, err)
	assert.Equal(t, "allergic to almond oil", *resp.Notes)
	assert.Equal(t, "paid", resp.PaymentStatus)
	assert.Empty(t, f.repo.locked)
	require.Len(t, f.notifier.changes, 1)
	assert.Equal(t, events.EventAppointmentUpdated, f.notifier.changes[0].Type)
}

func TestExecute_TerminalRejected(t *testing.T) {
	for _, status := range []domain.AppointmentStatus{domain.StatusCompleted, domain.StatusCancelled, domain.StatusNoShow} {
		f := newFixture(appt(1, 1, at(10, 0), 60, status))

		_, err := f.uc.Execute(context.Background(), &Request{AppointmentID: 1, Notes: ptr.Ptr("x")})

		var vErr *domain.ValidationError
		require.ErrorAs(t, err, &vErr, status)
		assert.Equal(t, "status", vErr.Field)
	}
}

func TestExecute_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.uc.Execute(context.Background(), &Request{AppointmentID: 3, Notes: ptr.Ptr("x")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestExecute_MoveToPastDate(t *testing.T) {
	f := newFixture(appt(1, 1, at(10, 0), 60, domain.StatusScheduled))

	_, err := f.uc.Execute(context.Background(), &Request{AppointmentID: 1, Date: ptr.Ptr(at(0, 0).AddDate(0, 0, -2))})

	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "date", vErr.Field)
}

func TestExecute_StorageExclusionBackstop(t *testing.T) {
	f := newFixture(appt(1, 1, at(10, 0), 60, domain.StatusScheduled))
	f.repo.updateErr = appointmentRepo.ErrOverlap

	_, err := f.uc.Execute(context.Background(), &Request{AppointmentID: 1, StartTime: ptr.Ptr(types.TimeString("15:00"))})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestExecute_Validation(t *testing.T) {
	f := newFixture(appt(1, 1, at(10, 0), 60, domain.StatusScheduled))

	tests := []struct {
		name  string
		req   *Request
		field string
	}{
		{name: "no id", req: &Request{}, field: "appointmentId"},
		{name: "bad time", req: &Request{AppointmentID: 1, StartTime: ptr.Ptr(types.TimeString("9am"))}, field: "startTime"},
		{name: "bad payment", req: &Request{AppointmentID: 1, PaymentStatus: ptr.Ptr("free")}, field: "paymentStatus"},
		{name: "unknown staff", req: &Request{AppointmentID: 1, StaffID: ptr.Ptr(int64(99))}, field: "staffId"},
		{name: "unknown service", req: &Request{AppointmentID: 1, ServiceID: ptr.Ptr(int64(99))}, field: "serviceId"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.Execute(context.Background(), tt.req)
			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}
