package appointments

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SpaBookingService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SpaBookingService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SpaBookingService/internal/service/notify"
)

type fakeRepo struct {
	items     map[int64]*domain.Appointment
	lastQuery domain.AppointmentFilter
	err       error
}

func newFakeRepo(items ...*domain.Appointment) *fakeRepo {
	r := &fakeRepo{items: make(map[int64]*domain.Appointment)}
	for _, a := range items {
		r.items[a.ID] = a
	}
	return r
}

func (r *fakeRepo) get(id int64) (*domain.Appointment, error) {
	if r.err != nil {
		return nil, r.err
	}
	a, ok := r.items[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	return r.get(id)
}

func (r *fakeRepo) GetByIDForUpdate(_ context.Context, id int64) (*domain.Appointment, error) {
	return r.get(id)
}

func (r *fakeRepo) List(_ context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	r.lastQuery = filter
	if r.err != nil {
		return nil, r.err
	}
	var out []*domain.Appointment
	for _, a := range r.items {
		if !filter.IncludeCancelled && a.Status == domain.StatusCancelled {
			continue
		}
		out = append(out, a)
	}
	return out, nil
}

func (r *fakeRepo) UpdateStatus(_ context.Context, id int64, status domain.AppointmentStatus) error {
	r.items[id].Status = status
	return nil
}

func (r *fakeRepo) Cancel(_ context.Context, id int64, reason *string) error {
	r.items[id].Status = domain.StatusCancelled
	r.items[id].CancellationReason = reason
	return nil
}

func (r *fakeRepo) Delete(_ context.Context, id int64) error {
	delete(r.items, id)
	return nil
}

type fakeTx struct{}

func (fakeTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeNotifier struct {
	changes []notify.Change
}

func (n *fakeNotifier) Changed(_ context.Context, change notify.Change) {
	n.changes = append(n.changes, change)
}

type fakeMetrics struct {
	transitions []string
}

func (m *fakeMetrics) IncAppointmentTransition(from, to string) {
	m.transitions = append(m.transitions, from+"->"+to)
}

func testAppointment(id int64, status domain.AppointmentStatus) *domain.Appointment {
	start := time.Date(2024, 3, 11, 10, 0, 0, 0, time.UTC)
	return &domain.Appointment{
		ID:            id,
		StaffID:       1,
		ClientID:      2,
		ServiceID:     3,
		StartTime:     start,
		EndTime:       start.Add(time.Hour),
		Status:        status,
		BookingSource: domain.SourceManual,
		PaymentStatus: domain.PaymentPending,
		ClientName:    "Anna",
		ServiceName:   "Massage",
	}
}
