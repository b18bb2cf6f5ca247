package update_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SpaBookingService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-SpaBookingService/internal/infra/storage/appointment"
	"github.com/m04kA/SMC-SpaBookingService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-SpaBookingService/internal/integrations/clientservice"
	"github.com/m04kA/SMC-SpaBookingService/internal/integrations/staffservice"
	"github.com/m04kA/SMC-SpaBookingService/internal/service/notify"
	"github.com/m04kA/SMC-SpaBookingService/pkg/ptr"
)

type fakeRepo struct {
	items     map[int64]*domain.Appointment
	locked    []int64
	updateErr error
}

func newFakeRepo(items ...*domain.Appointment) *fakeRepo {
	r := &fakeRepo{items: make(map[int64]*domain.Appointment)}
	for _, a := range items {
		r.items[a.ID] = a
	}
	return r
}

func (r *fakeRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	a, ok := r.items[id]
	if !ok {
		return nil, appointmentRepo.ErrAppointmentNotFound
	}
	cp := *a
	return &cp, nil
}

func (r *fakeRepo) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Appointment, error) {
	return r.GetByID(ctx, id)
}

func (r *fakeRepo) LockStaffDay(_ context.Context, staffID int64, _ time.Time) error {
	r.locked = append(r.locked, staffID)
	return nil
}

func (r *fakeRepo) ListForStaffWindowForUpdate(_ context.Context, staffID int64, from, to time.Time) ([]*domain.Appointment, error) {
	var out []*domain.Appointment
	for _, a := range r.items {
		if a.StaffID == staffID && a.Status != domain.StatusCancelled && a.EndTime.After(from) && a.StartTime.Before(to) {
			cp := *a
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeRepo) Update(_ context.Context, appt *domain.Appointment) error {
	if r.updateErr != nil {
		return r.updateErr
	}
	cp := *appt
	r.items[appt.ID] = &cp
	return nil
}

type fakeStaff struct{}

func (fakeStaff) GetStaff(_ context.Context, id int64) (*staffservice.Staff, error) {
	if id > 10 {
		return nil, staffservice.ErrStaffNotFound
	}
	return &staffservice.Staff{ID: id, Name: "Staff", IsActive: true}, nil
}

type fakeCatalog struct{}

func (fakeCatalog) GetService(_ context.Context, id int64) (*catalogservice.Service, error) {
	switch id {
	case 1:
		return &catalogservice.Service{ID: 1, Name: "Massage", DurationMinutes: 60, Price: ptr.Ptr(3000.0), IsActive: true}, nil
	case 2:
		return &catalogservice.Service{ID: 2, Name: "Manicure", DurationMinutes: 30, Price: ptr.Ptr(1500.0), IsActive: true}, nil
	}
	return nil, catalogservice.ErrServiceNotFound
}

type fakeClients struct{}

func (fakeClients) GetClient(_ context.Context, id int64) (*clientservice.ClientCard, error) {
	return &clientservice.ClientCard{ID: id, FullName: "Maria Ivanova", IsActive: true}, nil
}

type fakeTx struct{}

func (fakeTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeNotifier struct {
	changes []notify.Change
}

func (n *fakeNotifier) Changed(_ context.Context, change notify.Change) {
	n.changes = append(n.changes, change)
}

type fakeMetrics struct {
	conflicts int
}

func (m *fakeMetrics) IncBookingConflict(string) { m.conflicts++ }

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }
