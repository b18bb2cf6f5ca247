package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SpaBookingService/internal/domain"
	"github.com/m04kA/SMC-SpaBookingService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-SpaBookingService/internal/integrations/clientservice"
	"github.com/m04kA/SMC-SpaBookingService/internal/integrations/staffservice"
	"github.com/m04kA/SMC-SpaBookingService/internal/service/notify"
	"github.com/m04kA/SMC-SpaBookingService/pkg/ptr"
)

type fakeRepo struct {
	items     []*domain.Appointment
	locked    []string
	nextID    int64
	createErr error
	listErr   error
}

func (r *fakeRepo) Create(_ context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	r.nextID++
	cp := *appt
	cp.ID = r.nextID
	r.items = append(r.items, &cp)
	return &cp, nil
}

func (r *fakeRepo) LockStaffDay(_ context.Context, staffID int64, date time.Time) error {
	r.locked = append(r.locked, domain.DateKey(date))
	return nil
}

func (r *fakeRepo) ListForStaffWindowForUpdate(_ context.Context, staffID int64, from, to time.Time) ([]*domain.Appointment, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []*domain.Appointment
	for _, a := range r.items {
		if a.StaffID == staffID && a.Status != domain.StatusCancelled && a.EndTime.After(from) && a.StartTime.Before(to) {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeStaff struct {
	staff map[int64]*staffservice.Staff
}

func (c *fakeStaff) GetStaff(_ context.Context, id int64) (*staffservice.Staff, error) {
	s, ok := c.staff[id]
	if !ok {
		return nil, staffservice.ErrStaffNotFound
	}
	return s, nil
}

type fakeCatalog struct {
	services map[int64]*catalogservice.Service
	err      error
}

func (c *fakeCatalog) GetService(_ context.Context, id int64) (*catalogservice.Service, error) {
	if c.err != nil {
		return nil, c.err
	}
	s, ok := c.services[id]
	if !ok {
		return nil, catalogservice.ErrServiceNotFound
	}
	return s, nil
}

type fakeClients struct{}

func (fakeClients) GetClient(_ context.Context, id int64) (*clientservice.ClientCard, error) {
	if id == 404 {
		return nil, clientservice.ErrClientNotFound
	}
	return &clientservice.ClientCard{ID: id, FullName: "Anna Petrova", IsActive: true}, nil
}

type fakeTx struct {
	calls int
}

func (tx *fakeTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	tx.calls++
	return fn(ctx)
}

type fakeNotifier struct {
	changes []notify.Change
}

func (n *fakeNotifier) Changed(_ context.Context, change notify.Change) {
	n.changes = append(n.changes, change)
}

type fakeMetrics struct {
	created   []string
	conflicts []string
}

func (m *fakeMetrics) IncAppointmentCreated(source string) { m.created = append(m.created, source) }
func (m *fakeMetrics) IncBookingConflict(source string)    { m.conflicts = append(m.conflicts, source) }

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time { return f.now }

func defaultCatalog() *fakeCatalog {
	return &fakeCatalog{services: map[int64]*catalogservice.Service{
		1: {ID: 1, Name: "Massage", DurationMinutes: 60, Price: ptr.Ptr(3000.0), IsActive: true},
		2: {ID: 2, Name: "Manicure", DurationMinutes: 30, IsActive: true},
		3: {ID: 3, Name: "Retired", DurationMinutes: 30, IsActive: false},
	}}
}

func defaultStaff() *fakeStaff {
	return &fakeStaff{staff: map[int64]*staffservice.Staff{
		1: {ID: 1, Name: "Olga", IsActive: true},
		2: {ID: 2, Name: "Irina", IsActive: false},
	}}
}
