package quick_book

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SpaBookingService/internal/domain"
	"github.com/m04kA/SMC-SpaBookingService/internal/integrations/catalogservice"
	"github.com/m04kA/SMC-SpaBookingService/internal/integrations/staffservice"
	"github.com/m04kA/SMC-SpaBookingService/internal/service/appointments/models"
	"github.com/m04kA/SMC-SpaBookingService/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-SpaBookingService/pkg/types"
)

var monday = time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

func at(hh, mm int) time.Time {
	return time.Date(2024, 3, 11, hh, mm, 0, 0, time.UTC)
}

type fakeStaff struct {
	roster []staffservice.Staff
}

func (c *fakeStaff) GetRoster(_ context.Context, _ bool) ([]staffservice.Staff, error) {
	return c.roster, nil
}

type fakeCatalog struct{}

func (fakeCatalog) GetService(_ context.Context, id int64) (*catalogservice.Service, error) {
	switch id {
	case 1:
		return &catalogservice.Service{ID: 1, Name: "Massage", DurationMinutes: 60, IsActive: true}, nil
	case 2:
		return &catalogservice.Service{ID: 2, Name: "Manicure", DurationMinutes: 30, IsActive: true}, nil
	}
	return nil, catalogservice.ErrServiceNotFound
}

type fakeShifts struct {
	ranges []*domain.ShiftRange
}

func (r *fakeShifts) ListCovering(_ context.Context, _ []int64, _ time.Time) ([]*domain.ShiftRange, error) {
	return r.ranges, nil
}

type fakeAppointments struct {
	items []*domain.Appointment
}

func (r *fakeAppointments) List(_ context.Context, _ domain.AppointmentFilter) ([]*domain.Appointment, error) {
	return r.items, nil
}

// fakeCreate имитирует create_appointment; taken - мастера, чей слот занят параллельно
type fakeCreate struct {
	requests []*create_appointment.Request
	taken    map[int64]bool
}

func (c *fakeCreate) Execute(_ context.Context, req *create_appointment.Request) (*models.AppointmentResponse, error) {
	c.requests = append(c.requests, req)
	if c.taken[req.StaffID] {
		return nil, domain.NewConflictError(nil)
	}
	return &models.AppointmentResponse{ID: 100, StaffID: req.StaffID, BookingSource: req.Source}, nil
}

func shift(id, staffID int64, from, to string, breakFrom, breakTo string) *domain.ShiftRange {
	sr := &domain.ShiftRange{
		ID:         id,
		StaffID:    staffID,
		FromDate:   monday,
		ToDate:     monday,
		Monday:     true,
		ShiftStart: types.TimeString(from),
		ShiftEnd:   types.TimeString(to),
		IsActive:   true,
	}
	if breakFrom != "" {
		bs, be := types.TimeString(breakFrom), types.TimeString(breakTo)
		sr.BreakStart, sr.BreakEnd = &bs, &be
	}
	return sr
}
