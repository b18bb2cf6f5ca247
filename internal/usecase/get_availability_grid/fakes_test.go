package get_availability_grid

import (
	"context"
	"errors"
	"time"

	"github.com/m04kA/SMC-SpaBookingService/internal/domain"
	"github.com/m04kA/SMC-SpaBookingService/internal/integrations/staffservice"
	"github.com/m04kA/SMC-SpaBookingService/pkg/types"
)

type fakeStaffClient struct {
	roster []staffservice.Staff
	calls  int
	err    error
}

func (c *fakeStaffClient) GetRoster(_ context.Context, _ bool) ([]staffservice.Staff, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return c.roster, nil
}

type fakeShiftRepo struct {
	ranges []*domain.ShiftRange
}

func (r *fakeShiftRepo) ListCovering(_ context.Context, staffIDs []int64, date time.Time) ([]*domain.ShiftRange, error) {
	var out []*domain.ShiftRange
	for _, sr := range r.ranges {
		for _, id := range staffIDs {
			if sr.StaffID == id && sr.Covers(date) {
				out = append(out, sr)
			}
		}
	}
	return out, nil
}

type fakeAppointmentRepo struct {
	items []*domain.Appointment
	err   error
	// afterRead вызывается после чтения, до возврата результата
	afterRead func()
}

func (r *fakeAppointmentRepo) List(_ context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.afterRead != nil {
		defer r.afterRead()
	}
	var out []*domain.Appointment
	for _, a := range r.items {
		if filter.StaffID != nil && a.StaffID != *filter.StaffID {
			continue
		}
		if !filter.IncludeCancelled && a.Status == domain.StatusCancelled {
			continue
		}
		if !a.EndTime.After(*filter.From) || !a.StartTime.Before(*filter.To) {
			continue
		}
		snapshot := *a
		out = append(out, &snapshot)
	}
	return out, nil
}

var errBoom = errors.New("boom")

var monday = time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

func at(hh, mm int) time.Time {
	return time.Date(2024, 3, 11, hh, mm, 0, 0, time.UTC)
}

func weekdayShift(id, staffID int64) *domain.ShiftRange {
	bs := types.TimeString("13:00")
	be := types.TimeString("14:00")
	return &domain.ShiftRange{
		ID:         id,
		StaffID:    staffID,
		FromDate:   monday.AddDate(0, 0, -7),
		ToDate:     monday.AddDate(0, 0, 30),
		Monday:     true,
		Tuesday:    true,
		Wednesday:  true,
		Thursday:   true,
		Friday:     true,
		ShiftStart: "09:00",
		ShiftEnd:   "17:00",
		BreakStart: &bs,
		BreakEnd:   &be,
		IsActive:   true,
	}
}
