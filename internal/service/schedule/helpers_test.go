package schedule

import (
	"time"

	"github.com/m04kA/SMC-SpaBookingService/internal/domain"
	"github.com/m04kA/SMC-SpaBookingService/pkg/ptr"
	"github.com/m04kA/SMC-SpaBookingService/pkg/types"
)

// 2024-03-11 is a Monday
var monday = time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

func at(hh, mm int) time.Time {
	return time.Date(2024, 3, 11, hh, mm, 0, 0, time.UTC)
}

func appt(id, staffID int64, start time.Time, minutes int, status domain.AppointmentStatus) *domain.Appointment {
	return &domain.Appointment{
		ID:          id,
		StaffID:     staffID,
		StartTime:   start,
		EndTime:     start.Add(time.Duration(minutes) * time.Minute),
		Status:      status,
		ClientName:  "Anna",
		ServiceName: "Massage",
	}
}

func dayShift(staffID int64) *domain.ResolvedShift {
	return &domain.ResolvedShift{
		StaffID:    staffID,
		Date:       monday,
		ShiftStart: "09:00",
		ShiftEnd:   "17:00",
		BreakStart: ptr.Ptr(types.TimeString("13:00")),
		BreakEnd:   ptr.Ptr(types.TimeString("14:00")),
	}
}

func shiftRange(id, staffID int64, priority int, created time.Time) *domain.ShiftRange {
	return &domain.ShiftRange{
		ID:         id,
		StaffID:    staffID,
		FromDate:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		ToDate:     time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		Monday:     true,
		Tuesday:    true,
		Wednesday:  true,
		Thursday:   true,
		Friday:     true,
		ShiftStart: "09:00",
		ShiftEnd:   "17:00",
		Priority:   priority,
		IsActive:   true,
		CreatedAt:  created,
	}
}
