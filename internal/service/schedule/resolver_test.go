package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SpaBookingService/internal/domain"
	"github.com/m04kA/SMC-SpaBookingService/pkg/ptr"
	"github.com/m04kA/SMC-SpaBookingService/pkg/types"
)

func TestResolveShift_NoCandidates(t *testing.T) {
	ranges := []*domain.ShiftRange{shiftRange(1, 1, 0, monday)}

	// Sunday is not a working day in the range
	assert.Nil(t, ResolveShift(ranges, 1, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)))
	// other staff member
	assert.Nil(t, ResolveShift(ranges, 2, monday))
	// nothing at all
	assert.Nil(t, ResolveShift(nil, 1, monday))
}

func TestResolveShift_HighestPriorityWins(t *testing.T) {
	base := shiftRange(1, 1, 0, monday.AddDate(0, 0, -10))
	override := shiftRange(2, 1, 10, monday.AddDate(0, 0, -20))
	override.ShiftStart = "12:00"
	override.ShiftEnd = "20:00"

	got := ResolveShift([]*domain.ShiftRange{base, override}, 1, monday)
	require.NotNil(t, got)
	assert.Equal(t, int64(2), got.ShiftRangeID)
	assert.Equal(t, types.TimeString("12:00"), got.ShiftStart)
	assert.Equal(t, "12:00-20:00", got.Label)
}

func TestResolveShift_TieBrokenByMostRecentCreation(t *testing.T) {
	older := shiftRange(1, 1, 5, monday.AddDate(0, 0, -10))
	newer := shiftRange(2, 1, 5, monday.AddDate(0, 0, -1))
	newer.Label = ptr.Ptr("Spring hours")

	got := ResolveShift([]*domain.ShiftRange{newer, older}, 1, monday)
	require.NotNil(t, got)
	assert.Equal(t, int64(2), got.ShiftRangeID)
	assert.Equal(t, "Spring hours", got.Label)

	// same creation time: higher id wins, independent of input order
	a := shiftRange(3, 1, 5, monday)
	b := shiftRange(4, 1, 5, monday)
	assert.Equal(t, int64(4), ResolveShift([]*domain.ShiftRange{a, b}, 1, monday).ShiftRangeID)
	assert.Equal(t, int64(4), ResolveShift([]*domain.ShiftRange{b, a}, 1, monday).ShiftRangeID)
}

func TestResolveShift_IgnoresInactive(t *testing.T) {
	active := shiftRange(1, 1, 0, monday)
	inactive := shiftRange(2, 1, 100, monday)
	inactive.IsActive = false

	got := ResolveShift([]*domain.ShiftRange{active, inactive}, 1, monday)
	require.NotNil(t, got)
	assert.Equal(t, int64(1), got.ShiftRangeID)
}

func TestResolveShift_CopiesBreak(t *testing.T) {
	r := shiftRange(1, 1, 0, monday)
	r.BreakStart = ptr.Ptr(types.TimeString("13:00"))
	r.BreakEnd = ptr.Ptr(types.TimeString("14:00"))

	got := ResolveShift([]*domain.ShiftRange{r}, 1, monday.Add(15*time.Hour))
	require.NotNil(t, got)
	assert.Equal(t, monday, got.Date)
	assert.Equal(t, "09:00-17:00 (break 13:00-14:00)", got.Label)

	*r.BreakStart = "12:00"
	assert.Equal(t, types.TimeString("13:00"), *got.BreakStart)
}

func TestResolveShifts(t *testing.T) {
	ranges := []*domain.ShiftRange{shiftRange(1, 1, 0, monday)}
	staff := []domain.StaffMember{{ID: 1, Name: "Maria"}, {ID: 2, Name: "Olga"}}

	got := ResolveShifts(ranges, staff, monday)
	assert.Len(t, got, 1)
	assert.Contains(t, got, int64(1))
}
