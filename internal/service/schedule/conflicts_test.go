package schedule

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SpaBookingService/internal/domain"
	"github.com/m04kA/SMC-SpaBookingService/pkg/ptr"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd [2]int
		want                       bool
	}{
		{"identical", [2]int{10, 0}, [2]int{11, 0}, [2]int{10, 0}, [2]int{11, 0}, true},
		{"inside", [2]int{10, 30}, [2]int{11, 0}, [2]int{10, 0}, [2]int{11, 0}, true},
		{"covering", [2]int{9, 0}, [2]int{12, 0}, [2]int{10, 0}, [2]int{11, 0}, true},
		{"partial left", [2]int{9, 30}, [2]int{10, 15}, [2]int{10, 0}, [2]int{11, 0}, true},
		{"back to back after", [2]int{11, 0}, [2]int{11, 30}, [2]int{10, 0}, [2]int{11, 0}, false},
		{"back to back before", [2]int{9, 0}, [2]int{10, 0}, [2]int{10, 0}, [2]int{11, 0}, false},
		{"disjoint", [2]int{12, 0}, [2]int{13, 0}, [2]int{10, 0}, [2]int{11, 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aS, aE := at(tt.aStart[0], tt.aStart[1]), at(tt.aEnd[0], tt.aEnd[1])
			bS, bE := at(tt.bStart[0], tt.bStart[1]), at(tt.bEnd[0], tt.bEnd[1])
			assert.Equal(t, tt.want, Overlaps(aS, aE, bS, bE))
			assert.Equal(t, tt.want, Overlaps(bS, bE, aS, aE), "overlap is symmetric")
		})
	}
}

func TestFindConflicts(t *testing.T) {
	existing := []*domain.Appointment{
		appt(3, 1, at(10, 30), 30, domain.StatusConfirmed),
		appt(1, 1, at(10, 0), 60, domain.StatusScheduled),
		appt(2, 1, at(10, 15), 30, domain.StatusCancelled),
		appt(4, 2, at(10, 0), 60, domain.StatusScheduled),
	}

	got := FindConflicts(existing, 1, at(10, 30), at(11, 0), nil)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID, "ordered by start")
	assert.Equal(t, int64(3), got[1].ID)

	got = FindConflicts(existing, 1, at(10, 30), at(11, 0), ptr.Ptr(int64(3)))
	require.Len(t, got, 1)
	assert.Equal(t, int64(1), got[0].ID)

	assert.Empty(t, FindConflicts(existing, 2, at(11, 0), at(12, 0), nil))
}

// Scenario B: 10:00-11:00 exists, 10:30-11:00 is rejected naming the 10:00 appointment
func TestCheckConflict_OverlapRejected(t *testing.T) {
	existing := []*domain.Appointment{appt(10, 1, at(10, 0), 60, domain.StatusScheduled)}

	err := CheckConflict(existing, 1, at(10, 30), at(11, 0), nil)
	var conflict *domain.ConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, int64(10), conflict.Blocking.ID)
	assert.Equal(t, at(10, 0), conflict.Blocking.StartTime)
}

// Scenario C and P2: back-to-back booking succeeds while the earlier one is still scheduled
func TestCheckConflict_BackToBackAllowed(t *testing.T) {
	existing := []*domain.Appointment{appt(10, 1, at(10, 0), 60, domain.StatusScheduled)}

	assert.NoError(t, CheckConflict(existing, 1, at(11, 0), at(11, 30), nil))
	assert.NoError(t, CheckConflict(existing, 1, at(9, 0), at(10, 0), nil))
}

func TestCheckConflict_SelfExcludedOnUpdate(t *testing.T) {
	existing := []*domain.Appointment{appt(10, 1, at(10, 0), 60, domain.StatusConfirmed)}

	assert.NoError(t, CheckConflict(existing, 1, at(10, 15), at(11, 15), ptr.Ptr(int64(10))))
}

func TestCheckConflict_TerminalNonCancelledStillBlocks(t *testing.T) {
	existing := []*domain.Appointment{
		appt(1, 1, at(10, 0), 60, domain.StatusCompleted),
		appt(2, 1, at(12, 0), 60, domain.StatusNoShow),
	}

	assert.Error(t, CheckConflict(existing, 1, at(10, 0), at(10, 30), nil))
	assert.Error(t, CheckConflict(existing, 1, at(12, 30), at(13, 0), nil))
}
