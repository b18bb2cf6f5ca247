package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SpaBookingService/internal/domain"
)

func TestNormalizeSlotDuration(t *testing.T) {
	for _, d := range []int{5, 10, 15, 30, 45, 60} {
		assert.Equal(t, d, NormalizeSlotDuration(d))
	}
	assert.Equal(t, 15, NormalizeSlotDuration(7))
	assert.Equal(t, 15, NormalizeSlotDuration(0))
	assert.Equal(t, 15, NormalizeSlotDuration(-30))
	assert.Equal(t, 15, NormalizeSlotDuration(120))
}

func TestGenerateSlots(t *testing.T) {
	slots, err := GenerateSlots(monday, 9, 11, 30)
	require.NoError(t, err)
	require.Len(t, slots, 4)

	assert.Equal(t, at(9, 0), slots[0].Start)
	assert.Equal(t, at(10, 30), slots[3].Start)
	assert.Equal(t, at(11, 0), slots[3].End())
	for i := 1; i < len(slots); i++ {
		assert.Equal(t, slots[i-1].End(), slots[i].Start)
	}
}

func TestGenerateSlots_LastSlotStartsBeforeEndHour(t *testing.T) {
	slots, err := GenerateSlots(monday, 9, 10, 45)
	require.NoError(t, err)
	require.Len(t, slots, 2)
	assert.Equal(t, at(9, 45), slots[1].Start)
}

func TestGenerateSlots_DisallowedDurationNormalized(t *testing.T) {
	slots, err := GenerateSlots(monday, 9, 10, 7)
	require.NoError(t, err)
	require.Len(t, slots, 4)
	assert.Equal(t, 15, slots[0].DurationMinutes)
}

func TestGenerateSlots_FullDay(t *testing.T) {
	slots, err := GenerateSlots(monday, 0, 24, 60)
	require.NoError(t, err)
	require.Len(t, slots, 24)
	assert.Equal(t, at(23, 0), slots[23].Start)
}

func TestGenerateSlots_InvalidHours(t *testing.T) {
	tests := []struct {
		name       string
		start, end int
		field      string
	}{
		{"start equals end", 10, 10, "endHour"},
		{"start after end", 12, 9, "endHour"},
		{"negative start", -1, 9, "startHour"},
		{"end past midnight", 9, 25, "endHour"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := GenerateSlots(monday, tt.start, tt.end, 15)
			var vErr *domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
		})
	}
}

func TestGenerateSlots_Deterministic(t *testing.T) {
	loc := time.FixedZone("MSK", 3*60*60)
	date := time.Date(2024, 3, 11, 0, 0, 0, 0, loc)

	a, err := GenerateSlots(date, 9, 21, 15)
	require.NoError(t, err)
	b, err := GenerateSlots(date, 9, 21, 15)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, loc, a[0].Start.Location())
}
