package gridcache

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SpaBookingService/internal/domain"
	"github.com/m04kA/SMC-SpaBookingService/pkg/metrics"
	"github.com/m04kA/SMC-SpaBookingService/pkg/ptr"
)

var monday = time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

func newCache(t *testing.T) (*Cache, *miniredis.Miniredis, *prometheus.Registry) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	reg := prometheus.NewRegistry()
	return New(rdb, time.Minute, metrics.NewWithRegisterer("test", reg)), mr, reg
}

func sampleGrid() *domain.AvailabilityGrid {
	slot := domain.TimeSlot{Start: monday.Add(10 * time.Hour), DurationMinutes: 15}
	return &domain.AvailabilityGrid{
		Date:                monday,
		View:                domain.ViewCalendar,
		StartHour:           9,
		EndHour:             21,
		SlotDurationMinutes: 15,
		Staff:               []domain.StaffMember{{ID: 1, Name: "Maria", IsActive: true}},
		Slots:               []domain.TimeSlot{slot},
		Cells: []domain.AvailabilityCell{{
			StaffID:          1,
			Slot:             slot,
			Status:           domain.CellAvailable,
			CanBook:          true,
			RemainingMinutes: ptr.Ptr(420),
		}},
	}
}

func TestCache_SetGet(t *testing.T) {
	c, mr, reg := newCache(t)
	ctx := context.Background()
	q := Query{Date: monday, View: domain.ViewCalendar, StartHour: 9, EndHour: 21, SlotDurationMinutes: 15}

	_, ok, err := c.Get(ctx, q)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, q, sampleGrid()))
	assert.Equal(t, time.Minute, mr.TTL("spa:grid:2024-03-11:v0:all:calendar:9-21:15"))

	got, ok, err := c.Get(ctx, q)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, got.Cells, 1)
	assert.Equal(t, domain.CellAvailable, got.Cells[0].Status)
	assert.Equal(t, 420, *got.Cells[0].RemainingMinutes)
	assert.True(t, got.Cells[0].Slot.Start.Equal(monday.Add(10*time.Hour)))

	expected := `
# HELP grid_cache_requests_total Availability grid cache lookups
# TYPE grid_cache_requests_total counter
grid_cache_requests_total{result="hit",service="test"} 1
grid_cache_requests_total{result="miss",service="test"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "grid_cache_requests_total"))
}

func TestCache_KeyDependsOnQuery(t *testing.T) {
	c, _, _ := newCache(t)
	ctx := context.Background()

	all := Query{Date: monday, View: domain.ViewStaff, StartHour: 9, EndHour: 21, SlotDurationMinutes: 30}
	one := all
	one.StaffID = ptr.Ptr(int64(1))

	require.NoError(t, c.Set(ctx, all, sampleGrid()))

	_, ok, err := c.Get(ctx, one)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCache_Invalidate(t *testing.T) {
	c, mr, _ := newCache(t)
	ctx := context.Background()
	q := Query{Date: monday, View: domain.ViewTimeline, StartHour: 8, EndHour: 20, SlotDurationMinutes: 60}
	tuesday := Query{Date: monday.AddDate(0, 0, 1), View: domain.ViewTimeline, StartHour: 8, EndHour: 20, SlotDurationMinutes: 60}

	require.NoError(t, c.Set(ctx, q, sampleGrid()))
	require.NoError(t, c.Set(ctx, tuesday, sampleGrid()))

	require.NoError(t, c.Invalidate(ctx, monday, monday.Add(5*time.Hour)))

	v, err := mr.Get("spa:grid:ver:2024-03-11")
	require.NoError(t, err)
	assert.Equal(t, "1", v, "same date invalidated once")

	q.Version, err = c.Version(ctx, q.Date)
	require.NoError(t, err)
	assert.Equal(t, int64(1), q.Version)
	_, ok, err := c.Get(ctx, q)
	require.NoError(t, err)
	assert.False(t, ok)

	tuesday.Version, err = c.Version(ctx, tuesday.Date)
	require.NoError(t, err)
	assert.Zero(t, tuesday.Version)
	_, ok, err = c.Get(ctx, tuesday)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCache_GridBuiltBeforeInvalidateIsNotServed(t *testing.T) {
	c, _, _ := newCache(t)
	ctx := context.Background()

	version, err := c.Version(ctx, monday)
	require.NoError(t, err)
	q := Query{Date: monday, Version: version, View: domain.ViewCalendar, StartHour: 9, EndHour: 21, SlotDurationMinutes: 15}

	_, ok, err := c.Get(ctx, q)
	require.NoError(t, err)
	require.False(t, ok)

	// запись отменили, пока сетка строилась из старых данных
	require.NoError(t, c.Invalidate(ctx, monday))

	booked := sampleGrid()
	booked.Cells[0].Status = domain.CellBooked
	require.NoError(t, c.Set(ctx, q, booked))

	next := q
	next.Version, err = c.Version(ctx, monday)
	require.NoError(t, err)

	got, ok, err := c.Get(ctx, next)
	require.NoError(t, err)
	assert.False(t, ok, "grid built before invalidation served with status %v", statusOf(got))
}

func statusOf(grid *domain.AvailabilityGrid) domain.CellStatus {
	if grid == nil || len(grid.Cells) == 0 {
		return ""
	}
	return grid.Cells[0].Status
}

func TestCache_RedisDown(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	t.Cleanup(func() { rdb.Close() })
	c := New(rdb, time.Minute, nil)

	_, err := c.Version(context.Background(), monday)
	assert.ErrorIs(t, err, ErrRedis)

	_, ok, err := c.Get(context.Background(), Query{Date: monday})
	assert.ErrorIs(t, err, ErrRedis)
	assert.False(t, ok)
}

func TestCache_InvalidateNoDates(t *testing.T) {
	rdb := redis.NewClient(&redis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	t.Cleanup(func() { rdb.Close() })
	c := New(rdb, time.Minute, nil)

	assert.NoError(t, c.Invalidate(context.Background()))
}
