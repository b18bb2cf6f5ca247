package shifts

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SpaBookingService/internal/domain"
	shiftRepo "github.com/m04kA/SMC-SpaBookingService/internal/infra/storage/shift"
	"github.com/m04kA/SMC-SpaBookingService/internal/service/shifts/models"
	"github.com/m04kA/SMC-SpaBookingService/pkg/logger"
	"github.com/m04kA/SMC-SpaBookingService/pkg/ptr"
	"github.com/m04kA/SMC-SpaBookingService/pkg/types"
)

var monday = time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)

func createRequest() *models.CreateShiftRangeRequest {
	return &models.CreateShiftRangeRequest{
		StaffID:  1,
		FromDate: monday,
		ToDate:   monday.AddDate(0, 0, 2),
		Weekdays: models.Weekdays{
			Monday: true, Tuesday: true, Wednesday: true, Thursday: true, Friday: true,
		},
		ShiftStart: "09:00",
		ShiftEnd:   "17:00",
		BreakStart: ptr.Ptr(types.TimeString("13:00")),
		BreakEnd:   ptr.Ptr(types.TimeString("14:00")),
	}
}

func newTestService(repo *fakeRepo) (*Service, *fakeCache) {
	cache := &fakeCache{}
	return NewService(repo, fakeTx{}, cache, logger.NewNop()), cache
}

func TestService_Create(t *testing.T) {
	repo := newFakeRepo()
	svc, cache := newTestService(repo)

	resp, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.ID)
	assert.True(t, resp.IsActive)
	assert.True(t, resp.Weekdays.Friday)
	assert.False(t, resp.Weekdays.Sunday)
	assert.Equal(t, []string{"2024-03-11", "2024-03-12", "2024-03-13"}, cache.dates)
}

func TestService_Create_Validation(t *testing.T) {
	svc, cache := newTestService(newFakeRepo())

	req := createRequest()
	req.Weekdays = models.Weekdays{}

	_, err := svc.Create(context.Background(), req)
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "weekdays", vErr.Field)
	assert.Empty(t, cache.dates)
}

func TestService_Create_StorageConstraint(t *testing.T) {
	repo := newFakeRepo()
	repo.err = fmt.Errorf("%w: check", shiftRepo.ErrInvalidShiftRange)
	svc, _ := newTestService(repo)

	_, err := svc.Create(context.Background(), createRequest())
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestService_Update_Partial(t *testing.T) {
	repo := newFakeRepo()
	svc, cache := newTestService(repo)
	created, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)
	cache.dates = nil

	resp, err := svc.Update(context.Background(), created.ID, &models.UpdateShiftRangeRequest{
		ShiftEnd:   ptr.Ptr(types.TimeString("19:00")),
		ClearBreak: true,
		Priority:   ptr.Ptr(5),
	})
	require.NoError(t, err)
	assert.Equal(t, types.TimeString("09:00"), resp.ShiftStart)
	assert.Equal(t, types.TimeString("19:00"), resp.ShiftEnd)
	assert.Nil(t, resp.BreakStart)
	assert.Equal(t, 5, resp.Priority)
	assert.NotEmpty(t, cache.dates)
}

func TestService_Update_RevalidatesWholeRange(t *testing.T) {
	repo := newFakeRepo()
	svc, _ := newTestService(repo)
	created, err := svc.Create(context.Background(), createRequest())
	require.NoError(t, err)

	// конец смены раньше перерыва
	_, err = svc.Update(context.Background(), created.ID, &models.UpdateShiftRangeRequest{
		ShiftEnd: ptr.Ptr(types.TimeString("12:00")),
	})
	var vErr *domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "breakEnd", vErr.Field)
	assert.Equal(t, types.TimeString("17:00"), repo.items[created.ID].ShiftEnd, "stored range unchanged")
}

func TestService_Update_NotFound(t *testing.T) {
	svc, _ := newTestService(newFakeRepo())

	_, err := svc.Update(context.Background(), 42, &models.UpdateShiftRangeRequest{})
	assert.ErrorIs(t, err, ErrShiftRangeNotFound)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_DeactivateAndResolve(t *testing.T) {
	repo := newFakeRepo()
	svc, _ := newTestService(repo)
	ctx := context.Background()

	base, err := svc.Create(ctx, createRequest())
	require.NoError(t, err)

	override := createRequest()
	override.FromDate, override.ToDate = monday, monday
	override.ShiftStart, override.ShiftEnd = "12:00", "20:00"
	override.BreakStart, override.BreakEnd = nil, nil
	override.Priority = 10
	override.Label = ptr.Ptr("Late shift")
	top, err := svc.Create(ctx, override)
	require.NoError(t, err)

	resolved, err := svc.Resolve(ctx, 1, monday)
	require.NoError(t, err)
	assert.True(t, resolved.Working)
	assert.Equal(t, top.ID, resolved.ShiftRangeID)
	assert.Equal(t, "Late shift", resolved.Label)

	require.NoError(t, svc.Deactivate(ctx, top.ID))

	resolved, err = svc.Resolve(ctx, 1, monday)
	require.NoError(t, err)
	assert.Equal(t, base.ID, resolved.ShiftRangeID)
	require.NotNil(t, resolved.BreakStart)
	assert.Equal(t, types.TimeString("13:00"), *resolved.BreakStart)

	// воскресенье не рабочий день
	resolved, err = svc.Resolve(ctx, 1, monday.AddDate(0, 0, 6))
	require.NoError(t, err)
	assert.False(t, resolved.Working)
}

func TestService_ListByStaff(t *testing.T) {
	repo := newFakeRepo()
	svc, _ := newTestService(repo)
	ctx := context.Background()

	first, err := svc.Create(ctx, createRequest())
	require.NoError(t, err)
	_, err = svc.Create(ctx, createRequest())
	require.NoError(t, err)
	require.NoError(t, svc.Deactivate(ctx, first.ID))

	active, err := svc.ListByStaff(ctx, 1, false)
	require.NoError(t, err)
	assert.Len(t, active, 1)

	all, err := svc.ListByStaff(ctx, 1, true)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = svc.ListByStaff(ctx, 0, false)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDatesBetween(t *testing.T) {
	assert.Len(t, datesBetween(monday, monday.AddDate(1, 0, 0), maxInvalidatedDays), maxInvalidatedDays)
	assert.Len(t, datesBetween(monday, monday, 10), 1)
	assert.Empty(t, datesBetween(monday, monday.AddDate(0, 0, -1), 10))
}
