package resolve_shift

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SpaBookingService/internal/service/shifts/models"
	"github.com/m04kA/SMC-SpaBookingService/pkg/logger"
	"github.com/m04kA/SMC-SpaBookingService/pkg/types"
)

type fakeService struct {
	date time.Time
	resp *models.ResolvedShiftResponse
	err  error
}

func (f *fakeService) Resolve(_ context.Context, _ int64, date time.Time) (*models.ResolvedShiftResponse, error) {
	f.date = date
	return f.resp, f.err
}

func get(svc *fakeService, path string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/staff/{staffId}/shift", NewHandler(svc, logger.NewNop()).Handle)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandle_Working(t *testing.T) {
	breakStart, breakEnd := types.MustTimeString("13:00"), types.MustTimeString("14:00")
	svc := &fakeService{resp: &models.ResolvedShiftResponse{
		StaffID:      2,
		Date:         time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC),
		Working:      true,
		ShiftRangeID: 8,
		ShiftStart:   types.MustTimeString("09:00"),
		ShiftEnd:     types.MustTimeString("18:00"),
		BreakStart:   &breakStart,
		BreakEnd:     &breakEnd,
		Label:        "Override",
	}}

	rec := get(svc, "/api/v1/staff/2/shift?date=2024-03-11")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"staffId":2,"date":"2024-03-11","working":true,"shiftRangeId":8,
		"shiftStart":"09:00","shiftEnd":"18:00","breakStart":"13:00","breakEnd":"14:00","label":"Override"}`, rec.Body.String())
	assert.Equal(t, 11, svc.date.Day())
}

func TestHandle_DayOff(t *testing.T) {
	svc := &fakeService{resp: &models.ResolvedShiftResponse{StaffID: 2, Date: time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)}}

	rec := get(svc, "/api/v1/staff/2/shift?date=2024-03-10")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"staffId":2,"date":"2024-03-10","working":false}`, rec.Body.String())
}

func TestHandle_MissingDate(t *testing.T) {
	rec := get(&fakeService{}, "/api/v1/staff/2/shift")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"field":"date"`)
}
