package list_shift_ranges

import (
	"context"
	"errors"
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
	staffID         int64
	includeInactive bool
	resp            []models.ShiftRangeResponse
	err             error
}

func (f *fakeService) ListByStaff(_ context.Context, staffID int64, includeInactive bool) ([]models.ShiftRangeResponse, error) {
	f.staffID, f.includeInactive = staffID, includeInactive
	return f.resp, f.err
}

func list(svc *fakeService, path string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/staff/{staffId}/shift-ranges", NewHandler(svc, logger.NewNop()).Handle)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandle_OK(t *testing.T) {
	svc := &fakeService{resp: []models.ShiftRangeResponse{{
		ID:         1,
		StaffID:    2,
		FromDate:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		ToDate:     time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		Weekdays:   models.Weekdays{Monday: true},
		ShiftStart: types.MustTimeString("09:00"),
		ShiftEnd:   types.MustTimeString("18:00"),
		IsActive:   true,
	}}}

	rec := list(svc, "/api/v1/staff/2/shift-ranges?includeInactive=true")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(2), svc.staffID)
	assert.True(t, svc.includeInactive)
	assert.Contains(t, rec.Body.String(), `"fromDate":"2024-03-01"`)
	assert.Contains(t, rec.Body.String(), `"monday":true`)
	assert.Contains(t, rec.Body.String(), `"shiftStart":"09:00"`)
}

func TestHandle_Errors(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, list(&fakeService{}, "/api/v1/staff/abc/shift-ranges").Code)
	assert.Equal(t, http.StatusBadRequest, list(&fakeService{}, "/api/v1/staff/2/shift-ranges?includeInactive=sometimes").Code)
	assert.Equal(t, http.StatusInternalServerError, list(&fakeService{err: errors.New("db")}, "/api/v1/staff/2/shift-ranges").Code)
}
