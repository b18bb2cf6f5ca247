package get_shift_range

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-SpaBookingService/internal/service/shifts"
	"github.com/m04kA/SMC-SpaBookingService/internal/service/shifts/models"
	"github.com/m04kA/SMC-SpaBookingService/pkg/logger"
)

type fakeService struct {
	resp *models.ShiftRangeResponse
	err  error
}

func (f *fakeService) GetByID(_ context.Context, _ int64) (*models.ShiftRangeResponse, error) {
	return f.resp, f.err
}

func get(svc *fakeService, path string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/shift-ranges/{shiftRangeId}", NewHandler(svc, logger.NewNop()).Handle)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandle(t *testing.T) {
	ok := get(&fakeService{resp: &models.ShiftRangeResponse{ID: 5, IsActive: true}}, "/api/v1/shift-ranges/5")
	assert.Equal(t, http.StatusOK, ok.Code)
	assert.Contains(t, ok.Body.String(), `"id":5`)

	assert.Equal(t, http.StatusNotFound, get(&fakeService{err: shifts.ErrShiftRangeNotFound}, "/api/v1/shift-ranges/5").Code)
	assert.Equal(t, http.StatusBadRequest, get(&fakeService{}, "/api/v1/shift-ranges/zero").Code)
}
