package cancel_appointment

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SpaBookingService/internal/domain"
	"github.com/m04kA/SMC-SpaBookingService/internal/service/appointments/models"
	"github.com/m04kA/SMC-SpaBookingService/pkg/logger"
)

type fakeService struct {
	got  *models.CancelRequest
	resp *models.AppointmentResponse
	err  error
}

func (f *fakeService) Cancel(_ context.Context, _ int64, req *models.CancelRequest) (*models.AppointmentResponse, error) {
	f.got = req
	return f.resp, f.err
}

func cancel(svc *fakeService, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/appointments/{appointmentId}/cancel", NewHandler(svc, logger.NewNop()).Handle)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/v1/appointments/3/cancel", strings.NewReader(body)))
	return rec
}

func TestHandle_WithReason(t *testing.T) {
	svc := &fakeService{resp: &models.AppointmentResponse{ID: 3, Status: "cancelled"}}

	rec := cancel(svc, `{"cancellationReason":"client sick"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, svc.got.Reason)
	assert.Equal(t, "client sick", *svc.got.Reason)
}

func TestHandle_EmptyBody(t *testing.T) {
	svc := &fakeService{resp: &models.AppointmentResponse{ID: 3, Status: "cancelled"}}

	rec := cancel(svc, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Nil(t, svc.got.Reason)
}

func TestHandle_AlreadyCancelled(t *testing.T) {
	svc := &fakeService{err: &domain.InvalidTransitionError{From: domain.StatusCancelled, To: domain.StatusCancelled}}

	rec := cancel(svc, "")

	assert.Equal(t, http.StatusConflict, rec.Code)
}
