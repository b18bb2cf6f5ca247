package catalogservice

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SpaBookingService/pkg/logger"
)

func TestGetService(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/internal/services/3":
			_, _ = w.Write([]byte(`{"id":3,"name":"Hot stone massage","duration_minutes":60,"price":3500,"is_active":true}`))
		case "/internal/services/4":
			_, _ = w.Write([]byte(`{"id":4,"name":"Broken","duration_minutes":0}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second, logger.NewNop())

	svc, err := c.GetService(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, 60, svc.DurationMinutes)
	assert.Equal(t, 3500.0, svc.PriceOrZero())

	_, err = c.GetService(context.Background(), 4)
	assert.ErrorIs(t, err, ErrInvalidResponse)

	_, err = c.GetService(context.Background(), 5)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}
