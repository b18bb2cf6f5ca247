package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := NewWithRegisterer("spa-booking", prometheus.NewRegistry())

	m.IncBookingConflict("online")
	m.IncBookingConflict("online")
	m.IncAppointmentCreated("walk_in")
	m.IncAppointmentTransition("scheduled", "confirmed")
	m.ObserveHTTPRequest("POST", "/api/v1/appointments", 201, 20*time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.bookingConflicts.WithLabelValues("online")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.appointmentsCreated.WithLabelValues("walk_in")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.appointmentTransitions.WithLabelValues("scheduled", "confirmed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("POST", "/api/v1/appointments", "201")))
}

func TestMetrics_NilReceiverIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncBookingConflict("manual")
		m.IncGridCache("hit")
		m.SetDBPoolStats(1, 1, 0, 0)
		m.ObserveDBQuery("query", time.Millisecond)
	})
}
