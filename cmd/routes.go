package main

import (
	"net/http"

	"github.com/gorilla/mux"
)

// API префиксы. Unaki использует те же обработчики, поэтому поведение поверхностей совпадает.
const (
	apiPrefix      = "/api/v1"
	unakiAPIPrefix = "/api/unaki/v1"
)

// apiHandlers обработчики HTTP API
type apiHandlers struct {
	getAvailabilityGrid http.HandlerFunc

	createAppointment http.HandlerFunc
	quickBook         http.HandlerFunc
	listAppointments  http.HandlerFunc
	getAppointment    http.HandlerFunc
	updateAppointment http.HandlerFunc
	transitionStatus  http.HandlerFunc
	cancelAppointment http.HandlerFunc
	deleteAppointment http.HandlerFunc

	createShiftRange     http.HandlerFunc
	listShiftRanges      http.HandlerFunc
	getShiftRange        http.HandlerFunc
	updateShiftRange     http.HandlerFunc
	deactivateShiftRange http.HandlerFunc
	resolveShift         http.HandlerFunc
}

// registerRoutes регистрирует API под обоими префиксами
func registerRoutes(r *mux.Router, h *apiHandlers) {
	for _, prefix := range []string{apiPrefix, unakiAPIPrefix} {
		api := r.PathPrefix(prefix).Subrouter()

		// --- Сетка доступности ---
		api.HandleFunc("/availability", h.getAvailabilityGrid).Methods(http.MethodGet)

		// --- Записи ---
		api.HandleFunc("/appointments", h.createAppointment).Methods(http.MethodPost)
		api.HandleFunc("/appointments", h.listAppointments).Methods(http.MethodGet)
		api.HandleFunc("/appointments/quick-book", h.quickBook).Methods(http.MethodPost)
		api.HandleFunc("/appointments/{appointmentId:[0-9]+}", h.getAppointment).Methods(http.MethodGet)
		api.HandleFunc("/appointments/{appointmentId:[0-9]+}", h.updateAppointment).Methods(http.MethodPut)
		api.HandleFunc("/appointments/{appointmentId:[0-9]+}", h.deleteAppointment).Methods(http.MethodDelete)
		api.HandleFunc("/appointments/{appointmentId:[0-9]+}/status", h.transitionStatus).Methods(http.MethodPatch)
		api.HandleFunc("/appointments/{appointmentId:[0-9]+}/cancel", h.cancelAppointment).Methods(http.MethodPatch)

		// --- Смены мастеров ---
		api.HandleFunc("/staff/{staffId:[0-9]+}/shift-ranges", h.createShiftRange).Methods(http.MethodPost)
		api.HandleFunc("/staff/{staffId:[0-9]+}/shift-ranges", h.listShiftRanges).Methods(http.MethodGet)
		api.HandleFunc("/staff/{staffId:[0-9]+}/shift", h.resolveShift).Methods(http.MethodGet)
		api.HandleFunc("/shift-ranges/{shiftRangeId:[0-9]+}", h.getShiftRange).Methods(http.MethodGet)
		api.HandleFunc("/shift-ranges/{shiftRangeId:[0-9]+}", h.updateShiftRange).Methods(http.MethodPut)
		api.HandleFunc("/shift-ranges/{shiftRangeId:[0-9]+}/deactivate", h.deactivateShiftRange).Methods(http.MethodPatch)
	}
}
