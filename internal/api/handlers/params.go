package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SpaBookingService/internal/domain"
	"github.com/m04kA/SMC-SpaBookingService/pkg/types"
)

// PathID извлекает положительный int64 из переменной маршрута
func PathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	if id <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", name)
	}
	return id, nil
}

// ParseDate парсит дату "YYYY-MM-DD"
func ParseDate(s string) (time.Time, error) {
	return time.Parse(domain.DateFormat, s)
}

// QueryInt64 необязательный int64 параметр
func QueryInt64(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}
	return &v, nil
}

// QueryInt необязательный int параметр
func QueryInt(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", name, err)
	}
	return &v, nil
}

// QueryBool необязательный bool параметр, по умолчанию false
func QueryBool(r *http.Request, name string) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return false, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", name, err)
	}
	return v, nil
}

// ParseTime парсит время "HH:MM" в поле field; ошибка - ValidationError
func ParseTime(field, s string) (types.TimeString, error) {
	ts, err := types.NewTimeStringFromString(s)
	if err != nil {
		return "", domain.NewValidationError(field, "must be in HH:MM format")
	}
	return ts, nil
}

// ParseOptionalTime как ParseTime для необязательного поля
func ParseOptionalTime(field string, s *string) (*types.TimeString, error) {
	if s == nil {
		return nil, nil
	}
	ts, err := ParseTime(field, *s)
	if err != nil {
		return nil, err
	}
	return &ts, nil
}

// ParseDateField парсит дату в поле field; ошибка - ValidationError
func ParseDateField(field, s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, domain.NewValidationError(field, "is required")
	}
	date, err := ParseDate(s)
	if err != nil {
		return time.Time{}, domain.NewValidationError(field, "must be in YYYY-MM-DD format")
	}
	return date, nil
}
