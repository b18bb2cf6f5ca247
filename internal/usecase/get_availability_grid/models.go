package get_availability_grid

import (
	"time"

	"github.com/m04kA/SMC-SpaBookingService/internal/domain"
)

// Request модель запроса сетки доступности.
// Незаданные часы и шаг берутся из пресета представления.
type Request struct {
	Date                time.Time // календарная дата
	StaffID             *int64    // nil - все активные мастера
	View                string    // calendar, staff, timeline; пусто - calendar
	StartHour           *int
	EndHour             *int
	SlotDurationMinutes *int // не из списка допустимых - нормализуется к 15
}

// Response модель ответа с сеткой
type Response struct {
	Grid      *domain.AvailabilityGrid
	FromCache bool
}
