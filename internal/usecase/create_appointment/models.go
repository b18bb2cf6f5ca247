package create_appointment

import (
	"time"

	"github.com/m04kA/SMC-SpaBookingService/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	StaffID         int64
	ClientID        int64
	ServiceID       int64
	Date            time.Time        // календарная дата в часовом поясе салона
	StartTime       types.TimeString // "10:00"
	DurationMinutes *int             // переопределяет длительность услуги
	Notes           *string
	Source          string   // manual, walk_in, phone, online, quick_book; пусто - manual
	Amount          *float64 // по умолчанию цена услуги
	CreatedBy       *int64   // оператор из X-User-ID
}
