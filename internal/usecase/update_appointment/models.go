package update_appointment

import (
	"time"

	"github.com/m04kA/SMC-SpaBookingService/pkg/types"
)

// Request модель запроса на изменение записи. nil поля не меняются.
type Request struct {
	AppointmentID   int64
	StaffID         *int64
	ClientID        *int64
	ServiceID       *int64
	Date            *time.Time
	StartTime       *types.TimeString
	DurationMinutes *int // переопределяет длительность услуги
	Notes           *string
	Amount          *float64
	PaymentStatus   *string
}

