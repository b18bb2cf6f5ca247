package quick_book

import (
	"time"

	"github.com/m04kA/SMC-SpaBookingService/pkg/types"
)

// Request модель запроса быстрой записи.
// Без StaffID мастер подбирается автоматически.
type Request struct {
	ClientID  int64
	ServiceID int64
	Date      time.Time
	StartTime types.TimeString
	StaffID   *int64
	Notes     *string
	CreatedBy *int64
}
