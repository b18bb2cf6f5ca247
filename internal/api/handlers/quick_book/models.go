package quick_book

import (
	"github.com/m04kA/SMC-SpaBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SpaBookingService/internal/usecase/quick_book"
	"github.com/m04kA/SMC-SpaBookingService/pkg/types"
)

// QuickBookRequest HTTP request model. Без staffId мастер подбирается автоматически.
type QuickBookRequest struct {
	ClientID  int64   `json:"clientId"`
	ServiceID int64   `json:"serviceId"`
	Date      string  `json:"date"`
	StartTime string  `json:"startTime"`
	StaffID   *int64  `json:"staffId,omitempty"`
	Notes     *string `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP request в запрос usecase
func (r *QuickBookRequest) ToUseCaseRequest(createdBy *int64) (*quick_book.Request, error) {
	date, err := handlers.ParseDateField("date", r.Date)
	if err != nil {
		return nil, err
	}

	return &quick_book.Request{
		ClientID:  r.ClientID,
		ServiceID: r.ServiceID,
		Date:      date,
		StartTime: types.TimeString(r.StartTime),
		StaffID:   r.StaffID,
		Notes:     r.Notes,
		CreatedBy: createdBy,
	}, nil
}
