package get_availability_grid

import (
	"net/http"
	"time"

	"github.com/m04kA/SMC-SpaBookingService/internal/api/handlers"
	"github.com/m04kA/SMC-SpaBookingService/internal/domain"
	"github.com/m04kA/SMC-SpaBookingService/internal/usecase/get_availability_grid"
)

// ToUseCaseRequest формирует запрос к usecase из query параметров
func ToUseCaseRequest(r *http.Request) (*get_availability_grid.Request, error) {
	q := r.URL.Query()

	date, err := handlers.ParseDateField("date", q.Get("date"))
	if err != nil {
		return nil, err
	}

	req := &get_availability_grid.Request{
		Date: date,
		View: q.Get("view"),
	}

	if req.StaffID, err = handlers.QueryInt64(r, "staffId"); err != nil {
		return nil, domain.NewValidationError("staffId", "must be an integer")
	}
	if req.StartHour, err = handlers.QueryInt(r, "startHour"); err != nil {
		return nil, domain.NewValidationError("startHour", "must be an integer")
	}
	if req.EndHour, err = handlers.QueryInt(r, "endHour"); err != nil {
		return nil, domain.NewValidationError("endHour", "must be an integer")
	}
	if req.SlotDurationMinutes, err = handlers.QueryInt(r, "slotDuration"); err != nil {
		return nil, domain.NewValidationError("slotDuration", "must be an integer")
	}

	return req, nil
}

// StaffResponse мастер в сетке
type StaffResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// CellResponse ячейка сетки (мастер, слот)
type CellResponse struct {
	StaffID               int64                     `json:"staffId"`
	SlotStart             time.Time                 `json:"slotStart"`
	SlotTime              string                    `json:"slotTime"`
	Status                string                    `json:"status"`
	DisplayText           string                    `json:"displayText"`
	Reason                string                    `json:"reason,omitempty"`
	CanBook               bool                      `json:"canBook"`
	RemainingMinutes      *int                      `json:"remainingMinutes,omitempty"`
	ShiftWindow           string                    `json:"shiftWindow,omitempty"`
	BreakWindow           string                    `json:"breakWindow,omitempty"`
	BlockingAppointmentID *int64                    `json:"blockingAppointmentId,omitempty"`
	BlockingAppointment   *handlers.BlockingSummary `json:"blockingAppointment,omitempty"`
}

// GridResponse HTTP представление сетки доступности
type GridResponse struct {
	Date                string          `json:"date"`
	View                string          `json:"view"`
	StartHour           int             `json:"startHour"`
	EndHour             int             `json:"endHour"`
	SlotDurationMinutes int             `json:"slotDurationMinutes"`
	Staff               []StaffResponse `json:"staff"`
	Slots               []string        `json:"slots"`
	Cells               []CellResponse  `json:"cells"`
}

// FromUseCaseResponse конвертирует ответ usecase в HTTP ответ
func FromUseCaseResponse(resp *get_availability_grid.Response) *GridResponse {
	grid := resp.Grid

	out := &GridResponse{
		Date:                domain.DateKey(grid.Date),
		View:                string(grid.View),
		StartHour:           grid.StartHour,
		EndHour:             grid.EndHour,
		SlotDurationMinutes: grid.SlotDurationMinutes,
		Staff:               make([]StaffResponse, 0, len(grid.Staff)),
		Slots:               make([]string, 0, len(grid.Slots)),
		Cells:               make([]CellResponse, 0, len(grid.Cells)),
	}

	for _, s := range grid.Staff {
		out.Staff = append(out.Staff, StaffResponse{ID: s.ID, Name: s.Name})
	}
	for _, slot := range grid.Slots {
		out.Slots = append(out.Slots, slot.Start.Format(domain.TimeFormat))
	}
	for _, c := range grid.Cells {
		cell := CellResponse{
			StaffID:          c.StaffID,
			SlotStart:        c.Slot.Start,
			SlotTime:         c.Slot.Start.Format(domain.TimeFormat),
			Status:           string(c.Status),
			DisplayText:      c.DisplayText,
			Reason:           c.Reason,
			CanBook:          c.CanBook,
			RemainingMinutes: c.RemainingMinutes,
			ShiftWindow:      c.ShiftWindow,
			BreakWindow:      c.BreakWindow,
		}
		if c.Blocking != nil {
			id := c.Blocking.ID
			cell.BlockingAppointmentID = &id
			cell.BlockingAppointment = &handlers.BlockingSummary{
				ID:          c.Blocking.ID,
				ClientName:  c.Blocking.ClientName,
				ServiceName: c.Blocking.ServiceName,
				Start:       c.Blocking.StartTime,
				End:         c.Blocking.EndTime,
			}
		}
		out.Cells = append(out.Cells, cell)
	}

	return out
}
