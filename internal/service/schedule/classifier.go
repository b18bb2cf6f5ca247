package schedule

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-SpaBookingService/internal/domain"
)

const (
	reasonNoShift   = "No shift scheduled or day off"
	displayAbsent   = "Absent"
	displayOffDuty  = "Off duty"
	displayBreak    = "Break"
	displayAvail    = "Available"
	displayContinue = "Continued"
)

// Classifier присваивает статус каждой паре (мастер, слот).
// Одна реализация обслуживает все представления сетки и оба API.
type Classifier struct {
	minBookableMinutes int
}

// NewClassifier создает классификатор. minBookableMinutes - минимальная
// длительность услуги, которую можно продать до конца смены.
func NewClassifier(minBookableMinutes int) *Classifier {
	if minBookableMinutes <= 0 {
		minBookableMinutes = domain.DefaultMinBookableMinutes
	}
	return &Classifier{minBookableMinutes: minBookableMinutes}
}

// Classify определяет статус ячейки. Порядок правил строгий, первое совпадение побеждает:
// нет смены -> вне смены -> перерыв -> запись -> свободно.
// appointments могут содержать записи других мастеров, они игнорируются.
func (c *Classifier) Classify(staff domain.StaffMember, shift *domain.ResolvedShift, slot domain.TimeSlot, appointments []*domain.Appointment) domain.AvailabilityCell {
	cell := domain.AvailabilityCell{
		StaffID:   staff.ID,
		StaffName: staff.Name,
		Slot:      slot,
	}

	// 1. Нет смены на дату
	if shift == nil {
		cell.Status = domain.CellNotAvailable
		cell.DisplayText = displayAbsent
		cell.Reason = reasonNoShift
		return cell
	}

	cell.ShiftWindow = shift.ShiftWindow()
	cell.BreakWindow = shift.BreakWindow()

	shiftStart := shift.ShiftStart.On(slot.Start)
	shiftEnd := shift.ShiftEnd.On(slot.Start)

	// 2. Слот вне [shift_start, shift_end)
	if slot.Start.Before(shiftStart) || !slot.Start.Before(shiftEnd) {
		cell.Status = domain.CellOffDuty
		cell.DisplayText = displayOffDuty
		cell.Reason = fmt.Sprintf("Outside shift hours (%s)", cell.ShiftWindow)
		return cell
	}

	// 3. Перерыв проверяется раньше записей
	if shift.HasBreak() {
		breakStart := shift.BreakStart.On(slot.Start)
		breakEnd := shift.BreakEnd.On(slot.Start)
		if !slot.Start.Before(breakStart) && slot.Start.Before(breakEnd) {
			cell.Status = domain.CellBreak
			cell.DisplayText = displayBreak
			cell.Reason = fmt.Sprintf("Break (%s)", cell.BreakWindow)
			return cell
		}
	}

	// 4. Слот занят неотмененной записью
	if blocking := c.blockingAppointment(staff.ID, slot, appointments); blocking != nil {
		cell.Blocking = blocking
		if slot.Contains(blocking.StartTime) {
			cell.Status = domain.CellBooked
			cell.DisplayText = bookedText(blocking)
			cell.Reason = fmt.Sprintf("Booked %s-%s (%d min)",
				blocking.StartTime.Format(domain.TimeFormat),
				blocking.EndTime.Format(domain.TimeFormat),
				blocking.DurationMinutes())
		} else {
			cell.Status = domain.CellBookedContinuation
			cell.DisplayText = displayContinue
			cell.Reason = fmt.Sprintf("Continuation of appointment %d", blocking.ID)
		}
		return cell
	}

	// 5. Свободно
	remaining := int(shiftEnd.Sub(slot.Start) / time.Minute)
	cell.Status = domain.CellAvailable
	cell.DisplayText = displayAvail
	cell.RemainingMinutes = &remaining
	cell.CanBook = remaining >= c.minBookableMinutes
	if !cell.CanBook {
		cell.Reason = fmt.Sprintf("Only %d min left before shift end", remaining)
	}
	return cell
}

// blockingAppointment возвращает запись мастера, начинающуюся в слоте.
// Если такой нет, возвращает самую раннюю пересекающуюся (продолжение).
func (c *Classifier) blockingAppointment(staffID int64, slot domain.TimeSlot, appointments []*domain.Appointment) *domain.Appointment {
	conflicts := FindConflicts(appointments, staffID, slot.Start, slot.End(), nil)
	if len(conflicts) == 0 {
		return nil
	}
	for _, a := range conflicts {
		if slot.Contains(a.StartTime) {
			return a
		}
	}
	return conflicts[0]
}

// GridInput данные для построения сетки на одну дату
type GridInput struct {
	Date                time.Time
	View                domain.GridView
	StartHour           int
	EndHour             int
	SlotDurationMinutes int
	Staff               []domain.StaffMember
	Shifts              map[int64]*domain.ResolvedShift // staffID -> смена; отсутствие ключа = выходной
	Appointments        []*domain.Appointment
}

// BuildGrid строит классифицированную сетку: мастера в порядке ростера,
// внутри мастера слоты по возрастанию. Одинаковый вход дает одинаковый результат.
func (c *Classifier) BuildGrid(in GridInput) (*domain.AvailabilityGrid, error) {
	duration := NormalizeSlotDuration(in.SlotDurationMinutes)

	slots, err := GenerateSlots(in.Date, in.StartHour, in.EndHour, duration)
	if err != nil {
		return nil, err
	}

	byStaff := make(map[int64][]*domain.Appointment, len(in.Staff))
	for _, a := range in.Appointments {
		if a == nil || !a.BlocksTime() {
			continue
		}
		byStaff[a.StaffID] = append(byStaff[a.StaffID], a)
	}

	y, m, d := in.Date.Date()
	grid := &domain.AvailabilityGrid{
		Date:                time.Date(y, m, d, 0, 0, 0, 0, in.Date.Location()),
		View:                in.View,
		StartHour:           in.StartHour,
		EndHour:             in.EndHour,
		SlotDurationMinutes: duration,
		Staff:               in.Staff,
		Slots:               slots,
		Cells:               make([]domain.AvailabilityCell, 0, len(in.Staff)*len(slots)),
	}

	for _, member := range in.Staff {
		shift := in.Shifts[member.ID]
		staffAppointments := byStaff[member.ID]
		for _, slot := range slots {
			grid.Cells = append(grid.Cells, c.Classify(member, shift, slot, staffAppointments))
		}
	}

	return grid, nil
}

// CellAt возвращает ячейку мастера, слот которой начинается в момент start
func CellAt(grid *domain.AvailabilityGrid, staffID int64, start time.Time) (domain.AvailabilityCell, bool) {
	for _, cell := range grid.Cells {
		if cell.StaffID == staffID && cell.Slot.Start.Equal(start) {
			return cell, true
		}
	}
	return domain.AvailabilityCell{}, false
}

func bookedText(a *domain.Appointment) string {
	switch {
	case a.ClientName != "" && a.ServiceName != "":
		return fmt.Sprintf("%s - %s", a.ClientName, a.ServiceName)
	case a.ClientName != "":
		return a.ClientName
	default:
		return fmt.Sprintf("Appointment #%d", a.ID)
	}
}
