package domain

// Default scheduling values
const (
	DefaultSlotDurationMinutes = 15
	DefaultMinBookableMinutes  = 15 // shortest sellable service
	DefaultStartHour           = 9
	DefaultEndHour             = 21
)

// AllowedSlotDurations grid slot widths in minutes
var AllowedSlotDurations = []int{5, 10, 15, 30, 45, 60}

// IsAllowedSlotDuration returns true if minutes is in AllowedSlotDurations
func IsAllowedSlotDuration(minutes int) bool {
	for _, d := range AllowedSlotDurations {
		if d == minutes {
			return true
		}
	}
	return false
}

// Business validation constants
const (
	MaxNotesLength              = 500
	MaxCancellationReasonLength = 500
	MaxLabelLength              = 100
	MaxAppointmentMinutes       = 12 * 60
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
