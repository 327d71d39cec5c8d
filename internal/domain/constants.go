package domain

// Session duration policy
const (
	OnlineSessionMinutes  = 50
	OfflineSessionMinutes = 80
)

// Capacity policy
const (
	FullDayMaxSlots = 5
	HalfDayMaxSlots = 2
)

// Materialization horizon: the weekly template is expanded into this many
// consecutive dates starting from the reference date
const MaterializationHorizonDays = 7

// Listing limits
const (
	DefaultBookingsListLimit = 50
	ScheduleDaysLimit        = 7
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Weekdays day-of-week names as they appear in weekly templates
// and inventory documents (lowercase English)
var Weekdays = []string{
	"monday",
	"tuesday",
	"wednesday",
	"thursday",
	"friday",
	"saturday",
	"sunday",
}

// IsValidWeekday возвращает true для корректного имени дня недели
func IsValidWeekday(day string) bool {
	for _, d := range Weekdays {
		if d == day {
			return true
		}
	}
	return false
}
