package domain

import "time"

// Age selector bounds
const (
	MinAge     = 8
	MaxAge     = 100
	DefaultAge = MinAge
)

// Slot generator configuration
const (
	SlotBaseHour          = 12 // First candidate starts at 12:00
	SlotStepMinutes       = 30
	DefaultSlotCandidates = 8
	MinSlotCandidates     = 7
	MaxSlotCandidates     = 8
)

// Time format constants
const (
	DateFormat      = "2006-01-02"               // YYYY-MM-DD
	TimeFormat      = "15:04"                    // HH:MM
	TimestampFormat = "2006-01-02T15:04:05.000Z" // ISO-8601 in UTC, used on the wire
	MonthFormat     = "2006-01"
)

// ClosedWeekdays are never bookable regardless of holidays
var ClosedWeekdays = []time.Weekday{time.Sunday}

// DefaultBlockingCategories disable a calendar day for booking
var DefaultBlockingCategories = []HolidayCategory{CategoryNationalHoliday}

// DefaultObservanceCategories are shown as an informational note only
var DefaultObservanceCategories = []HolidayCategory{CategoryObservance}

// FormatTimestamp renders t as an ISO-8601 UTC timestamp with millisecond precision
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampFormat)
}
