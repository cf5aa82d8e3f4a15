package domain

import "time"

// TimeSlot represents a candidate bookable start time on a selected date
type TimeSlot struct {
	Start time.Time
}

// NewTimeSlot builds a slot on the calendar day of date at hour:minute in the date's location
func NewTimeSlot(date time.Time, hour, minute int) TimeSlot {
	return TimeSlot{
		Start: time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location()),
	}
}

// Equal returns true if both slots start at the same instant
func (s TimeSlot) Equal(other TimeSlot) bool {
	return s.Start.Equal(other.Start)
}

// IsZero returns true for the empty slot
func (s TimeSlot) IsZero() bool {
	return s.Start.IsZero()
}

// Label returns the 24h HH:MM label shown on the slot toggle
func (s TimeSlot) Label() string {
	return s.Start.Format(TimeFormat)
}

// String returns the wire representation of the slot
func (s TimeSlot) String() string {
	return FormatTimestamp(s.Start)
}

// ContainsSlot returns true if slot is one of slots
func ContainsSlot(slots []TimeSlot, slot TimeSlot) bool {
	for _, s := range slots {
		if s.Equal(slot) {
			return true
		}
	}
	return false
}
