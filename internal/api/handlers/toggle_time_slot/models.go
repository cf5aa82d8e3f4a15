package toggle_time_slot

import (
	"errors"
	"time"
)

// ToggleTimeSlotRequest HTTP request model
type ToggleTimeSlotRequest struct {
	TimeSlot string `json:"timeSlot"` // "2025-11-12T12:30:00.000Z"
}

// ParseTimeSlot парсит начало слота (RFC 3339, дробные секунды допускаются)
func (r *ToggleTimeSlotRequest) ParseTimeSlot() (time.Time, error) {
	if r.TimeSlot == "" {
		return time.Time{}, errors.New("timeSlot is required")
	}
	return time.Parse(time.RFC3339, r.TimeSlot)
}
