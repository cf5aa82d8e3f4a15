package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-WorkoutBooking/internal/domain"
)

// HolidayIndex интерфейс индекса праздников
type HolidayIndex interface {
	HolidaysOn(date time.Time) []domain.Holiday
	IsDisabled(date time.Time) bool
	ObservancesOn(date time.Time) []domain.Holiday
	ObservanceMessage(date time.Time) string
}

// SlotSource интерфейс генератора слотов
type SlotSource interface {
	Slots(date time.Time) []domain.TimeSlot
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
