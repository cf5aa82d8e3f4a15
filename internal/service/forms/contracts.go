package forms

import (
	"context"
	"time"

	"github.com/m04kA/SMC-WorkoutBooking/internal/domain"
)

// DayChecker интерфейс проверки доступности дня
type DayChecker interface {
	IsDisabled(date time.Time) bool
	ObservanceMessage(date time.Time) string
}

// SlotSource интерфейс генератора слотов
type SlotSource interface {
	Slots(date time.Time) []domain.TimeSlot
}

// SessionStore интерфейс хранилища сессий форм
type SessionStore interface {
	Create(ctx context.Context) (string, error)
	WithSession(ctx context.Context, id string, fn func(state *domain.FormState) error) error
	Len() int
}

// SessionRecorder интерфейс для метрики активных сессий
type SessionRecorder interface {
	SetActiveSessions(n int)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
