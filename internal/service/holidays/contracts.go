package holidays

import (
	"context"

	"github.com/m04kA/SMC-WorkoutBooking/internal/domain"
)

// HolidayProvider интерфейс клиента Holiday API
type HolidayProvider interface {
	GetHolidays(ctx context.Context, country string) ([]domain.Holiday, error)
}

// FetchRecorder интерфейс для учета результатов загрузки в метриках
type FetchRecorder interface {
	ObserveHolidayFetch(outcome string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
