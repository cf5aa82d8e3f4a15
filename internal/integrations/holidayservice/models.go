package holidayservice

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-WorkoutBooking/internal/domain"
)

// HolidayResponse модель праздника из Holiday API
type HolidayResponse struct {
	Date string `json:"date"` // "2025-11-11"
	Name string `json:"name"`
	Type string `json:"type"` // Категория праздника, например NATIONAL_HOLIDAY
}

// ToDomain конвертирует ответ API в domain.Holiday
// Дата парсится как календарный день в указанном часовом поясе
func (h HolidayResponse) ToDomain(loc *time.Location) (domain.Holiday, error) {
	date, err := time.ParseInLocation(domain.DateFormat, h.Date, loc)
	if err != nil {
		return domain.Holiday{}, fmt.Errorf("invalid date %q: %v", h.Date, err)
	}

	category, err := domain.ParseHolidayCategory(h.Type)
	if err != nil {
		return domain.Holiday{}, fmt.Errorf("%w: %q", ErrUnknownCategory, h.Type)
	}

	return domain.Holiday{
		Date:     date,
		Name:     h.Name,
		Category: category,
	}, nil
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
