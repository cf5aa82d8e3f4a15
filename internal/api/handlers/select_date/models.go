package select_date

import (
	"time"

	"github.com/m04kA/SMC-WorkoutBooking/internal/domain"
)

// SelectDateRequest HTTP request model
// null снимает выбор даты
type SelectDateRequest struct {
	Date *string `json:"date"` // "2025-11-12"
}

// ParseDate парсит дату в часовом поясе бронирования
func (r *SelectDateRequest) ParseDate(location *time.Location) (*time.Time, error) {
	if r.Date == nil || *r.Date == "" {
		return nil, nil
	}
	date, err := time.ParseInLocation(domain.DateFormat, *r.Date, location)
	if err != nil {
		return nil, err
	}
	return &date, nil
}
