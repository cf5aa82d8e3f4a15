package get_month_calendar

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-WorkoutBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-WorkoutBooking/internal/usecase/get_available_slots"
)

// MonthResponse HTTP response model
type MonthResponse struct {
	Month string     `json:"month"` // 2006-01
	Days  []DayEntry `json:"days"`
}

// DayEntry день в календаре выбора даты
type DayEntry struct {
	Date        string   `json:"date"`
	Disabled    bool     `json:"disabled"`
	Observances []string `json:"observances"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.MonthResponse) *MonthResponse {
	days := make([]DayEntry, len(resp.Days))
	for i, d := range resp.Days {
		days[i] = DayEntry{
			Date:        d.Date.Format(domain.DateFormat),
			Disabled:    d.Disabled,
			Observances: d.Observances,
		}
	}

	return &MonthResponse{
		Month: fmt.Sprintf("%04d-%02d", resp.Year, int(resp.Month)),
		Days:  days,
	}
}

// ToUseCaseRequest создает запрос use case из параметров пути
func ToUseCaseRequest(year, month int) *getAvailableSlots.MonthRequest {
	return &getAvailableSlots.MonthRequest{
		Year:  year,
		Month: time.Month(month),
	}
}
