package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-WorkoutBooking/internal/domain"
	getAvailableSlots "github.com/m04kA/SMC-WorkoutBooking/internal/usecase/get_available_slots"
)

// DayResponse HTTP response model
type DayResponse struct {
	Date              string          `json:"date"`
	Weekday           string          `json:"weekday"`
	Disabled          bool            `json:"disabled"`
	Holidays          []HolidayItem   `json:"holidays"`
	Observances       []string        `json:"observances"`
	ObservanceMessage string          `json:"observanceMessage,omitempty"`
	Slots             []AvailableSlot `json:"slots"`
}

// HolidayItem праздник на дату
type HolidayItem struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// AvailableSlot модель временного слота
type AvailableSlot struct {
	Start string `json:"start"`
	Label string `json:"label"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *DayResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			Start: slot.String(),
			Label: slot.Label(),
		}
	}

	holidays := make([]HolidayItem, len(resp.Holidays))
	for i, h := range resp.Holidays {
		holidays[i] = HolidayItem{Name: h.Name, Category: string(h.Category)}
	}

	observances := make([]string, len(resp.Observances))
	for i, h := range resp.Observances {
		observances[i] = h.Name
	}

	return &DayResponse{
		Date:              resp.Date.Format(domain.DateFormat),
		Weekday:           resp.Date.Weekday().String(),
		Disabled:          resp.Disabled,
		Holidays:          holidays,
		Observances:       observances,
		ObservanceMessage: resp.ObservanceMessage,
		Slots:             slots,
	}
}

// ToUseCaseRequest создает запрос use case из параметра пути
func ToUseCaseRequest(dateStr string, location *time.Location) (*getAvailableSlots.Request, error) {
	date, err := time.ParseInLocation(domain.DateFormat, dateStr, location)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{Date: date}, nil
}
