package get_available_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-WorkoutBooking/internal/domain"
	"github.com/m04kA/SMC-WorkoutBooking/internal/service/holidays"
)

// UseCase use case для получения информации о дне и доступных слотов
type UseCase struct {
	index    HolidayIndex
	slots    SlotSource
	location *time.Location
	logger   Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(index HolidayIndex, slots SlotSource, location *time.Location, logger Logger) *UseCase {
	if location == nil {
		location = time.UTC
	}
	return &UseCase{
		index:    index,
		slots:    slots,
		location: location,
		logger:   logger,
	}
}

// Execute возвращает информацию о дне: доступность, памятные дни и слоты
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req == nil || req.Date.IsZero() {
		uc.logger.Warn("GetAvailableSlots: date is required")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	date := uc.normalize(req.Date)
	uc.logger.Info("GetAvailableSlots: date=%s", date.Format(domain.DateFormat))

	// 2. Праздники и доступность дня
	response := &Response{
		Date:              date,
		Disabled:          uc.index.IsDisabled(date),
		Holidays:          uc.index.HolidaysOn(date),
		Observances:       uc.index.ObservancesOn(date),
		ObservanceMessage: uc.index.ObservanceMessage(date),
		Slots:             []domain.TimeSlot{},
	}

	// 3. Недоступный день выбрать нельзя, поэтому слоты для него не генерируются
	if response.Disabled {
		uc.logger.Info("GetAvailableSlots: date=%s is disabled", date.Format(domain.DateFormat))
		return response, nil
	}

	// 4. Генерируем слоты
	response.Slots = uc.slots.Slots(date)

	uc.logger.Info("GetAvailableSlots: generated %d slots for date=%s", len(response.Slots), date.Format(domain.DateFormat))
	return response, nil
}

// ExecuteMonth возвращает календарь месяца с недоступными днями и памятными датами
func (uc *UseCase) ExecuteMonth(ctx context.Context, req *MonthRequest) (*MonthResponse, error) {
	if req == nil || req.Month < time.January || req.Month > time.December || req.Year < 1 {
		uc.logger.Warn("GetAvailableSlots: invalid month request")
		return nil, ErrInvalidMonth
	}

	first := time.Date(req.Year, req.Month, 1, 0, 0, 0, 0, uc.location)
	days := make([]Day, 0, 31)

	for d := first; d.Month() == req.Month; d = d.AddDate(0, 0, 1) {
		days = append(days, Day{
			Date:        d,
			Disabled:    uc.index.IsDisabled(d),
			Observances: holidays.HolidayNames(uc.index.ObservancesOn(d)),
		})
	}

	uc.logger.Info("GetAvailableSlots: month=%s, days=%d", first.Format(domain.MonthFormat), len(days))
	return &MonthResponse{
		Year:  req.Year,
		Month: req.Month,
		Days:  days,
	}, nil
}

// normalize переводит дату в полночь часового пояса бронирования, сохраняя календарный день
func (uc *UseCase) normalize(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, uc.location)
}
