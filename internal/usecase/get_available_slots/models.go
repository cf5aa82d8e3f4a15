package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-WorkoutBooking/internal/domain"
)

// Request модель запроса на получение информации о дне
type Request struct {
	Date time.Time // Дата (без времени) в часовом поясе бронирования
}

// Response модель ответа с информацией о дне и доступными слотами
type Response struct {
	Date              time.Time         // Дата, на которую запрашивались слоты
	Disabled          bool              // День нельзя выбрать (воскресенье или блокирующий праздник)
	Holidays          []domain.Holiday  // Все праздники на дату
	Observances       []domain.Holiday  // Памятные дни (не блокируют)
	ObservanceMessage string            // "It is ..." или пустая строка
	Slots             []domain.TimeSlot // Доступные слоты (пусто для недоступного дня)
}

// MonthRequest модель запроса на получение календаря месяца
type MonthRequest struct {
	Year  int
	Month time.Month
}

// MonthResponse модель ответа с календарем месяца
type MonthResponse struct {
	Year  int
	Month time.Month
	Days  []Day
}

// Day модель дня в календаре
type Day struct {
	Date        time.Time
	Disabled    bool
	Observances []string // Названия памятных дней
}
