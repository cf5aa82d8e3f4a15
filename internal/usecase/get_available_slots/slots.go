package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-WorkoutBooking/internal/domain"
)

// Generator генератор временных слотов на выбранную дату
// Количество кандидатов фиксируется при создании (7 или 8)
type Generator struct {
	candidates int
}

// NewGenerator создает генератор; некорректное количество кандидатов заменяется значением по умолчанию
func NewGenerator(candidates int) *Generator {
	if candidates < domain.MinSlotCandidates || candidates > domain.MaxSlotCandidates {
		candidates = domain.DefaultSlotCandidates
	}
	return &Generator{candidates: candidates}
}

// Candidates количество кандидатов на день
func (g *Generator) Candidates() int {
	return g.candidates
}

// Slots возвращает слоты на дату (см. GenerateSlots)
func (g *Generator) Slots(date time.Time) []domain.TimeSlot {
	return GenerateSlots(date, g.candidates)
}

// GenerateSlots генерирует упорядоченный список слотов на дату
// Кандидаты идут с 12:00 с шагом 30 минут: hour = i/2 + 12, i = 0..candidates-1
// Кандидат исключается, если:
// - hour четное целое число (12:00, 14:00, ...)
// - floor(hour) % 6 совпадает с днем недели даты (воскресенье = 0)
// - floor(hour) % 6 совпадает с месяцем даты (январь = 0)
// Функция чистая: одна и та же дата всегда дает один и тот же результат
func GenerateSlots(date time.Time, candidates int) []domain.TimeSlot {
	slots := make([]domain.TimeSlot, 0, candidates)

	// Дата не выбрана - слотов нет
	if date.IsZero() {
		return slots
	}

	weekday := int(date.Weekday())
	month := int(date.Month()) - 1

	for i := 0; i < candidates; i++ {
		wholeHour := domain.SlotBaseHour + i/2
		isHalfHour := i%2 == 1

		if !isHalfHour && wholeHour%2 == 0 {
			continue
		}
		if wholeHour%6 == weekday || wholeHour%6 == month {
			continue
		}

		minute := 0
		if isHalfHour {
			minute = domain.SlotStepMinutes
		}

		slots = append(slots, domain.NewTimeSlot(date, wholeHour, minute))
	}

	return slots
}
