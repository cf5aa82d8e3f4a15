package holidays

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-WorkoutBooking/internal/domain"
)

// observancePrefix префикс информационного сообщения о памятных днях
const observancePrefix = "It is "

// Options настройки индекса праздников
type Options struct {
	BlockingCategories   []domain.HolidayCategory // Категории, блокирующие день для бронирования
	ObservanceCategories []domain.HolidayCategory // Информационные категории
	ClosedWeekdays       []time.Weekday           // Дни недели, закрытые всегда
}

// DefaultOptions возвращает настройки по умолчанию:
// NATIONAL_HOLIDAY блокирует день, OBSERVANCE - информационная, воскресенье закрыто
func DefaultOptions() Options {
	return Options{
		BlockingCategories:   domain.DefaultBlockingCategories,
		ObservanceCategories: domain.DefaultObservanceCategories,
		ClosedWeekdays:       domain.ClosedWeekdays,
	}
}

// Index неизменяемый индекс праздников по календарным дням
// После создания только читается, поэтому безопасен для конкурентного использования
type Index struct {
	byDay       map[string][]domain.Holiday
	blocking    map[domain.HolidayCategory]struct{}
	observances map[domain.HolidayCategory]struct{}
	closed      map[time.Weekday]struct{}
	total       int
}

// NewIndex строит индекс из списка праздников
func NewIndex(holidays []domain.Holiday, opts Options) *Index {
	idx := &Index{
		byDay:       make(map[string][]domain.Holiday),
		blocking:    toCategorySet(opts.BlockingCategories),
		observances: toCategorySet(opts.ObservanceCategories),
		closed:      make(map[time.Weekday]struct{}, len(opts.ClosedWeekdays)),
		total:       len(holidays),
	}

	for _, wd := range opts.ClosedWeekdays {
		idx.closed[wd] = struct{}{}
	}

	for _, h := range holidays {
		key := h.DateKey()
		idx.byDay[key] = append(idx.byDay[key], h)
	}

	return idx
}

// Len количество праздников в индексе
func (i *Index) Len() int {
	return i.total
}

// HolidaysOn возвращает все праздники на календарный день date (в порядке провайдера)
func (i *Index) HolidaysOn(date time.Time) []domain.Holiday {
	found := i.byDay[domain.DateKey(date)]
	result := make([]domain.Holiday, len(found))
	copy(result, found)
	return result
}

// IsBlocked возвращает true, если на день приходится праздник блокирующей категории
func (i *Index) IsBlocked(date time.Time) bool {
	for _, h := range i.byDay[domain.DateKey(date)] {
		if _, ok := i.blocking[h.Category]; ok {
			return true
		}
	}
	return false
}

// ObservancesOn возвращает памятные дни на дату; они не блокируют бронирование
func (i *Index) ObservancesOn(date time.Time) []domain.Holiday {
	result := make([]domain.Holiday, 0)
	for _, h := range i.byDay[domain.DateKey(date)] {
		if _, ok := i.observances[h.Category]; ok {
			result = append(result, h)
		}
	}
	return result
}

// IsClosedWeekday возвращает true для дней недели, закрытых всегда
func (i *Index) IsClosedWeekday(date time.Time) bool {
	_, ok := i.closed[date.Weekday()]
	return ok
}

// IsDisabled возвращает true, если день нельзя выбрать в календаре
func (i *Index) IsDisabled(date time.Time) bool {
	return i.IsClosedWeekday(date) || i.IsBlocked(date)
}

// ObservanceMessage формирует сообщение "It is <название>, <название>" или пустую строку
func (i *Index) ObservanceMessage(date time.Time) string {
	observances := i.ObservancesOn(date)
	if len(observances) == 0 {
		return ""
	}
	return observancePrefix + strings.Join(HolidayNames(observances), ", ")
}

// HolidayNames возвращает названия праздников
func HolidayNames(holidays []domain.Holiday) []string {
	names := make([]string, len(holidays))
	for i, h := range holidays {
		names[i] = h.Name
	}
	return names
}

func toCategorySet(categories []domain.HolidayCategory) map[domain.HolidayCategory]struct{} {
	set := make(map[domain.HolidayCategory]struct{}, len(categories))
	for _, c := range categories {
		set[c] = struct{}{}
	}
	return set
}
