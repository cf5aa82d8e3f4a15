package calendar

import (
	"bytes"
	"fmt"
	"time"

	"github.com/emersion/go-ical"

	"github.com/m04kA/SMC-WorkoutBooking/internal/domain"
)

const (
	productID  = "-//SMC//Workout Booking//EN"
	uidDomain  = "workout-booking"
	summary    = "Workout"
	icsVersion = "2.0"
)

// ContentType MIME тип файла календаря
const ContentType = "text/calendar; charset=utf-8"

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Exporter строит файл календаря для принятой заявки
type Exporter struct {
	duration time.Duration
	clock    TimeProvider
}

// NewExporter создает экспортер с длительностью тренировки duration
func NewExporter(duration time.Duration, clock TimeProvider) *Exporter {
	if clock == nil {
		clock = &RealTimeProvider{}
	}
	return &Exporter{duration: duration, clock: clock}
}

// Export возвращает VCALENDAR с одним событием
func (e *Exporter) Export(app *domain.Application) ([]byte, error) {
	return BuildBookingICS(app, e.duration, e.clock.Now())
}

// BuildBookingICS строит VCALENDAR с событием тренировки в выбранный слот
// Время события записывается в UTC
func BuildBookingICS(app *domain.Application, duration time.Duration, now time.Time) ([]byte, error) {
	if app == nil || app.TimeSlot.IsZero() {
		return nil, ErrInvalidApplication
	}
	if duration <= 0 {
		duration = time.Duration(domain.SlotStepMinutes) * time.Minute
	}

	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, icsVersion)
	cal.Props.SetText(ical.PropProductID, productID)

	start := app.TimeSlot.Start.UTC()

	event := ical.NewEvent()
	event.Props.SetText(ical.PropUID, fmt.Sprintf("%s@%s", app.FormID, uidDomain))
	event.Props.SetDateTime(ical.PropDateTimeStamp, now.UTC())
	event.Props.SetDateTime(ical.PropDateTimeStart, start)
	event.Props.SetDateTime(ical.PropDateTimeEnd, start.Add(duration))
	event.Props.SetText(ical.PropSummary, summary)
	event.Props.SetText(ical.PropDescription, fmt.Sprintf("Participant: %s <%s>, age %d", app.FullName(), app.Email, app.Age))

	cal.Children = append(cal.Children, event.Component)

	var buf bytes.Buffer
	if err := ical.NewEncoder(&buf).Encode(cal); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return buf.Bytes(), nil
}
