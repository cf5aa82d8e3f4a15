package forms

import (
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-WorkoutBooking/internal/domain"
)

// MsgInvalidEmail сообщение под полем email после потери фокуса
const MsgInvalidEmail = "Please enter a valid email address, e.g. " + EmailExample

// Machine конечный автомат формы бронирования
// Работает поверх состояния, которым владеет вызывающий (сессия хранилища)
// Все изменения полей разрешены только в состоянии editing
type Machine struct {
	state *domain.FormState
	days  DayChecker
	slots SlotSource
}

// NewMachine создает автомат над переданным состоянием
// Пустое состояние (nil) инициализируется значениями по умолчанию
func NewMachine(state *domain.FormState, days DayChecker, slots SlotSource) *Machine {
	if state == nil {
		initial := domain.NewFormState()
		state = &initial
	}
	return &Machine{
		state: state,
		days:  days,
		slots: slots,
	}
}

// SetFirstName устанавливает имя
func (m *Machine) SetFirstName(value string) error {
	if err := m.ensureEditing(); err != nil {
		return err
	}
	m.state.FirstName = value
	return nil
}

// SetLastName устанавливает фамилию
func (m *Machine) SetLastName(value string) error {
	if err := m.ensureEditing(); err != nil {
		return err
	}
	m.state.LastName = value
	return nil
}

// InputEmail обрабатывает ввод email
func (m *Machine) InputEmail(value string) error {
	if err := m.ensureEditing(); err != nil {
		return err
	}
	m.state.Email = value
	m.state.EmailValidity = validityWhileTyping(value)
	return nil
}

// BlurEmail обрабатывает потерю фокуса полем email
func (m *Machine) BlurEmail() error {
	if err := m.ensureEditing(); err != nil {
		return err
	}
	m.state.EmailValidity = validityOnBlur(m.state.Email)
	return nil
}

// SetAge устанавливает возраст в диапазоне [8, 100]
func (m *Machine) SetAge(age int) error {
	if err := m.ensureEditing(); err != nil {
		return err
	}
	if age < domain.MinAge || age > domain.MaxAge {
		return fmt.Errorf("%w: %d is outside [%d, %d]", ErrInvalidAge, age, domain.MinAge, domain.MaxAge)
	}
	m.state.Age = age
	return nil
}

// SetPhoto заменяет ранее выбранное фото
func (m *Machine) SetPhoto(photo domain.Photo) error {
	if err := m.ensureEditing(); err != nil {
		return err
	}
	if photo.Size() == 0 {
		return fmt.Errorf("%w: empty file", ErrInvalidPhoto)
	}
	if !photo.IsImage() {
		return fmt.Errorf("%w: content type %q is not an image", ErrInvalidPhoto, photo.ContentType)
	}
	m.state.Photo = &photo
	return nil
}

// ClearPhoto удаляет фото, после чего тот же файл можно выбрать снова
func (m *Machine) ClearPhoto() error {
	if err := m.ensureEditing(); err != nil {
		return err
	}
	m.state.Photo = nil
	return nil
}

// SelectDate выбирает дату (nil снимает выбор)
// Смена даты всегда сбрасывает выбранный слот
func (m *Machine) SelectDate(date *time.Time) error {
	if err := m.ensureEditing(); err != nil {
		return err
	}

	if date == nil {
		m.state.SelectedDate = nil
		m.state.SelectedTimeSlot = nil
		return nil
	}

	day := domain.StartOfDay(*date)
	if m.days.IsDisabled(day) {
		return fmt.Errorf("%w: %s", ErrDateUnavailable, day.Format(domain.DateFormat))
	}

	m.state.SelectedDate = &day
	m.state.SelectedTimeSlot = nil
	return nil
}

// ToggleTimeSlot выбирает слот; повторный выбор того же слота снимает выбор
func (m *Machine) ToggleTimeSlot(slot domain.TimeSlot) error {
	if err := m.ensureEditing(); err != nil {
		return err
	}
	if m.state.SelectedDate == nil {
		return ErrDateNotSelected
	}

	if !domain.ContainsSlot(m.AvailableSlots(), slot) {
		return fmt.Errorf("%w: %s", ErrInvalidTimeSlot, slot.String())
	}

	if m.state.SelectedTimeSlot != nil && m.state.SelectedTimeSlot.Equal(slot) {
		m.state.SelectedTimeSlot = nil
		return nil
	}
	// Слот хранится в часовом поясе выбранной даты
	selected := domain.TimeSlot{Start: slot.Start.In(m.state.SelectedDate.Location())}
	m.state.SelectedTimeSlot = &selected
	return nil
}

// AvailableSlots слоты для выбранной даты (пусто, если дата не выбрана)
func (m *Machine) AvailableSlots() []domain.TimeSlot {
	if m.state.SelectedDate == nil {
		return []domain.TimeSlot{}
	}
	return m.slots.Slots(*m.state.SelectedDate)
}

// ObservanceMessage сообщение о памятных днях на выбранную дату
func (m *Machine) ObservanceMessage() string {
	if m.state.SelectedDate == nil {
		return ""
	}
	return m.days.ObservanceMessage(*m.state.SelectedDate)
}

// FieldErrors ошибки полей, которые показываются пользователю
func (m *Machine) FieldErrors() map[string]string {
	fieldErrors := make(map[string]string)
	if m.state.EmailValidity == domain.EmailInvalid {
		fieldErrors[domain.FieldEmail] = MsgInvalidEmail
	}
	return fieldErrors
}

// CanSubmit форму можно отправить: состояние editing и все обязательные поля заполнены
func (m *Machine) CanSubmit() bool {
	return m.state.IsEditing() && m.state.IsComplete()
}

// BeginSubmit переводит форму editing -> submitting и возвращает заявку для отправки
func (m *Machine) BeginSubmit() (*domain.Application, error) {
	if err := m.ensureEditing(); err != nil {
		return nil, err
	}
	if missing := m.state.MissingFields(); len(missing) > 0 {
		return nil, fmt.Errorf("%w: missing %s", ErrIncomplete, strings.Join(missing, ", "))
	}

	m.state.Status = domain.StatusSubmitting

	return &domain.Application{
		FirstName: m.state.FirstName,
		LastName:  m.state.LastName,
		Email:     m.state.Email,
		Age:       m.state.Age,
		Photo:     *m.state.Photo,
		Date:      *m.state.SelectedDate,
		TimeSlot:  *m.state.SelectedTimeSlot,
	}, nil
}

// CompleteSubmit переводит форму submitting -> submitted
func (m *Machine) CompleteSubmit() error {
	if m.state.Status != domain.StatusSubmitting {
		return ErrNotSubmitting
	}
	m.state.Status = domain.StatusSubmitted
	return nil
}

// FailSubmit возвращает форму submitting -> editing, значения полей сохраняются
func (m *Machine) FailSubmit() error {
	if m.state.Status != domain.StatusSubmitting {
		return ErrNotSubmitting
	}
	m.state.Status = domain.StatusEditing
	return nil
}

// Reset сбрасывает все поля к значениям по умолчанию
func (m *Machine) Reset() error {
	if m.state.Status == domain.StatusSubmitting {
		return ErrSubmitInProgress
	}
	*m.state = domain.NewFormState()
	return nil
}

// Snapshot копия текущего состояния
func (m *Machine) Snapshot() domain.FormState {
	snapshot := *m.state
	if m.state.Photo != nil {
		photo := *m.state.Photo
		snapshot.Photo = &photo
	}
	if m.state.SelectedDate != nil {
		date := *m.state.SelectedDate
		snapshot.SelectedDate = &date
	}
	if m.state.SelectedTimeSlot != nil {
		slot := *m.state.SelectedTimeSlot
		snapshot.SelectedTimeSlot = &slot
	}
	return snapshot
}

func (m *Machine) ensureEditing() error {
	if !m.state.IsEditing() {
		return fmt.Errorf("%w: status is %s", ErrNotEditing, m.state.Status)
	}
	return nil
}
