package models

import (
	"github.com/m04kA/SMC-WorkoutBooking/internal/domain"
)

// FormResponse представление формы для клиента
type FormResponse struct {
	ID                string            `json:"id"`
	FirstName         string            `json:"firstName"`
	LastName          string            `json:"lastName"`
	Email             string            `json:"email"`
	EmailValidity     string            `json:"emailValidity"`
	Age               int               `json:"age"`
	AgeRange          AgeRange          `json:"ageRange"`
	Photo             *PhotoResponse    `json:"photo"`
	Date              *string           `json:"date"`
	TimeSlot          *string           `json:"timeSlot"`
	AvailableSlots    []SlotResponse    `json:"availableSlots"`
	ObservanceMessage string            `json:"observanceMessage,omitempty"`
	Status            string            `json:"status"`
	CanSubmit         bool              `json:"canSubmit"`
	MissingFields     []string          `json:"missingFields"`
	FieldErrors       map[string]string `json:"fieldErrors,omitempty"`
}

// AgeRange границы селектора возраста
type AgeRange struct {
	Min  int `json:"min"`
	Max  int `json:"max"`
	Step int `json:"step"`
}

// PhotoResponse метаданные загруженного фото (без содержимого)
type PhotoResponse struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Size        int    `json:"size"`
}

// SlotResponse временной слот для переключателя
type SlotResponse struct {
	Start    string `json:"start"` // 2006-01-02T15:04:05.000Z
	Label    string `json:"label"` // HH:MM
	Selected bool   `json:"selected"`
}

// UpdatePersonalInfoRequest частичное обновление личных данных
// Поля применяются в порядке: имя, фамилия, email (ввод), потеря фокуса email, возраст
type UpdatePersonalInfoRequest struct {
	FirstName      *string
	LastName       *string
	Email          *string
	EmailFocusLost bool
	Age            *int
}

// FormView данные для построения ответа
type FormView struct {
	ID                string
	State             domain.FormState
	Slots             []domain.TimeSlot
	ObservanceMessage string
	FieldErrors       map[string]string
	CanSubmit         bool
}

// FromDomainForm конвертирует состояние формы в ответ
func FromDomainForm(view FormView) *FormResponse {
	state := view.State

	response := &FormResponse{
		ID:            view.ID,
		FirstName:     state.FirstName,
		LastName:      state.LastName,
		Email:         state.Email,
		EmailValidity: string(state.EmailValidity),
		Age:           state.Age,
		AgeRange: AgeRange{
			Min:  domain.MinAge,
			Max:  domain.MaxAge,
			Step: 1,
		},
		AvailableSlots:    make([]SlotResponse, 0, len(view.Slots)),
		ObservanceMessage: view.ObservanceMessage,
		Status:            string(state.Status),
		CanSubmit:         view.CanSubmit,
		MissingFields:     state.MissingFields(),
	}

	if len(view.FieldErrors) > 0 {
		response.FieldErrors = view.FieldErrors
	}

	if state.Photo != nil {
		response.Photo = &PhotoResponse{
			Filename:    state.Photo.Filename,
			ContentType: state.Photo.ContentType,
			Size:        state.Photo.Size(),
		}
	}

	if state.SelectedDate != nil {
		date := state.SelectedDate.Format(domain.DateFormat)
		response.Date = &date
	}

	if state.SelectedTimeSlot != nil {
		slot := state.SelectedTimeSlot.String()
		response.TimeSlot = &slot
	}

	for _, slot := range view.Slots {
		response.AvailableSlots = append(response.AvailableSlots, SlotResponse{
			Start:    slot.String(),
			Label:    slot.Label(),
			Selected: state.SelectedTimeSlot != nil && state.SelectedTimeSlot.Equal(slot),
		})
	}

	return response
}
