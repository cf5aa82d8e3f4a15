package update_form

import "github.com/m04kA/SMC-WorkoutBooking/internal/service/forms/models"

// UpdateFormRequest HTTP request model
// Отсутствующие поля не изменяются
type UpdateFormRequest struct {
	FirstName      *string `json:"firstName,omitempty"`
	LastName       *string `json:"lastName,omitempty"`
	Email          *string `json:"email,omitempty"`
	EmailFocusLost bool    `json:"emailFocusLost,omitempty"` // поле email потеряло фокус
	Age            *int    `json:"age,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdateFormRequest) ToServiceRequest() *models.UpdatePersonalInfoRequest {
	return &models.UpdatePersonalInfoRequest{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		EmailFocusLost: r.EmailFocusLost,
		Age:            r.Age,
	}
}
