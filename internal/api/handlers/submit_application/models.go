package submit_application

import "github.com/m04kA/SMC-WorkoutBooking/internal/service/forms/models"

// SubmitFailedResponse ответ при неудачной отправке: сообщение и форма с сохраненными значениями
type SubmitFailedResponse struct {
	Error string               `json:"error"`
	Form  *models.FormResponse `json:"form"`
}
