package submit_application

import "github.com/m04kA/SMC-WorkoutBooking/internal/service/forms/models"

// MsgSubmissionFailed сообщение пользователю при неудачной отправке
const MsgSubmissionFailed = "Something went wrong while sending your application. Please try again."

// Request модель запроса на отправку заявки
type Request struct {
	FormID string
}

// Response модель ответа
// При ErrSubmissionFailed содержит форму, вернувшуюся в editing с сохраненными значениями
type Response struct {
	Form *models.FormResponse
}
