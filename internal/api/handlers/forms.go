package handlers

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-WorkoutBooking/internal/domain"
	"github.com/m04kA/SMC-WorkoutBooking/internal/service/forms"
)

const (
	msgFormNotFound       = "form not found or expired"
	msgFormNotEditable    = "form cannot be changed while it is being sent or after it was sent"
	msgSubmitInProgress   = "your application is being sent"
	msgNotSubmitted       = "application has not been sent yet"
	msgTooManyForms       = "too many active forms, please try again later"
	msgIncomplete         = "please fill in all required fields"
	msgInvalidAge         = "age must be between 8 and 100"
	msgInvalidPhoto       = "please choose an image file"
	msgPhotoTooLarge      = "photo is too large"
	msgDateUnavailable    = "selected date is not available"
	msgDateNotSelected    = "please select a date first"
	msgTimeSlotNotOffered = "selected time slot is not available"
)

// Logger интерфейс для логирования
type Logger interface {
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RespondFormError преобразует ошибку сервиса форм в HTTP ответ
func RespondFormError(w http.ResponseWriter, logger Logger, route, formID string, err error) {
	switch {
	case errors.Is(err, forms.ErrFormNotFound):
		logger.Warn("%s - Form not found: form_id=%s", route, formID)
		RespondNotFound(w, msgFormNotFound)

	case errors.Is(err, forms.ErrSubmitInProgress):
		logger.Warn("%s - Submission in progress: form_id=%s", route, formID)
		RespondConflict(w, msgSubmitInProgress)

	case errors.Is(err, forms.ErrNotEditing), errors.Is(err, forms.ErrNotSubmitting):
		logger.Warn("%s - Form is not editable: form_id=%s, error=%v", route, formID, err)
		RespondConflict(w, msgFormNotEditable)

	case errors.Is(err, forms.ErrNotSubmitted):
		logger.Warn("%s - Form not submitted: form_id=%s", route, formID)
		RespondConflict(w, msgNotSubmitted)

	case errors.Is(err, forms.ErrTooManyForms):
		logger.Warn("%s - Session limit reached", route)
		RespondError(w, http.StatusServiceUnavailable, msgTooManyForms)

	case errors.Is(err, forms.ErrIncomplete):
		logger.Warn("%s - Form incomplete: form_id=%s, error=%v", route, formID, err)
		RespondError(w, http.StatusUnprocessableEntity, msgIncomplete)

	case errors.Is(err, forms.ErrInvalidAge):
		logger.Warn("%s - Invalid age: form_id=%s, error=%v", route, formID, err)
		RespondFieldError(w, http.StatusUnprocessableEntity, domain.FieldAge, msgInvalidAge)

	case errors.Is(err, forms.ErrInvalidPhoto):
		logger.Warn("%s - Invalid photo: form_id=%s, error=%v", route, formID, err)
		RespondFieldError(w, http.StatusUnprocessableEntity, domain.FieldPhoto, msgInvalidPhoto)

	case errors.Is(err, forms.ErrPhotoTooLarge):
		logger.Warn("%s - Photo too large: form_id=%s, error=%v", route, formID, err)
		RespondFieldError(w, http.StatusRequestEntityTooLarge, domain.FieldPhoto, msgPhotoTooLarge)

	case errors.Is(err, forms.ErrDateUnavailable):
		logger.Warn("%s - Date unavailable: form_id=%s, error=%v", route, formID, err)
		RespondFieldError(w, http.StatusUnprocessableEntity, domain.FieldDate, msgDateUnavailable)

	case errors.Is(err, forms.ErrDateNotSelected):
		logger.Warn("%s - Date not selected: form_id=%s", route, formID)
		RespondFieldError(w, http.StatusUnprocessableEntity, domain.FieldTimeSlot, msgDateNotSelected)

	case errors.Is(err, forms.ErrInvalidTimeSlot):
		logger.Warn("%s - Invalid time slot: form_id=%s, error=%v", route, formID, err)
		RespondFieldError(w, http.StatusUnprocessableEntity, domain.FieldTimeSlot, msgTimeSlotNotOffered)

	default:
		logger.Error("%s - Unexpected error: form_id=%s, error=%v", route, formID, err)
		RespondInternalError(w)
	}
}
