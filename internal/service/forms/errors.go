package forms

import "errors"

var (
	// ErrNotEditing возвращается при попытке изменить форму вне состояния editing
	ErrNotEditing = errors.New("forms: form is not editable")

	// ErrNotSubmitting возвращается при завершении отправки, которая не начиналась
	ErrNotSubmitting = errors.New("forms: form is not being submitted")

	// ErrSubmitInProgress возвращается при сбросе формы во время отправки
	ErrSubmitInProgress = errors.New("forms: submission in progress")

	// ErrNotSubmitted возвращается, когда заявка формы еще не принята
	ErrNotSubmitted = errors.New("forms: form is not submitted")

	// ErrIncomplete возвращается, когда не заполнены обязательные поля
	ErrIncomplete = errors.New("forms: form is incomplete")

	// ErrInvalidAge возвращается для возраста вне диапазона [8, 100]
	ErrInvalidAge = errors.New("forms: invalid age")

	// ErrInvalidPhoto возвращается для пустого файла или файла не изображения
	ErrInvalidPhoto = errors.New("forms: invalid photo")

	// ErrPhotoTooLarge возвращается, когда фото больше допустимого размера
	ErrPhotoTooLarge = errors.New("forms: photo too large")

	// ErrDateUnavailable возвращается при выборе недоступного дня
	ErrDateUnavailable = errors.New("forms: date is unavailable")

	// ErrDateNotSelected возвращается при выборе слота без выбранной даты
	ErrDateNotSelected = errors.New("forms: date is not selected")

	// ErrInvalidTimeSlot возвращается, когда слот не входит в слоты выбранной даты
	ErrInvalidTimeSlot = errors.New("forms: invalid time slot")

	// ErrFormNotFound возвращается, когда сессия формы не найдена или истекла
	ErrFormNotFound = errors.New("forms: form not found")

	// ErrTooManyForms возвращается при превышении лимита активных сессий
	ErrTooManyForms = errors.New("forms: too many active forms")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("forms: internal error")
)
