package submit_application

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("submit_application: invalid input")

	// ErrSubmissionFailed возвращается, когда сервис заявок не принял заявку
	ErrSubmissionFailed = errors.New("submit_application: submission failed")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("submit_application: internal error")
)
