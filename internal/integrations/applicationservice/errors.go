package applicationservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента (в том числе транспортных)
	ErrInternal = errors.New("applicationservice client: internal error")

	// ErrUnexpectedStatus возвращается, когда сервис заявок ответил не-успешным статусом
	ErrUnexpectedStatus = errors.New("applicationservice client: unexpected status")

	// ErrInvalidApplication возвращается для пустой заявки
	ErrInvalidApplication = errors.New("applicationservice client: invalid application")
)
