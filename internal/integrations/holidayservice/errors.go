package holidayservice

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента (в том числе транспортных)
	ErrInternal = errors.New("holidayservice client: internal error")

	// ErrUnexpectedStatus возвращается, когда Holiday API ответил не-успешным статусом
	ErrUnexpectedStatus = errors.New("holidayservice client: unexpected status")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("holidayservice client: invalid response")

	// ErrUnknownCategory возвращается, когда категория праздника не входит в известный набор
	ErrUnknownCategory = errors.New("holidayservice client: unknown holiday category")
)
