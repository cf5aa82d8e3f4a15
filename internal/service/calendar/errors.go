package calendar

import "errors"

var (
	// ErrInvalidApplication возвращается для заявки без слота
	ErrInvalidApplication = errors.New("calendar: invalid application")

	// ErrEncode возвращается при ошибке сериализации календаря
	ErrEncode = errors.New("calendar: failed to encode calendar")
)
