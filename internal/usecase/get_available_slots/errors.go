package get_available_slots

import "errors"

var (
	// ErrInvalidDate возвращается при отсутствующей или некорректной дате
	ErrInvalidDate = errors.New("get_available_slots: invalid date")

	// ErrInvalidMonth возвращается при некорректном месяце
	ErrInvalidMonth = errors.New("get_available_slots: invalid month")
)
