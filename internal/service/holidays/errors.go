package holidays

import "errors"

// ErrHolidaysUnavailable возвращается, когда список праздников не удалось получить
var ErrHolidaysUnavailable = errors.New("holidays: holiday list unavailable")
