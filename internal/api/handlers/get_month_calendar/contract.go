package get_month_calendar

import (
	"context"

	getAvailableSlots "github.com/m04kA/SMC-WorkoutBooking/internal/usecase/get_available_slots"
)

type GetMonthUseCase interface {
	ExecuteMonth(ctx context.Context, req *getAvailableSlots.MonthRequest) (*getAvailableSlots.MonthResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
