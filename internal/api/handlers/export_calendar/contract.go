package export_calendar

import (
	"context"

	"github.com/m04kA/SMC-WorkoutBooking/internal/domain"
)

type FormService interface {
	SubmittedApplication(ctx context.Context, id string) (*domain.Application, error)
}

type CalendarExporter interface {
	Export(app *domain.Application) ([]byte, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
