package select_date

import (
	"context"
	"time"

	"github.com/m04kA/SMC-WorkoutBooking/internal/service/forms/models"
)

type FormService interface {
	SelectDate(ctx context.Context, id string, date *time.Time) (*models.FormResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
