package clear_photo

import (
	"context"

	"github.com/m04kA/SMC-WorkoutBooking/internal/service/forms/models"
)

type FormService interface {
	ClearPhoto(ctx context.Context, id string) (*models.FormResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
