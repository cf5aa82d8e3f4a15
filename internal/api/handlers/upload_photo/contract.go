package upload_photo

import (
	"context"

	"github.com/m04kA/SMC-WorkoutBooking/internal/domain"
	"github.com/m04kA/SMC-WorkoutBooking/internal/service/forms/models"
)

type FormService interface {
	UploadPhoto(ctx context.Context, id string, photo domain.Photo) (*models.FormResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
