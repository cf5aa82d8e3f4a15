package submit_application

import (
	"context"
	"time"

	"github.com/m04kA/SMC-WorkoutBooking/internal/domain"
	"github.com/m04kA/SMC-WorkoutBooking/internal/service/forms/models"
)

// FormService интерфейс сервиса форм
type FormService interface {
	BeginSubmit(ctx context.Context, id string) (*domain.Application, error)
	FinishSubmit(ctx context.Context, id string, succeeded bool) (*models.FormResponse, error)
}

// ApplicationClient интерфейс клиента сервиса заявок
type ApplicationClient interface {
	Submit(ctx context.Context, app *domain.Application) error
}

// SubmissionRecorder интерфейс для метрик отправки
type SubmissionRecorder interface {
	ObserveSubmission(outcome string, seconds float64)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
