package submit_application

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-WorkoutBooking/pkg/metrics"
)

// UseCase use case для отправки заявки
type UseCase struct {
	forms        FormService
	client       ApplicationClient
	recorder     SubmissionRecorder
	logger       Logger
	timeProvider TimeProvider
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(forms FormService, client ApplicationClient, recorder SubmissionRecorder, logger Logger) *UseCase {
	return &UseCase{
		forms:        forms,
		client:       client,
		recorder:     recorder,
		logger:       logger,
		timeProvider: &RealTimeProvider{},
	}
}

// NewUseCaseWithTimeProvider создает use case с кастомным провайдером времени (для тестирования)
func NewUseCaseWithTimeProvider(forms FormService, client ApplicationClient, recorder SubmissionRecorder, logger Logger, timeProvider TimeProvider) *UseCase {
	uc := NewUseCase(forms, client, recorder, logger)
	uc.timeProvider = timeProvider
	return uc
}

// Execute отправляет заявку формы
// Форма переводится в submitting под блокировкой сессии, сетевой вызов выполняется без неё
// Пока идет отправка, любые изменения и повторная отправка той же формы отклоняются
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if req == nil || req.FormID == "" {
		return nil, fmt.Errorf("%w: form id is required", ErrInvalidInput)
	}

	// 2. Переводим форму в submitting (ошибки валидации не доходят до сети)
	app, err := uc.forms.BeginSubmit(ctx, req.FormID)
	if err != nil {
		uc.logger.Warn("SubmitApplication: form=%s cannot be submitted: %v", req.FormID, err)
		uc.observe(metrics.OutcomeInvalid, 0)
		return nil, err
	}

	// 3. Отправляем заявку
	started := uc.timeProvider.Now()
	submitErr := uc.client.Submit(ctx, app)
	elapsed := uc.timeProvider.Now().Sub(started).Seconds()

	// 4. Завершаем переход. Контекст запроса может быть уже отменен, а форма не должна остаться в submitting
	finishCtx := context.WithoutCancel(ctx)

	if submitErr != nil {
		uc.logger.Error("SubmitApplication: form=%s submission failed: %v", req.FormID, submitErr)
		uc.observe(metrics.OutcomeFailure, elapsed)

		form, err := uc.forms.FinishSubmit(finishCtx, req.FormID, false)
		if err != nil {
			uc.logger.Error("SubmitApplication: form=%s failed to return to editing: %v", req.FormID, err)
			return nil, fmt.Errorf("%w: FinishSubmit: %v", ErrInternal, err)
		}
		return &Response{Form: form}, fmt.Errorf("%w: %v", ErrSubmissionFailed, submitErr)
	}

	form, err := uc.forms.FinishSubmit(finishCtx, req.FormID, true)
	if err != nil {
		uc.logger.Error("SubmitApplication: form=%s accepted but state update failed: %v", req.FormID, err)
		return nil, fmt.Errorf("%w: FinishSubmit: %v", ErrInternal, err)
	}

	uc.observe(metrics.OutcomeSuccess, elapsed)
	uc.logger.Info("SubmitApplication: form=%s submitted in %.3fs", req.FormID, elapsed)
	return &Response{Form: form}, nil
}

func (uc *UseCase) observe(outcome string, seconds float64) {
	if uc.recorder != nil {
		uc.recorder.ObserveSubmission(outcome, seconds)
	}
}
