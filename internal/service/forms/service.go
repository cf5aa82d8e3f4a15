package forms

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-WorkoutBooking/internal/domain"
	"github.com/m04kA/SMC-WorkoutBooking/internal/infra/storage/session"
	"github.com/m04kA/SMC-WorkoutBooking/internal/service/forms/models"
)

// Service сервис для работы с формами бронирования
type Service struct {
	store         SessionStore
	days          DayChecker
	slots         SlotSource
	location      *time.Location
	maxPhotoBytes int
	recorder      SessionRecorder
	logger        Logger
}

// NewService создает новый экземпляр сервиса форм
func NewService(
	store SessionStore,
	days DayChecker,
	slots SlotSource,
	location *time.Location,
	maxPhotoBytes int,
	recorder SessionRecorder,
	logger Logger,
) *Service {
	if location == nil {
		location = time.UTC
	}
	return &Service{
		store:         store,
		days:          days,
		slots:         slots,
		location:      location,
		maxPhotoBytes: maxPhotoBytes,
		recorder:      recorder,
		logger:        logger,
	}
}

// Create создает новую форму со значениями по умолчанию
func (s *Service) Create(ctx context.Context) (*models.FormResponse, error) {
	id, err := s.store.Create(ctx)
	if err != nil {
		if errors.Is(err, session.ErrCapacityExceeded) {
			s.logger.Warn("Create: session limit reached: %v", err)
			return nil, ErrTooManyForms
		}
		s.logger.Error("Create: store error: %v", err)
		return nil, fmt.Errorf("%w: Create - store error: %v", ErrInternal, err)
	}
	s.recordSessions()

	s.logger.Info("Create: form id=%s created", id)
	return s.Get(ctx, id)
}

// Get возвращает текущее представление формы
func (s *Service) Get(ctx context.Context, id string) (*models.FormResponse, error) {
	var response *models.FormResponse
	err := s.withMachine(ctx, id, func(m *Machine) error {
		response = s.view(id, m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

// UpdatePersonalInfo обновляет имя, фамилию, email и возраст
// Изменения применяются атомарно: при ошибке форма не меняется
func (s *Service) UpdatePersonalInfo(ctx context.Context, id string, req *models.UpdatePersonalInfoRequest) (*models.FormResponse, error) {
	return s.mutate(ctx, id, "UpdatePersonalInfo", func(m *Machine) error {
		if req.FirstName != nil {
			if err := m.SetFirstName(*req.FirstName); err != nil {
				return err
			}
		}
		if req.LastName != nil {
			if err := m.SetLastName(*req.LastName); err != nil {
				return err
			}
		}
		if req.Email != nil {
			if err := m.InputEmail(*req.Email); err != nil {
				return err
			}
		}
		if req.EmailFocusLost {
			if err := m.BlurEmail(); err != nil {
				return err
			}
		}
		if req.Age != nil {
			if err := m.SetAge(*req.Age); err != nil {
				return err
			}
		}
		return nil
	})
}

// UploadPhoto заменяет фото формы
func (s *Service) UploadPhoto(ctx context.Context, id string, photo domain.Photo) (*models.FormResponse, error) {
	if s.maxPhotoBytes > 0 && photo.Size() > s.maxPhotoBytes {
		s.logger.Warn("UploadPhoto: form id=%s photo size=%d exceeds limit=%d", id, photo.Size(), s.maxPhotoBytes)
		return nil, fmt.Errorf("%w: %d bytes, limit is %d", ErrPhotoTooLarge, photo.Size(), s.maxPhotoBytes)
	}
	return s.mutate(ctx, id, "UploadPhoto", func(m *Machine) error {
		return m.SetPhoto(photo)
	})
}

// ClearPhoto удаляет фото формы
func (s *Service) ClearPhoto(ctx context.Context, id string) (*models.FormResponse, error) {
	return s.mutate(ctx, id, "ClearPhoto", func(m *Machine) error {
		return m.ClearPhoto()
	})
}

// SelectDate выбирает дату (nil снимает выбор); дата трактуется в часовом поясе бронирования
func (s *Service) SelectDate(ctx context.Context, id string, date *time.Time) (*models.FormResponse, error) {
	var local *time.Time
	if date != nil {
		d := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, s.location)
		local = &d
	}
	return s.mutate(ctx, id, "SelectDate", func(m *Machine) error {
		return m.SelectDate(local)
	})
}

// ToggleTimeSlot переключает выбор слота
func (s *Service) ToggleTimeSlot(ctx context.Context, id string, start time.Time) (*models.FormResponse, error) {
	slot := domain.TimeSlot{Start: start.In(s.location)}
	return s.mutate(ctx, id, "ToggleTimeSlot", func(m *Machine) error {
		return m.ToggleTimeSlot(slot)
	})
}

// Reset сбрасывает форму к значениям по умолчанию
func (s *Service) Reset(ctx context.Context, id string) (*models.FormResponse, error) {
	return s.mutate(ctx, id, "Reset", func(m *Machine) error {
		return m.Reset()
	})
}

// BeginSubmit переводит форму в submitting и возвращает заявку
func (s *Service) BeginSubmit(ctx context.Context, id string) (*domain.Application, error) {
	var app *domain.Application
	err := s.withMachine(ctx, id, func(m *Machine) error {
		var err error
		app, err = m.BeginSubmit()
		return err
	})
	if err != nil {
		return nil, err
	}
	app.FormID = id
	return app, nil
}

// FinishSubmit завершает отправку: submitted при успехе, editing при ошибке
func (s *Service) FinishSubmit(ctx context.Context, id string, succeeded bool) (*models.FormResponse, error) {
	var response *models.FormResponse
	err := s.withMachine(ctx, id, func(m *Machine) error {
		var err error
		if succeeded {
			err = m.CompleteSubmit()
		} else {
			err = m.FailSubmit()
		}
		if err != nil {
			return err
		}
		response = s.view(id, m)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

// SubmittedApplication возвращает принятую заявку (для экспорта в календарь)
func (s *Service) SubmittedApplication(ctx context.Context, id string) (*domain.Application, error) {
	var app *domain.Application
	err := s.withMachine(ctx, id, func(m *Machine) error {
		state := m.Snapshot()
		if !state.IsSubmitted() {
			return fmt.Errorf("%w: status is %s", ErrNotSubmitted, state.Status)
		}
		app = &domain.Application{
			FormID:    id,
			FirstName: state.FirstName,
			LastName:  state.LastName,
			Email:     state.Email,
			Age:       state.Age,
			Photo:     *state.Photo,
			Date:      *state.SelectedDate,
			TimeSlot:  *state.SelectedTimeSlot,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return app, nil
}

// mutate применяет изменения к копии состояния и сохраняет её только при успехе
func (s *Service) mutate(ctx context.Context, id, op string, fn func(m *Machine) error) (*models.FormResponse, error) {
	var response *models.FormResponse
	err := s.store.WithSession(ctx, id, func(state *domain.FormState) error {
		draft := NewMachine(state, s.days, s.slots).Snapshot()
		m := NewMachine(&draft, s.days, s.slots)

		if err := fn(m); err != nil {
			return err
		}

		*state = draft
		response = s.view(id, m)
		return nil
	})
	if err != nil {
		s.logger.Warn("%s: form id=%s: %v", op, id, err)
		return nil, s.mapStoreError(err)
	}

	s.logger.Info("%s: form id=%s updated", op, id)
	return response, nil
}

func (s *Service) withMachine(ctx context.Context, id string, fn func(m *Machine) error) error {
	err := s.store.WithSession(ctx, id, func(state *domain.FormState) error {
		return fn(NewMachine(state, s.days, s.slots))
	})
	if err != nil {
		return s.mapStoreError(err)
	}
	return nil
}

func (s *Service) mapStoreError(err error) error {
	if errors.Is(err, session.ErrSessionNotFound) {
		s.recordSessions()
		return fmt.Errorf("%w: %v", ErrFormNotFound, err)
	}
	return err
}

func (s *Service) view(id string, m *Machine) *models.FormResponse {
	return models.FromDomainForm(models.FormView{
		ID:                id,
		State:             m.Snapshot(),
		Slots:             m.AvailableSlots(),
		ObservanceMessage: m.ObservanceMessage(),
		FieldErrors:       m.FieldErrors(),
		CanSubmit:         m.CanSubmit(),
	})
}

func (s *Service) recordSessions() {
	if s.recorder != nil {
		s.recorder.SetActiveSessions(s.store.Len())
	}
}
