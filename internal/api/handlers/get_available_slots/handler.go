package get_available_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WorkoutBooking/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-WorkoutBooking/internal/usecase/get_available_slots"
)

const (
	msgInvalidDate = "invalid date format, expected YYYY-MM-DD"
)

type Handler struct {
	useCase  GetAvailableSlotsUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, location *time.Location, logger Logger) *Handler {
	if location == nil {
		location = time.UTC
	}
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/calendar/days/{date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateStr := mux.Vars(r)["date"]

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(dateStr, h.location)
	if err != nil {
		h.logger.Warn("GET /calendar/days/{date} - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidDate):
			h.logger.Warn("GET /calendar/days/{date} - Invalid date: %s", dateStr)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /calendar/days/{date} - Failed to get slots: date=%s, error=%v", dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar/days/{date} - Day retrieved: date=%s, disabled=%t, slots_count=%d",
		dateStr, result.Disabled, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
