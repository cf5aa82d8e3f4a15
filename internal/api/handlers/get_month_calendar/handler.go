package get_month_calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WorkoutBooking/internal/api/handlers"
	getAvailableSlots "github.com/m04kA/SMC-WorkoutBooking/internal/usecase/get_available_slots"
)

const (
	msgInvalidYear  = "invalid year"
	msgInvalidMonth = "invalid month, expected 1-12"
)

type Handler struct {
	useCase GetMonthUseCase
	logger  Logger
}

func NewHandler(useCase GetMonthUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/calendar/months/{year}/{month}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	year, err := strconv.Atoi(vars["year"])
	if err != nil {
		h.logger.Warn("GET /calendar/months/{year}/{month} - Invalid year: %v", err)
		handlers.RespondBadRequest(w, msgInvalidYear)
		return
	}

	month, err := strconv.Atoi(vars["month"])
	if err != nil {
		h.logger.Warn("GET /calendar/months/{year}/{month} - Invalid month: %v", err)
		handlers.RespondBadRequest(w, msgInvalidMonth)
		return
	}

	result, err := h.useCase.ExecuteMonth(r.Context(), ToUseCaseRequest(year, month))
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidMonth):
			h.logger.Warn("GET /calendar/months/{year}/{month} - Invalid month: year=%d, month=%d", year, month)
			handlers.RespondBadRequest(w, msgInvalidMonth)

		default:
			h.logger.Error("GET /calendar/months/{year}/{month} - Failed to build month: year=%d, month=%d, error=%v", year, month, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /calendar/months/{year}/{month} - Month retrieved: year=%d, month=%d", year, month)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
