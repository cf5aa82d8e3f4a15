package toggle_time_slot

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WorkoutBooking/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidTimeSlot    = "invalid time slot, expected an ISO-8601 timestamp"
)

type Handler struct {
	service FormService
	logger  Logger
}

func NewHandler(service FormService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/forms/{formId}/time-slot
// Повторный выбор уже выбранного слота снимает выбор
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["formId"]

	var req ToggleTimeSlotRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /forms/{id}/time-slot - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	start, err := req.ParseTimeSlot()
	if err != nil {
		h.logger.Warn("POST /forms/{id}/time-slot - Invalid time slot: form_id=%s, error=%v", formID, err)
		handlers.RespondFieldError(w, http.StatusBadRequest, "timeSlot", msgInvalidTimeSlot)
		return
	}

	form, err := h.service.ToggleTimeSlot(r.Context(), formID, start)
	if err != nil {
		handlers.RespondFormError(w, h.logger, "POST /forms/{id}/time-slot", formID, err)
		return
	}

	h.logger.Info("POST /forms/{id}/time-slot - Time slot toggled: form_id=%s, selected=%t", formID, form.TimeSlot != nil)
	handlers.RespondJSON(w, http.StatusOK, form)
}
