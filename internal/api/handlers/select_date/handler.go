package select_date

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WorkoutBooking/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDate        = "invalid date format, expected YYYY-MM-DD"
)

type Handler struct {
	service  FormService
	location *time.Location
	logger   Logger
}

func NewHandler(service FormService, location *time.Location, logger Logger) *Handler {
	if location == nil {
		location = time.UTC
	}
	return &Handler{
		service:  service,
		location: location,
		logger:   logger,
	}
}

// Handle PUT /api/v1/forms/{formId}/date
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["formId"]

	var req SelectDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /forms/{id}/date - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := req.ParseDate(h.location)
	if err != nil {
		h.logger.Warn("PUT /forms/{id}/date - Invalid date format: form_id=%s, error=%v", formID, err)
		handlers.RespondFieldError(w, http.StatusBadRequest, "date", msgInvalidDate)
		return
	}

	form, err := h.service.SelectDate(r.Context(), formID, date)
	if err != nil {
		handlers.RespondFormError(w, h.logger, "PUT /forms/{id}/date", formID, err)
		return
	}

	h.logger.Info("PUT /forms/{id}/date - Date selected: form_id=%s, slots_count=%d", formID, len(form.AvailableSlots))
	handlers.RespondJSON(w, http.StatusOK, form)
}
