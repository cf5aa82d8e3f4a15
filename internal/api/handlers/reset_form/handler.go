package reset_form

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WorkoutBooking/internal/api/handlers"
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

// Handle POST /api/v1/forms/{formId}/reset
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["formId"]

	form, err := h.service.Reset(r.Context(), formID)
	if err != nil {
		handlers.RespondFormError(w, h.logger, "POST /forms/{id}/reset", formID, err)
		return
	}

	h.logger.Info("POST /forms/{id}/reset - Form reset: form_id=%s", formID)
	handlers.RespondJSON(w, http.StatusOK, form)
}
