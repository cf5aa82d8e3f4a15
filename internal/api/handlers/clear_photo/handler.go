package clear_photo

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

// Handle DELETE /api/v1/forms/{formId}/photo
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["formId"]

	form, err := h.service.ClearPhoto(r.Context(), formID)
	if err != nil {
		handlers.RespondFormError(w, h.logger, "DELETE /forms/{id}/photo", formID, err)
		return
	}

	h.logger.Info("DELETE /forms/{id}/photo - Photo cleared: form_id=%s", formID)
	handlers.RespondJSON(w, http.StatusOK, form)
}
