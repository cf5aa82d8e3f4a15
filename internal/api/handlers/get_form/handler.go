package get_form

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

// Handle GET /api/v1/forms/{formId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["formId"]

	form, err := h.service.Get(r.Context(), formID)
	if err != nil {
		handlers.RespondFormError(w, h.logger, "GET /forms/{id}", formID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, form)
}
