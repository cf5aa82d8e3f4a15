package create_form

import (
	"net/http"

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

// Handle POST /api/v1/forms
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	form, err := h.service.Create(r.Context())
	if err != nil {
		handlers.RespondFormError(w, h.logger, "POST /forms", "", err)
		return
	}

	h.logger.Info("POST /forms - Form created: form_id=%s", form.ID)
	w.Header().Set("Location", "/api/v1/forms/"+form.ID)
	handlers.RespondJSON(w, http.StatusCreated, form)
}
