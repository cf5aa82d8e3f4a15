package update_form

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WorkoutBooking/internal/api/handlers"
)

const (
	msgInvalidRequestBody = "invalid request body"
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

// Handle PATCH /api/v1/forms/{formId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["formId"]

	var req UpdateFormRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /forms/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	form, err := h.service.UpdatePersonalInfo(r.Context(), formID, req.ToServiceRequest())
	if err != nil {
		handlers.RespondFormError(w, h.logger, "PATCH /forms/{id}", formID, err)
		return
	}

	h.logger.Info("PATCH /forms/{id} - Personal info updated: form_id=%s, email_validity=%s", formID, form.EmailValidity)
	handlers.RespondJSON(w, http.StatusOK, form)
}
