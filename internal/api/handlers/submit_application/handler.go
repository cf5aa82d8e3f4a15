package submit_application

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WorkoutBooking/internal/api/handlers"
	submitApplication "github.com/m04kA/SMC-WorkoutBooking/internal/usecase/submit_application"
)

const (
	msgInvalidFormID = "form id is required"
)

type Handler struct {
	useCase SubmitApplicationUseCase
	logger  Logger
}

func NewHandler(useCase SubmitApplicationUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/forms/{formId}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["formId"]

	result, err := h.useCase.Execute(r.Context(), &submitApplication.Request{FormID: formID})
	if err != nil {
		switch {
		case errors.Is(err, submitApplication.ErrSubmissionFailed):
			// Форма вернулась в editing, пользователь может отправить ее повторно
			h.logger.Warn("POST /forms/{id}/submit - Submission failed: form_id=%s, error=%v", formID, err)
			response := SubmitFailedResponse{Error: submitApplication.MsgSubmissionFailed}
			if result != nil {
				response.Form = result.Form
			}
			handlers.RespondJSON(w, http.StatusBadGateway, response)

		case errors.Is(err, submitApplication.ErrInvalidInput):
			h.logger.Warn("POST /forms/{id}/submit - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidFormID)

		default:
			handlers.RespondFormError(w, h.logger, "POST /forms/{id}/submit", formID, err)
		}
		return
	}

	h.logger.Info("POST /forms/{id}/submit - Application submitted: form_id=%s", formID)
	handlers.RespondJSON(w, http.StatusOK, result.Form)
}
