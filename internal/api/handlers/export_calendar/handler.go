package export_calendar

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WorkoutBooking/internal/api/handlers"
	"github.com/m04kA/SMC-WorkoutBooking/internal/service/calendar"
)

const calendarFilename = "workout.ics"

type Handler struct {
	service  FormService
	exporter CalendarExporter
	logger   Logger
}

func NewHandler(service FormService, exporter CalendarExporter, logger Logger) *Handler {
	return &Handler{
		service:  service,
		exporter: exporter,
		logger:   logger,
	}
}

// Handle GET /api/v1/forms/{formId}/calendar.ics
// Доступно только после успешной отправки заявки
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["formId"]

	app, err := h.service.SubmittedApplication(r.Context(), formID)
	if err != nil {
		handlers.RespondFormError(w, h.logger, "GET /forms/{id}/calendar.ics", formID, err)
		return
	}

	data, err := h.exporter.Export(app)
	if err != nil {
		h.logger.Error("GET /forms/{id}/calendar.ics - Failed to build calendar: form_id=%s, error=%v", formID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /forms/{id}/calendar.ics - Calendar exported: form_id=%s", formID)
	w.Header().Set("Content-Type", calendar.ContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+calendarFilename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
