package upload_photo

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-WorkoutBooking/internal/api/handlers"
)

const (
	msgInvalidMultipart = "expected multipart/form-data with a photo file"
	msgMissingPhoto     = "photo file is required"
	msgPhotoTooLarge    = "photo is too large"
)

// multipartOverhead запас на заголовки и границы multipart тела
const multipartOverhead = 64 << 10

type Handler struct {
	service       FormService
	maxPhotoBytes int64
	logger        Logger
}

func NewHandler(service FormService, maxPhotoBytes int64, logger Logger) *Handler {
	return &Handler{
		service:       service,
		maxPhotoBytes: maxPhotoBytes,
		logger:        logger,
	}
}

// Handle PUT /api/v1/forms/{formId}/photo
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	formID := mux.Vars(r)["formId"]

	if h.maxPhotoBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxPhotoBytes+multipartOverhead)
	}

	if err := r.ParseMultipartForm(h.maxPhotoBytes + multipartOverhead); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.logger.Warn("PUT /forms/{id}/photo - Body too large: form_id=%s, limit=%d", formID, maxErr.Limit)
			handlers.RespondFieldError(w, http.StatusRequestEntityTooLarge, FieldPhoto, msgPhotoTooLarge)
			return
		}
		h.logger.Warn("PUT /forms/{id}/photo - Invalid multipart body: form_id=%s, error=%v", formID, err)
		handlers.RespondBadRequest(w, msgInvalidMultipart)
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	file, header, err := r.FormFile(FieldPhoto)
	if err != nil {
		h.logger.Warn("PUT /forms/{id}/photo - Missing photo: form_id=%s, error=%v", formID, err)
		handlers.RespondBadRequest(w, msgMissingPhoto)
		return
	}
	defer file.Close()

	photo, err := ReadPhoto(file, header, h.maxPhotoBytes)
	if err != nil {
		h.logger.Warn("PUT /forms/{id}/photo - Failed to read photo: form_id=%s, error=%v", formID, err)
		handlers.RespondBadRequest(w, msgInvalidMultipart)
		return
	}

	form, err := h.service.UploadPhoto(r.Context(), formID, photo)
	if err != nil {
		handlers.RespondFormError(w, h.logger, "PUT /forms/{id}/photo", formID, err)
		return
	}

	h.logger.Info("PUT /forms/{id}/photo - Photo uploaded: form_id=%s, filename=%s, size=%d", formID, photo.Filename, photo.Size())
	handlers.RespondJSON(w, http.StatusOK, form)
}
