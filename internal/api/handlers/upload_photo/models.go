package upload_photo

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/m04kA/SMC-WorkoutBooking/internal/domain"
)

// FieldPhoto имя файлового поля multipart формы
const FieldPhoto = "photo"

// ReadPhoto читает файл фото из multipart запроса
// Тип содержимого берется из заголовка части, при его отсутствии определяется по содержимому
func ReadPhoto(file multipart.File, header *multipart.FileHeader, maxBytes int64) (domain.Photo, error) {
	reader := io.Reader(file)
	if maxBytes > 0 {
		reader = io.LimitReader(file, maxBytes+1)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return domain.Photo{}, fmt.Errorf("read photo: %w", err)
	}

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = http.DetectContentType(data)
	}

	return domain.Photo{
		Filename:    header.Filename,
		ContentType: contentType,
		Data:        data,
	}, nil
}
