package applicationservice

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-WorkoutBooking/internal/domain"
)

// Client клиент сервиса приема заявок
type Client struct {
	url        string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса заявок
func NewClient(url string, httpClient *http.Client, log Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		url:        url,
		httpClient: httpClient,
		log:        log,
	}
}

// Submit отправляет заявку одним POST запросом multipart/form-data
// Успех - любой 2xx статус; повторных попыток нет
func (c *Client) Submit(ctx context.Context, app *domain.Application) error {
	if app == nil {
		return ErrInvalidApplication
	}

	body, contentType, err := encodeApplication(app)
	if err != nil {
		return fmt.Errorf("%w: failed to encode application: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, body)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req.Header.Set("Content-Type", contentType)

	c.log.Info("Submitting application form=%s, slot=%s", app.FormID, app.TimeSlot.String())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %w", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return fmt.Errorf("%w: %d %s: %s", ErrUnexpectedStatus, resp.StatusCode, http.StatusText(resp.StatusCode), strings.TrimSpace(string(respBody)))
	}

	c.log.Info("Application form=%s accepted with status=%d", app.FormID, resp.StatusCode)
	return nil
}

// encodeApplication собирает multipart тело заявки
func encodeApplication(app *domain.Application) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	fields := []struct {
		name  string
		value string
	}{
		{fieldFirstName, app.FirstName},
		{fieldLastName, app.LastName},
		{fieldEmail, app.Email},
		{fieldAge, strconv.Itoa(app.Age)},
		{fieldDate, domain.FormatTimestamp(app.Date)},
		{fieldTimeSlot, app.TimeSlot.String()},
	}
	for _, f := range fields {
		if err := writer.WriteField(f.name, f.value); err != nil {
			return nil, "", err
		}
	}

	if err := writePhoto(writer, app.Photo); err != nil {
		return nil, "", err
	}

	if err := writer.Close(); err != nil {
		return nil, "", err
	}
	return body, writer.FormDataContentType(), nil
}

func writePhoto(writer *multipart.Writer, photo domain.Photo) error {
	contentType := photo.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	filename := photo.Filename
	if filename == "" {
		filename = fieldPhoto
	}

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, fieldPhoto, filename))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	if err != nil {
		return err
	}
	_, err = part.Write(photo.Data)
	return err
}
