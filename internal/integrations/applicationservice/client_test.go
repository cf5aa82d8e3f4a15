package applicationservice_test

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WorkoutBooking/internal/domain"
	"github.com/m04kA/SMC-WorkoutBooking/internal/integrations/applicationservice"
	"github.com/m04kA/SMC-WorkoutBooking/pkg/logger"
)

func testApplication() *domain.Application {
	date := time.Date(2025, time.November, 12, 0, 0, 0, 0, time.UTC)
	return &domain.Application{
		FormID:    "form-1",
		FirstName: "Anna",
		LastName:  "Nowak",
		Email:     "anna@example.com",
		Age:       30,
		Photo:     domain.Photo{Filename: "me.png", ContentType: "image/png", Data: []byte{0x89, 'P', 'N', 'G'}},
		Date:      date,
		TimeSlot:  domain.NewTimeSlot(date, 13, 0),
	}
}

func TestClient_Submit_SendsMultipartFields(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		require.NoError(t, r.ParseMultipartForm(1<<20))

		assert.Equal(t, "Anna", r.FormValue("firstName"))
		assert.Equal(t, "Nowak", r.FormValue("lastName"))
		assert.Equal(t, "anna@example.com", r.FormValue("email"))
		assert.Equal(t, "30", r.FormValue("age"))
		assert.Equal(t, "2025-11-12T00:00:00.000Z", r.FormValue("date"))
		assert.Equal(t, "2025-11-12T13:00:00.000Z", r.FormValue("timeSlot"))

		file, header, err := r.FormFile("photo")
		require.NoError(t, err)
		defer file.Close()

		data, err := io.ReadAll(file)
		require.NoError(t, err)
		assert.Equal(t, "me.png", header.Filename)
		assert.Equal(t, "image/png", header.Header.Get("Content-Type"))
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data)

		w.WriteHeader(http.StatusCreated)
	}))
	defer ts.Close()

	client := applicationservice.NewClient(ts.URL, &http.Client{Timeout: time.Second}, logger.Nop())
	assert.NoError(t, client.Submit(context.Background(), testApplication()))
}

func TestClient_Submit_DateInTimezone(t *testing.T) {
	warsaw, err := time.LoadLocation("Europe/Warsaw")
	require.NoError(t, err)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		assert.Equal(t, "2025-11-11T23:00:00.000Z", r.FormValue("date"))
		assert.Equal(t, "2025-11-12T12:00:00.000Z", r.FormValue("timeSlot"))
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	app := testApplication()
	app.Date = time.Date(2025, time.November, 12, 0, 0, 0, 0, warsaw)
	app.TimeSlot = domain.NewTimeSlot(app.Date, 13, 0)

	client := applicationservice.NewClient(ts.URL, &http.Client{Timeout: time.Second}, logger.Nop())
	assert.NoError(t, client.Submit(context.Background(), app))
}

func TestClient_Submit_ErrorStatus(t *testing.T) {
	for _, status := range []int{http.StatusBadRequest, http.StatusInternalServerError, http.StatusServiceUnavailable} {
		t.Run(http.StatusText(status), func(t *testing.T) {
			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "nope", status)
			}))
			defer ts.Close()

			client := applicationservice.NewClient(ts.URL, &http.Client{Timeout: time.Second}, logger.Nop())
			err := client.Submit(context.Background(), testApplication())
			assert.ErrorIs(t, err, applicationservice.ErrUnexpectedStatus)
			assert.Contains(t, err.Error(), "nope")
		})
	}
}

func TestClient_Submit_TransportError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := ts.URL
	ts.Close()

	client := applicationservice.NewClient(url, &http.Client{Timeout: time.Second}, logger.Nop())
	err := client.Submit(context.Background(), testApplication())
	assert.ErrorIs(t, err, applicationservice.ErrInternal)
}

func TestClient_Submit_Timeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer ts.Close()

	client := applicationservice.NewClient(ts.URL, &http.Client{Timeout: 50 * time.Millisecond}, logger.Nop())
	err := client.Submit(context.Background(), testApplication())
	assert.ErrorIs(t, err, applicationservice.ErrInternal)
}

func TestClient_Submit_NilApplication(t *testing.T) {
	client := applicationservice.NewClient("http://127.0.0.1:1", nil, logger.Nop())
	assert.ErrorIs(t, client.Submit(context.Background(), nil), applicationservice.ErrInvalidApplication)
}
