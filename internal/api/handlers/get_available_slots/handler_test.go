package get_available_slots_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WorkoutBooking/internal/api/handlers"
	handler "github.com/m04kA/SMC-WorkoutBooking/internal/api/handlers/get_available_slots"
	"github.com/m04kA/SMC-WorkoutBooking/internal/domain"
	"github.com/m04kA/SMC-WorkoutBooking/internal/service/holidays"
	getAvailableSlotsUC "github.com/m04kA/SMC-WorkoutBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-WorkoutBooking/pkg/logger"
)

func newRouter() *mux.Router {
	index := holidays.NewIndex([]domain.Holiday{
		{Date: time.Date(2025, time.November, 11, 0, 0, 0, 0, time.UTC), Name: "Independence Day", Category: domain.CategoryNationalHoliday},
		{Date: time.Date(2025, time.November, 12, 0, 0, 0, 0, time.UTC), Name: "Chopin Day", Category: domain.CategoryObservance},
	}, holidays.DefaultOptions())

	uc := getAvailableSlotsUC.NewUseCase(index, getAvailableSlotsUC.NewGenerator(8), time.UTC, logger.Nop())
	h := handler.NewHandler(uc, time.UTC, logger.Nop())

	r := mux.NewRouter()
	r.HandleFunc("/api/v1/calendar/days/{date}", h.Handle).Methods(http.MethodGet)
	return r
}

func get(t *testing.T, r http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func TestHandle_AvailableDay(t *testing.T) {
	rec := get(t, newRouter(), "/api/v1/calendar/days/2025-11-12")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handler.DayResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "2025-11-12", resp.Date)
	assert.Equal(t, "Wednesday", resp.Weekday)
	assert.False(t, resp.Disabled)
	assert.Equal(t, []string{"Chopin Day"}, resp.Observances)
	assert.Equal(t, "It is Chopin Day", resp.ObservanceMessage)
	require.Len(t, resp.Slots, 4)
	assert.Equal(t, handler.AvailableSlot{Start: "2025-11-12T12:30:00.000Z", Label: "12:30"}, resp.Slots[0])
	assert.Equal(t, "14:30", resp.Slots[3].Label)
}

func TestHandle_NationalHoliday(t *testing.T) {
	rec := get(t, newRouter(), "/api/v1/calendar/days/2025-11-11")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp handler.DayResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Disabled)
	assert.Empty(t, resp.Slots)
	assert.Empty(t, resp.ObservanceMessage)
	assert.Equal(t, []handler.HolidayItem{{Name: "Independence Day", Category: "NATIONAL_HOLIDAY"}}, resp.Holidays)
}

func TestHandle_InvalidDate(t *testing.T) {
	for _, path := range []string{
		"/api/v1/calendar/days/12-11-2025",
		"/api/v1/calendar/days/2025-13-01",
		"/api/v1/calendar/days/tomorrow",
	} {
		t.Run(path, func(t *testing.T) {
			rec := get(t, newRouter(), path)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			var resp handlers.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Contains(t, resp.Error, "YYYY-MM-DD")
		})
	}
}

func TestToUseCaseRequest(t *testing.T) {
	warsaw, err := time.LoadLocation("Europe/Warsaw")
	require.NoError(t, err)

	req, err := handler.ToUseCaseRequest("2025-11-12", warsaw)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, time.November, 12, 0, 0, 0, 0, warsaw), req.Date)
}
