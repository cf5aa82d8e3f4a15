package get_available_slots_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WorkoutBooking/internal/domain"
	"github.com/m04kA/SMC-WorkoutBooking/internal/service/holidays"
	"github.com/m04kA/SMC-WorkoutBooking/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-WorkoutBooking/pkg/logger"
)

func newUseCase() *get_available_slots.UseCase {
	index := holidays.NewIndex([]domain.Holiday{
		{Date: time.Date(2025, time.November, 11, 0, 0, 0, 0, time.UTC), Name: "Independence Day", Category: domain.CategoryNationalHoliday},
		{Date: time.Date(2025, time.November, 12, 0, 0, 0, 0, time.UTC), Name: "Chopin Day", Category: domain.CategoryObservance},
		{Date: time.Date(2025, time.November, 12, 0, 0, 0, 0, time.UTC), Name: "Baking Day", Category: domain.CategoryObservance},
	}, holidays.DefaultOptions())

	return get_available_slots.NewUseCase(index, get_available_slots.NewGenerator(8), time.UTC, logger.Nop())
}

func TestUseCase_Execute_AvailableDay(t *testing.T) {
	uc := newUseCase()

	resp, err := uc.Execute(context.Background(), &get_available_slots.Request{
		Date: time.Date(2025, time.November, 12, 9, 15, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.False(t, resp.Disabled)
	assert.Equal(t, "It is Chopin Day, Baking Day", resp.ObservanceMessage)
	assert.Len(t, resp.Observances, 2)
	assert.Equal(t, []string{"12:30", "13:00", "13:30", "14:30"}, labels(resp.Slots))
	assert.Equal(t, 0, resp.Date.Hour())
}

func TestUseCase_Execute_NationalHolidayHasNoSlots(t *testing.T) {
	uc := newUseCase()

	resp, err := uc.Execute(context.Background(), &get_available_slots.Request{
		Date: time.Date(2025, time.November, 11, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.True(t, resp.Disabled)
	assert.Empty(t, resp.Slots)
	assert.Empty(t, resp.ObservanceMessage)
	require.Len(t, resp.Holidays, 1)
	assert.Equal(t, "Independence Day", resp.Holidays[0].Name)
}

func TestUseCase_Execute_SundayHasNoSlots(t *testing.T) {
	uc := newUseCase()

	resp, err := uc.Execute(context.Background(), &get_available_slots.Request{
		Date: time.Date(2025, time.November, 16, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.True(t, resp.Disabled)
	assert.Empty(t, resp.Slots)
}

func TestUseCase_Execute_InvalidDate(t *testing.T) {
	uc := newUseCase()

	_, err := uc.Execute(context.Background(), &get_available_slots.Request{})
	assert.ErrorIs(t, err, get_available_slots.ErrInvalidDate)

	_, err = uc.Execute(context.Background(), nil)
	assert.ErrorIs(t, err, get_available_slots.ErrInvalidDate)
}

func TestUseCase_ExecuteMonth(t *testing.T) {
	uc := newUseCase()

	resp, err := uc.ExecuteMonth(context.Background(), &get_available_slots.MonthRequest{Year: 2025, Month: time.November})
	require.NoError(t, err)
	require.Len(t, resp.Days, 30)

	byDay := make(map[int]get_available_slots.Day, len(resp.Days))
	for _, d := range resp.Days {
		byDay[d.Date.Day()] = d
	}

	assert.True(t, byDay[11].Disabled)
	assert.True(t, byDay[16].Disabled)
	assert.False(t, byDay[12].Disabled)
	assert.Equal(t, []string{"Chopin Day", "Baking Day"}, byDay[12].Observances)
	assert.Empty(t, byDay[13].Observances)
}

func TestUseCase_ExecuteMonth_Invalid(t *testing.T) {
	uc := newUseCase()

	_, err := uc.ExecuteMonth(context.Background(), &get_available_slots.MonthRequest{Year: 2025, Month: 13})
	assert.ErrorIs(t, err, get_available_slots.ErrInvalidMonth)

	_, err = uc.ExecuteMonth(context.Background(), &get_available_slots.MonthRequest{Year: 2025, Month: 0})
	assert.ErrorIs(t, err, get_available_slots.ErrInvalidMonth)
}
