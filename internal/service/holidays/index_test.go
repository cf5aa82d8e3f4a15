package holidays_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WorkoutBooking/internal/domain"
	"github.com/m04kA/SMC-WorkoutBooking/internal/service/holidays"
	"github.com/m04kA/SMC-WorkoutBooking/pkg/logger"
	"github.com/m04kA/SMC-WorkoutBooking/pkg/metrics"
)

// MockProvider имитирует Holiday API
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) GetHolidays(ctx context.Context, country string) ([]domain.Holiday, error) {
	args := m.Called(ctx, country)
	if h := args.Get(0); h != nil {
		return h.([]domain.Holiday), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockRecorder запоминает результаты загрузки
type MockRecorder struct {
	mock.Mock
}

func (m *MockRecorder) ObserveHolidayFetch(outcome string) {
	m.Called(outcome)
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func fixture() []domain.Holiday {
	return []domain.Holiday{
		{Date: day(2025, time.November, 11), Name: "Independence Day", Category: domain.CategoryNationalHoliday},
		{Date: day(2025, time.February, 14), Name: "Valentine's Day", Category: domain.CategoryObservance},
		{Date: day(2025, time.February, 14), Name: "Fat Thursday", Category: domain.CategoryObservance},
		{Date: day(2025, time.June, 1), Name: "Children's Day", Category: domain.CategoryObservance},
		{Date: day(2025, time.March, 30), Name: "Daylight Saving Time starts", Category: domain.CategoryClockChange},
	}
}

func TestIndex_IsBlocked(t *testing.T) {
	idx := holidays.NewIndex(fixture(), holidays.DefaultOptions())

	assert.True(t, idx.IsBlocked(day(2025, time.November, 11)))
	// Время суток не учитывается
	assert.True(t, idx.IsBlocked(time.Date(2025, time.November, 11, 23, 59, 0, 0, time.UTC)))
	assert.False(t, idx.IsBlocked(day(2025, time.February, 14)), "observance must not block")
	assert.False(t, idx.IsBlocked(day(2025, time.March, 30)))
	assert.False(t, idx.IsBlocked(day(2025, time.November, 12)))
}

func TestIndex_ConfigurableBlockingCategories(t *testing.T) {
	opts := holidays.DefaultOptions()
	opts.BlockingCategories = []domain.HolidayCategory{domain.CategoryClockChange}

	idx := holidays.NewIndex(fixture(), opts)

	assert.True(t, idx.IsBlocked(day(2025, time.March, 30)))
	assert.False(t, idx.IsBlocked(day(2025, time.November, 11)))
}

func TestIndex_ObservancesOn(t *testing.T) {
	idx := holidays.NewIndex(fixture(), holidays.DefaultOptions())

	observances := idx.ObservancesOn(day(2025, time.February, 14))
	require.Len(t, observances, 2)
	assert.Equal(t, []string{"Valentine's Day", "Fat Thursday"}, holidays.HolidayNames(observances))

	assert.Empty(t, idx.ObservancesOn(day(2025, time.November, 11)))
	assert.Empty(t, idx.ObservancesOn(day(2025, time.January, 2)))
}

func TestIndex_ObservanceMessage(t *testing.T) {
	idx := holidays.NewIndex(fixture(), holidays.DefaultOptions())

	assert.Equal(t, "It is Valentine's Day, Fat Thursday", idx.ObservanceMessage(day(2025, time.February, 14)))
	assert.Equal(t, "It is Children's Day", idx.ObservanceMessage(day(2025, time.June, 1)))
	assert.Equal(t, "", idx.ObservanceMessage(day(2025, time.November, 11)))
}

func TestIndex_IsDisabled(t *testing.T) {
	idx := holidays.NewIndex(fixture(), holidays.DefaultOptions())

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"NationalHolidayTuesday", day(2025, time.November, 11), true},
		{"PlainSunday", day(2025, time.November, 16), true},
		{"ObservanceFriday", day(2025, time.February, 14), false},
		{"ObservanceSunday", day(2025, time.June, 1), true},
		{"RegularWednesday", day(2025, time.November, 12), false},
		{"Saturday", day(2025, time.November, 15), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, idx.IsDisabled(tt.date))
		})
	}
}

func TestIndex_HolidaysOnReturnsCopy(t *testing.T) {
	idx := holidays.NewIndex(fixture(), holidays.DefaultOptions())

	list := idx.HolidaysOn(day(2025, time.February, 14))
	require.Len(t, list, 2)
	list[0].Name = "mutated"

	assert.Equal(t, "Valentine's Day", idx.HolidaysOn(day(2025, time.February, 14))[0].Name)
	assert.Equal(t, 5, idx.Len())
}

func TestLoad_Success(t *testing.T) {
	provider := new(MockProvider)
	provider.On("GetHolidays", mock.Anything, "PL").Return(fixture(), nil)

	recorder := new(MockRecorder)
	recorder.On("ObserveHolidayFetch", metrics.OutcomeSuccess).Return()

	idx, err := holidays.Load(context.Background(), provider, "PL", holidays.DefaultOptions(), recorder, logger.Nop())
	require.NoError(t, err)
	assert.True(t, idx.IsBlocked(day(2025, time.November, 11)))

	provider.AssertExpectations(t)
	recorder.AssertExpectations(t)
}

func TestLoad_ProviderFailureIsFatal(t *testing.T) {
	upstream := errors.New("503 Service Unavailable")

	provider := new(MockProvider)
	provider.On("GetHolidays", mock.Anything, "PL").Return(nil, upstream)

	recorder := new(MockRecorder)
	recorder.On("ObserveHolidayFetch", metrics.OutcomeFailure).Return()

	idx, err := holidays.Load(context.Background(), provider, "PL", holidays.DefaultOptions(), recorder, logger.Nop())

	require.Error(t, err)
	assert.Nil(t, idx)
	assert.ErrorIs(t, err, holidays.ErrHolidaysUnavailable)
	assert.ErrorIs(t, err, upstream)
	recorder.AssertExpectations(t)
}
