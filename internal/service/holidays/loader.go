package holidays

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-WorkoutBooking/pkg/metrics"
)

// Load загружает праздники из провайдера и строит индекс
// Вызывается один раз при старте: при любой ошибке провайдера индекс не создается (без частичных данных)
func Load(ctx context.Context, provider HolidayProvider, country string, opts Options, recorder FetchRecorder, logger Logger) (*Index, error) {
	logger.Info("Load: fetching holidays for country=%s", country)

	list, err := provider.GetHolidays(ctx, country)
	if err != nil {
		recorder.ObserveHolidayFetch(metrics.OutcomeFailure)
		logger.Error("Load: failed to fetch holidays for country=%s: %v", country, err)
		return nil, fmt.Errorf("%w: %w", ErrHolidaysUnavailable, err)
	}

	recorder.ObserveHolidayFetch(metrics.OutcomeSuccess)

	index := NewIndex(list, opts)
	logger.Info("Load: holiday index built with %d holidays on %d days", index.Len(), len(index.byDay))

	return index, nil
}
