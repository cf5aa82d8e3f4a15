package holidayservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/m04kA/SMC-WorkoutBooking/internal/domain"
)

const (
	apiKeyHeader = "X-Api-Key"
	holidaysPath = "v1/holidays"
)

// Client клиент для работы с Holiday API
type Client struct {
	baseURL    string
	apiKey     string
	location   *time.Location
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента Holiday API
// Даты праздников интерпретируются в часовом поясе location
func NewClient(baseURL, apiKey string, location *time.Location, httpClient *http.Client, log Logger) *Client {
	if location == nil {
		location = time.UTC
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL:    baseURL,
		apiKey:     apiKey,
		location:   location,
		httpClient: httpClient,
		log:        log,
	}
}

// GetHolidays получает список праздников для страны
func (c *Client) GetHolidays(ctx context.Context, country string) ([]domain.Holiday, error) {
	endpoint, err := c.holidaysURL(country)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid base url %q: %v", ErrInternal, c.baseURL, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set(apiKeyHeader, c.apiKey)

	c.log.Info("Fetching holidays for country=%s", country)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %w", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: %d %s: api key rejected", ErrUnexpectedStatus, resp.StatusCode, http.StatusText(resp.StatusCode))
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("%w: %d %s: %s", ErrUnexpectedStatus, resp.StatusCode, http.StatusText(resp.StatusCode), string(body))
	}

	// Парсим ответ
	var items []HolidayResponse
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	holidays := make([]domain.Holiday, 0, len(items))
	for i, item := range items {
		holiday, err := item.ToDomain(c.location)
		if err != nil {
			if errors.Is(err, ErrUnknownCategory) {
				c.log.Warn("Holiday API returned unknown category %q for %q on %s", item.Type, item.Name, item.Date)
			}
			return nil, fmt.Errorf("%w: item %d: %w", ErrInvalidResponse, i, err)
		}
		holidays = append(holidays, holiday)
	}

	c.log.Info("Fetched %d holidays for country=%s", len(holidays), country)
	return holidays, nil
}

// holidaysURL собирает адрес списка праздников; завершающий "/" в базовом адресе допустим
func (c *Client) holidaysURL(country string) (string, error) {
	joined, err := url.JoinPath(c.baseURL, holidaysPath)
	if err != nil {
		return "", err
	}

	u, err := url.Parse(joined)
	if err != nil {
		return "", err
	}
	u.RawQuery = url.Values{"country": {country}}.Encode()
	return u.String(), nil
}
