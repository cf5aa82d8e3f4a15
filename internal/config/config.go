package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/SMC-WorkoutBooking/internal/domain"
)

// EnvHolidayAPIKey переменная окружения с ключом Holiday API (имеет приоритет над config.toml)
const EnvHolidayAPIKey = "NINJA_API_KEY"

// ErrInvalidConfig возвращается при некорректной конфигурации
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config конфигурация сервиса
type Config struct {
	Server             ServerConfig             `toml:"server"`
	Logs               LogsConfig               `toml:"logs"`
	Metrics            MetricsConfig            `toml:"metrics"`
	Tracing            TracingConfig            `toml:"tracing"`
	HolidayService     HolidayServiceConfig     `toml:"holiday_service"`
	ApplicationService ApplicationServiceConfig `toml:"application_service"`
	Booking            BookingConfig            `toml:"booking"`
	Forms              FormsConfig              `toml:"forms"`
}

// ServerConfig настройки HTTP сервера (таймауты в секундах)
type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

// LogsConfig настройки логирования
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig настройки prometheus метрик
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// TracingConfig настройки OpenTelemetry
type TracingConfig struct {
	Enabled       bool    `toml:"enabled"`
	Endpoint      string  `toml:"endpoint"`
	Insecure      bool    `toml:"insecure"`
	ExportTimeout int     `toml:"export_timeout"` // секунды
	SampleRatio   float64 `toml:"sample_ratio"`
	ServiceName   string  `toml:"service_name"`
}

// HolidayServiceConfig настройки клиента Holiday API
type HolidayServiceConfig struct {
	URL     string `toml:"url"`
	APIKey  string `toml:"api_key"`
	Country string `toml:"country"`
	Timeout int    `toml:"timeout"` // секунды
}

// ApplicationServiceConfig настройки клиента приема анкет
type ApplicationServiceConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"` // секунды
}

// BookingConfig настройки календаря и генерации слотов
type BookingConfig struct {
	Timezone             string   `toml:"timezone"`
	SlotCandidates       int      `toml:"slot_candidates"`
	SlotDurationMinutes  int      `toml:"slot_duration_minutes"`
	BlockingCategories   []string `toml:"blocking_categories"`
	ObservanceCategories []string `toml:"observance_categories"`
}

// FormsConfig настройки сессий формы
type FormsConfig struct {
	SessionTTLMinutes int   `toml:"session_ttl_minutes"`
	MaxSessions       int   `toml:"max_sessions"`
	MaxPhotoBytes     int64 `toml:"max_photo_bytes"`
}

// Load загружает конфигурацию из TOML файла, применяет значения по умолчанию и переменные окружения
func Load(path string) (*Config, error) {
	cfg := Default()

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config %s: %w", path, err)
	}

	cfg.applyDefaults()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse разбирает конфигурацию из строки (используется в тестах и для встроенных конфигов)
func Parse(data string) (*Config, error) {
	cfg := Default()

	if _, err := toml.Decode(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	cfg.applyDefaults()
	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Default возвращает конфигурацию по умолчанию
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			HTTPPort:        8080,
			ReadTimeout:     15,
			WriteTimeout:    45,
			IdleTimeout:     60,
			ShutdownTimeout: 10,
		},
		Logs: LogsConfig{
			Level: "info",
		},
		Metrics: MetricsConfig{
			Enabled:     true,
			Path:        "/metrics",
			ServiceName: "workout-booking",
		},
		Tracing: TracingConfig{
			Endpoint:      "localhost:4317",
			Insecure:      true,
			ExportTimeout: 3,
			SampleRatio:   1,
			ServiceName: "workout-booking",
		},
		HolidayService: HolidayServiceConfig{
			URL:     "https://api.api-ninjas.com",
			Country: "PL",
			Timeout: 10,
		},
		ApplicationService: ApplicationServiceConfig{
			Timeout: 30,
		},
		Booking: BookingConfig{
			Timezone:             "Europe/Warsaw",
			SlotCandidates:       domain.DefaultSlotCandidates,
			SlotDurationMinutes:  domain.SlotStepMinutes,
			BlockingCategories:   categoriesToStrings(domain.DefaultBlockingCategories),
			ObservanceCategories: categoriesToStrings(domain.DefaultObservanceCategories),
		},
		Forms: FormsConfig{
			SessionTTLMinutes: 120,
			MaxSessions:       10000,
			MaxPhotoBytes:     10 << 20,
		},
	}
}

// applyDefaults заполняет нулевые значения, оставленные в файле явно пустыми
func (c *Config) applyDefaults() {
	def := Default()

	if c.Server.ShutdownTimeout <= 0 {
		c.Server.ShutdownTimeout = def.Server.ShutdownTimeout
	}
	if c.Logs.Level == "" {
		c.Logs.Level = def.Logs.Level
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = def.Metrics.Path
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = def.Metrics.ServiceName
	}
	if c.Tracing.ServiceName == "" {
		c.Tracing.ServiceName = c.Metrics.ServiceName
	}
	if c.HolidayService.Timeout <= 0 {
		c.HolidayService.Timeout = def.HolidayService.Timeout
	}
	if c.ApplicationService.Timeout <= 0 {
		c.ApplicationService.Timeout = def.ApplicationService.Timeout
	}
	if c.Booking.Timezone == "" {
		c.Booking.Timezone = def.Booking.Timezone
	}
	if c.Booking.SlotCandidates == 0 {
		c.Booking.SlotCandidates = def.Booking.SlotCandidates
	}
	if c.Booking.SlotDurationMinutes <= 0 {
		c.Booking.SlotDurationMinutes = def.Booking.SlotDurationMinutes
	}
	if len(c.Booking.BlockingCategories) == 0 {
		c.Booking.BlockingCategories = def.Booking.BlockingCategories
	}
	if c.Forms.SessionTTLMinutes <= 0 {
		c.Forms.SessionTTLMinutes = def.Forms.SessionTTLMinutes
	}
	if c.Forms.MaxSessions <= 0 {
		c.Forms.MaxSessions = def.Forms.MaxSessions
	}
	if c.Forms.MaxPhotoBytes <= 0 {
		c.Forms.MaxPhotoBytes = def.Forms.MaxPhotoBytes
	}
}

func (c *Config) applyEnv() {
	if key := os.Getenv(EnvHolidayAPIKey); key != "" {
		c.HolidayService.APIKey = key
	}
}

// Validate проверяет корректность конфигурации
func (c *Config) Validate() error {
	if c.Server.HTTPPort < 1 || c.Server.HTTPPort > 65535 {
		return fmt.Errorf("%w: server.http_port must be a valid TCP port (got %d)", ErrInvalidConfig, c.Server.HTTPPort)
	}

	if c.HolidayService.URL == "" {
		return fmt.Errorf("%w: holiday_service.url is required", ErrInvalidConfig)
	}

	if len(c.HolidayService.Country) != 2 {
		return fmt.Errorf("%w: holiday_service.country must be a two-letter code (got %q)", ErrInvalidConfig, c.HolidayService.Country)
	}

	if c.ApplicationService.URL == "" {
		return fmt.Errorf("%w: application_service.url is required", ErrInvalidConfig)
	}

	// Ответ на отправку заявки должен успеть уйти клиенту после ответа сервиса заявок
	if c.Server.WriteTimeout > 0 && c.Server.WriteTimeout <= c.ApplicationService.Timeout {
		return fmt.Errorf("%w: server.write_timeout (%ds) must exceed application_service.timeout (%ds)",
			ErrInvalidConfig, c.Server.WriteTimeout, c.ApplicationService.Timeout)
	}

	if c.Tracing.Enabled && c.Tracing.Endpoint == "" {
		return fmt.Errorf("%w: tracing.endpoint is required when tracing is enabled", ErrInvalidConfig)
	}

	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		return fmt.Errorf("%w: tracing.sample_ratio must be within [0, 1] (got %v)", ErrInvalidConfig, c.Tracing.SampleRatio)
	}

	if c.Booking.SlotCandidates < domain.MinSlotCandidates || c.Booking.SlotCandidates > domain.MaxSlotCandidates {
		return fmt.Errorf("%w: booking.slot_candidates must be %d or %d (got %d)",
			ErrInvalidConfig, domain.MinSlotCandidates, domain.MaxSlotCandidates, c.Booking.SlotCandidates)
	}

	if _, err := time.LoadLocation(c.Booking.Timezone); err != nil {
		return fmt.Errorf("%w: booking.timezone: %v", ErrInvalidConfig, err)
	}

	if _, err := c.Booking.Blocking(); err != nil {
		return fmt.Errorf("%w: booking.blocking_categories: %v", ErrInvalidConfig, err)
	}

	if _, err := c.Booking.Observances(); err != nil {
		return fmt.Errorf("%w: booking.observance_categories: %v", ErrInvalidConfig, err)
	}

	return nil
}

// Location возвращает часовой пояс бронирования
func (b BookingConfig) Location() *time.Location {
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// SlotDuration длительность одного слота
func (b BookingConfig) SlotDuration() time.Duration {
	return time.Duration(b.SlotDurationMinutes) * time.Minute
}

// Blocking возвращает категории праздников, блокирующие день
func (b BookingConfig) Blocking() ([]domain.HolidayCategory, error) {
	return parseCategories(b.BlockingCategories)
}

// Observances возвращает информационные категории праздников
func (b BookingConfig) Observances() ([]domain.HolidayCategory, error) {
	return parseCategories(b.ObservanceCategories)
}

// SessionTTL время жизни неактивной сессии формы
func (f FormsConfig) SessionTTL() time.Duration {
	return time.Duration(f.SessionTTLMinutes) * time.Minute
}

// Seconds переводит значение таймаута из конфига в time.Duration
func Seconds(v int) time.Duration {
	return time.Duration(v) * time.Second
}

func parseCategories(values []string) ([]domain.HolidayCategory, error) {
	result := make([]domain.HolidayCategory, 0, len(values))
	for _, v := range values {
		c, err := domain.ParseHolidayCategory(v)
		if err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	return result, nil
}

func categoriesToStrings(categories []domain.HolidayCategory) []string {
	result := make([]string, len(categories))
	for i, c := range categories {
		result[i] = string(c)
	}
	return result
}
