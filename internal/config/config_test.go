package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-WorkoutBooking/internal/config"
	"github.com/m04kA/SMC-WorkoutBooking/internal/domain"
)

const validConfig = `
[server]
http_port = 9090

[logs]
level = "debug"

[holiday_service]
url = "https://holidays.test"
api_key = "from-file"
country = "PL"

[application_service]
url = "https://forms.test/applications"
timeout = 5

[booking]
timezone = "Europe/Warsaw"
slot_candidates = 7
blocking_categories = ["NATIONAL_HOLIDAY", "PUBLIC_HOLIDAY"]
`

func TestParse_Valid(t *testing.T) {
	t.Setenv(config.EnvHolidayAPIKey, "")

	cfg, err := config.Parse(validConfig)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.Equal(t, "from-file", cfg.HolidayService.APIKey)
	assert.Equal(t, 7, cfg.Booking.SlotCandidates)
	assert.Equal(t, 5*time.Second, config.Seconds(cfg.ApplicationService.Timeout))

	blocking, err := cfg.Booking.Blocking()
	require.NoError(t, err)
	assert.Equal(t, []domain.HolidayCategory{domain.CategoryNationalHoliday, domain.CategoryPublicHoliday}, blocking)

	// Значения по умолчанию для невыставленных полей
	observances, err := cfg.Booking.Observances()
	require.NoError(t, err)
	assert.Equal(t, []domain.HolidayCategory{domain.CategoryObservance}, observances)
	assert.Equal(t, 30*time.Minute, cfg.Booking.SlotDuration())
	assert.Equal(t, "Europe/Warsaw", cfg.Booking.Location().String())
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 120*time.Minute, cfg.Forms.SessionTTL())
}

func TestParse_EnvOverridesAPIKey(t *testing.T) {
	t.Setenv(config.EnvHolidayAPIKey, "from-env")

	cfg, err := config.Parse(validConfig)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.HolidayService.APIKey)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{
			name: "MissingApplicationURL",
			data: `[holiday_service]
url = "https://holidays.test"`,
		},
		{
			name: "BadSlotCandidates",
			data: `[application_service]
url = "https://forms.test"
[booking]
slot_candidates = 9`,
		},
		{
			name: "UnknownCategory",
			data: `[application_service]
url = "https://forms.test"
[booking]
blocking_categories = ["DAY_OFF"]`,
		},
		{
			name: "UnknownTimezone",
			data: `[application_service]
url = "https://forms.test"
[booking]
timezone = "Mars/Olympus"`,
		},
		{
			name: "BadPort",
			data: `[server]
http_port = 70000
[application_service]
url = "https://forms.test"`,
		},
		{
			name: "WriteTimeoutNotAboveSubmitTimeout",
			data: `[server]
write_timeout = 30
[application_service]
url = "https://forms.test"
timeout = 30`,
		},
		{
			name: "BadCountry",
			data: `[holiday_service]
country = "POL"
[application_service]
url = "https://forms.test"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Parse(tt.data)
			require.Error(t, err)
			assert.ErrorIs(t, err, config.ErrInvalidConfig)
		})
	}
}

func TestParse_WriteTimeout(t *testing.T) {
	// Нулевой таймаут записи означает отсутствие ограничения
	cfg, err := config.Parse(`[server]
write_timeout = 0
[application_service]
url = "https://forms.test"
timeout = 60`)
	require.NoError(t, err)
	assert.Equal(t, 0, cfg.Server.WriteTimeout)

	def := config.Default()
	assert.Greater(t, def.Server.WriteTimeout, def.ApplicationService.Timeout)
}

func TestParse_MalformedTOML(t *testing.T) {
	_, err := config.Parse("[server\nhttp_port = ")
	require.Error(t, err)
	assert.NotErrorIs(t, err, config.ErrInvalidConfig)
}

func TestLoad_File(t *testing.T) {
	t.Setenv(config.EnvHolidayAPIKey, "")

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(validConfig), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://forms.test/applications", cfg.ApplicationService.URL)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.toml"))
	assert.Error(t, err)
}
