package datasource

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)

	require.Equal(t, 52.52, cfg.Latitude)
	require.Equal(t, 13.41, cfg.Longitude)
	require.Equal(t, "https://api.open-meteo.com", cfg.BaseURL)
	require.Equal(t, "template.svg", cfg.TemplatePath)
	require.Equal(t, "chat.svg", cfg.OutputPath)
	require.Nil(t, cfg.WeatherEmoji)
	require.Nil(t, cfg.DayWidths)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	content := `{
		"latitude": 40.71,
		"longitude": -74.01,
		"baseUrl": "https://example.test",
		"templatePath": "tmpl/card.svg",
		"outputPath": "out/card.svg",
		"weatherEmoji": {"0": "🔥"},
		"dayWidths": {"Monday": 300},
		"defaultDayWidth": 250
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	require.Equal(t, 40.71, cfg.Latitude)
	require.Equal(t, -74.01, cfg.Longitude)
	require.Equal(t, "https://example.test", cfg.BaseURL)
	require.Equal(t, "tmpl/card.svg", cfg.TemplatePath)
	require.Equal(t, "out/card.svg", cfg.OutputPath)
	require.Equal(t, "🔥", cfg.WeatherEmoji[0])
	require.Equal(t, 300, cfg.DayWidths["Monday"])
	require.Equal(t, 250, cfg.DefaultDayWidth)
}

func TestLoadConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"latitude": 59.33, "longitude": 18.07}`), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	require.Equal(t, 59.33, cfg.Latitude)
	require.Equal(t, "https://api.open-meteo.com", cfg.BaseURL)
	require.Equal(t, "chat.svg", cfg.OutputPath)
}

func TestLoadConfigBadJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))

	_, err := LoadConfig(path)
	require.Error(t, err)
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("WEATHER_LATITUDE", "35.68")
	t.Setenv("WEATHER_LONGITUDE", "139.69")
	t.Setenv("WEATHER_BASE_URL", "https://env.test")
	t.Setenv("WEATHER_TEMPLATE", "env.svg")
	t.Setenv("WEATHER_OUTPUT", "env-out.svg")

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.NoError(t, err)

	require.Equal(t, 35.68, cfg.Latitude)
	require.Equal(t, 139.69, cfg.Longitude)
	require.Equal(t, "https://env.test", cfg.BaseURL)
	require.Equal(t, "env.svg", cfg.TemplatePath)
	require.Equal(t, "env-out.svg", cfg.OutputPath)
}

func TestLoadConfigInvalidEnvCoordinate(t *testing.T) {
	t.Setenv("WEATHER_LATITUDE", "north-ish")

	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}
