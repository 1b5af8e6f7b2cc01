package datasource

import (
	"fmt"
	"os"
	"strconv"

	json "github.com/goccy/go-json"
)

// Config represents the application configuration
type Config struct {
	// Coordinates the forecast is fetched for
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	// Forecast API base URL (scheme and host, no path)
	BaseURL string `json:"baseUrl"`

	// Template and output file paths
	TemplatePath string `json:"templatePath"`
	OutputPath   string `json:"outputPath"`

	// Display table overrides; empty values fall back to the built-in tables
	WeatherEmoji    map[int]string `json:"weatherEmoji"`
	DayWidths       map[string]int `json:"dayWidths"`
	DefaultDayWidth int            `json:"defaultDayWidth"`
}

// LoadConfig loads configuration from a JSON file, then applies environment
// overrides. A missing file is not an error: the built-in defaults are used.
func LoadConfig(filename string) (*Config, error) {
	config := DefaultConfig()

	file, err := os.Open(filename)
	if err != nil {
		if os.IsNotExist(err) {
			if err := config.applyEnv(); err != nil {
				return nil, err
			}
			return config, nil
		}
		return nil, err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", filename, err)
	}

	if err := config.applyEnv(); err != nil {
		return nil, err
	}
	return config, nil
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	return &Config{
		Latitude:     52.52,
		Longitude:    13.41,
		BaseURL:      "https://api.open-meteo.com",
		TemplatePath: "template.svg",
		OutputPath:   "chat.svg",
	}
}

// applyEnv overrides config fields from WEATHER_* environment variables.
func (c *Config) applyEnv() error {
	if v := os.Getenv("WEATHER_LATITUDE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid WEATHER_LATITUDE %q: %w", v, err)
		}
		c.Latitude = f
	}
	if v := os.Getenv("WEATHER_LONGITUDE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid WEATHER_LONGITUDE %q: %w", v, err)
		}
		c.Longitude = f
	}
	if v := os.Getenv("WEATHER_BASE_URL"); v != "" {
		c.BaseURL = v
	}
	if v := os.Getenv("WEATHER_TEMPLATE"); v != "" {
		c.TemplatePath = v
	}
	if v := os.Getenv("WEATHER_OUTPUT"); v != "" {
		c.OutputPath = v
	}
	return nil
}
