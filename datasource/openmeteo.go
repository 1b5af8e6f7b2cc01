package datasource

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	json "github.com/goccy/go-json"

	"weather-card/models"
)

// OpenMeteoProvider implements the ForecastSource interface against the
// Open-Meteo forecast API. The API requires no key.
type OpenMeteoProvider struct {
	baseURL    string
	httpClient *http.Client
}

// NewOpenMeteoProvider creates a new Open-Meteo provider. An empty baseURL
// selects the public endpoint.
func NewOpenMeteoProvider(baseURL string, timeout time.Duration) *OpenMeteoProvider {
	if baseURL == "" {
		baseURL = "https://api.open-meteo.com"
	}
	return &OpenMeteoProvider{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Name returns the provider name
func (p *OpenMeteoProvider) Name() string {
	return "Open-Meteo"
}

// FetchForecast fetches the daily forecast for the given coordinates.
// The API resolves the timezone itself (timezone=auto), so index 0 of the
// returned series is "today" as the API sees it.
func (p *OpenMeteoProvider) FetchForecast(ctx context.Context, lat, lon float64) (models.DailyForecast, error) {
	// Build URL
	endpoint := fmt.Sprintf("%s/v1/forecast", p.baseURL)
	params := url.Values{}
	params.Add("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Add("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	params.Add("daily", "weather_code,temperature_2m_max,temperature_2m_min")
	params.Add("timezone", "auto")

	// Create request
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return models.DailyForecast{}, fmt.Errorf("failed to create request: %w", err)
	}

	// Execute request
	resp, err := p.httpClient.Do(req)
	if err != nil {
		return models.DailyForecast{}, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	// Read response body
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.DailyForecast{}, &TransportError{Err: err}
	}

	// Check for error status code
	if resp.StatusCode != http.StatusOK {
		return models.DailyForecast{}, &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	// Parse response
	var response struct {
		Daily struct {
			WeatherCode []int     `json:"weather_code"`
			TempMax     []float64 `json:"temperature_2m_max"`
			TempMin     []float64 `json:"temperature_2m_min"`
		} `json:"daily"`
	}

	if err := json.Unmarshal(body, &response); err != nil {
		return models.DailyForecast{}, &DecodeError{Err: err, Body: string(body)}
	}

	forecast := models.DailyForecast{
		Provider:     p.Name(),
		WeatherCodes: response.Daily.WeatherCode,
		TempMaxC:     response.Daily.TempMax,
		TempMinC:     response.Daily.TempMin,
		FetchedAt:    time.Now(),
	}

	if err := forecast.Validate(); err != nil {
		return models.DailyForecast{}, &StructureError{Err: err, Body: string(body)}
	}

	return forecast, nil
}

// Verify that the provider implements the required interface
var _ ForecastSource = (*OpenMeteoProvider)(nil)
