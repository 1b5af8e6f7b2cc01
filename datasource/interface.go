package datasource

import (
	"context"

	"weather-card/models"
)

// ForecastSource is an interface for services that can fetch daily weather forecasts
type ForecastSource interface {
	// FetchForecast fetches the daily forecast for the given coordinates
	FetchForecast(ctx context.Context, lat, lon float64) (models.DailyForecast, error)

	// Name returns the source's name
	Name() string
}
