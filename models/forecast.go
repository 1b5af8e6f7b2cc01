package models

import (
	"errors"
	"fmt"
	"time"
)

// DailyForecast represents the daily forecast series from a provider.
// The three slices are parallel, indexed by forecast day; index 0 is today.
type DailyForecast struct {
	Provider     string    `json:"provider"`     // forecast data provider name
	WeatherCodes []int     `json:"weatherCodes"` // WMO weather codes
	TempMaxC     []float64 `json:"tempMaxC"`     // daily maximum, in Celsius
	TempMinC     []float64 `json:"tempMinC"`     // daily minimum, in Celsius
	FetchedAt    time.Time `json:"fetchedAt"`    // when this forecast was fetched
}

// Validate checks that the daily series are present, non-empty and of equal
// length. Anything else means the response structure is unusable.
func (f DailyForecast) Validate() error {
	if len(f.WeatherCodes) == 0 {
		return errors.New("daily weather code series is missing or empty")
	}
	if len(f.TempMaxC) != len(f.WeatherCodes) || len(f.TempMinC) != len(f.WeatherCodes) {
		return fmt.Errorf("daily series length mismatch: %d codes, %d max temps, %d min temps",
			len(f.WeatherCodes), len(f.TempMaxC), len(f.TempMinC))
	}
	return nil
}

// Today returns today's weather code and maximum temperature in Celsius.
func (f DailyForecast) Today() (code int, maxC float64, err error) {
	if err := f.Validate(); err != nil {
		return 0, 0, err
	}
	return f.WeatherCodes[0], f.TempMaxC[0], nil
}
