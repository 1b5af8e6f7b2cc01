package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	valid := DailyForecast{
		WeatherCodes: []int{3, 0},
		TempMaxC:     []float64{18.4, 21.0},
		TempMinC:     []float64{10.1, 12.3},
	}
	require.NoError(t, valid.Validate())

	empty := DailyForecast{}
	require.Error(t, empty.Validate())

	noCodes := DailyForecast{TempMaxC: []float64{18.4}, TempMinC: []float64{10.1}}
	require.Error(t, noCodes.Validate())

	mismatch := DailyForecast{
		WeatherCodes: []int{3, 0},
		TempMaxC:     []float64{18.4},
		TempMinC:     []float64{10.1, 12.3},
	}
	require.Error(t, mismatch.Validate())
}

func TestToday(t *testing.T) {
	forecast := DailyForecast{
		WeatherCodes: []int{3, 0},
		TempMaxC:     []float64{18.4, 21.0},
		TempMinC:     []float64{10.1, 12.3},
	}

	code, maxC, err := forecast.Today()
	require.NoError(t, err)
	require.Equal(t, 3, code)
	require.Equal(t, 18.4, maxC)

	_, _, err = DailyForecast{}.Today()
	require.Error(t, err)
}
