package main

import (
	"context"
	"flag"
	"log"
	"time"

	"weather-card/datasource"
	"weather-card/derive"
	"weather-card/pipeline"
	"weather-card/render"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}

	// Parse command line arguments
	configFile := flag.String("config", "config.json", "Path to configuration file")
	timeout := flag.Duration("timeout", 10*time.Second, "Forecast request timeout")
	enableRateLimiting := flag.Bool("rate-limit", true, "Enable API rate limiting")
	flag.Parse()

	// Load configuration (built-in defaults when the file does not exist)
	config, err := datasource.LoadConfig(*configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create the forecast source
	var source datasource.ForecastSource = datasource.NewOpenMeteoProvider(config.BaseURL, *timeout)
	if *enableRateLimiting {
		// Open-Meteo allows 10k calls/day on the free tier; one call per
		// second with a small burst keeps back-to-back scheduler invocations
		// well under that.
		source = datasource.NewRateLimitedForecastSource(source, 1.0, 3)
		log.Println("Applied rate limiting to Open-Meteo source")
	}

	runner := &pipeline.Runner{
		Source: source,
		Deriver: derive.Deriver{
			Emoji:        config.WeatherEmoji,
			Widths:       config.DayWidths,
			DefaultWidth: config.DefaultDayWidth,
		},
		Renderer: render.Renderer{
			TemplatePath: config.TemplatePath,
			OutputPath:   config.OutputPath,
		},
		Latitude:     config.Latitude,
		Longitude:    config.Longitude,
		FetchTimeout: *timeout,
	}

	if err := runner.Run(context.Background()); err != nil {
		log.Fatalf("Run failed: %v", err)
	}
}
