// Package pipeline runs one fetch → parse → derive → render pass.
package pipeline

import (
	"context"
	"fmt"
	"log"
	"time"

	"weather-card/datasource"
	"weather-card/derive"
	"weather-card/render"

	"github.com/google/uuid"
)

// Stage identifies the step a run is currently executing. A run moves through
// the stages in order; the first failing stage ends the run.
type Stage int

const (
	StageStart Stage = iota
	StageFetching
	StageParsing
	StageDeriving
	StageRendering
	StageDone
	StageFailed
)

func (s Stage) String() string {
	switch s {
	case StageStart:
		return "start"
	case StageFetching:
		return "fetching"
	case StageParsing:
		return "parsing"
	case StageDeriving:
		return "deriving"
	case StageRendering:
		return "rendering"
	case StageDone:
		return "done"
	case StageFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Runner wires the forecast source, deriver and renderer into a single-shot
// run. No stage is retried and no work happens after the first failure.
type Runner struct {
	Source       datasource.ForecastSource
	Deriver      derive.Deriver
	Renderer     render.Renderer
	Latitude     float64
	Longitude    float64
	FetchTimeout time.Duration
	Now          func() time.Time // clock hook for tests; defaults to time.Now
}

// Run executes the stages sequentially and returns the first error, wrapped
// with the stage it happened in. Every transition is logged with a run ID.
func (r *Runner) Run(ctx context.Context) error {
	runID := uuid.New().String()
	now := time.Now
	if r.Now != nil {
		now = r.Now
	}
	timeout := r.FetchTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	stage := StageFetching
	log.Printf("[run %s] %s: forecast for %.2f,%.2f from %s", runID, stage, r.Latitude, r.Longitude, r.Source.Name())
	fetchCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	forecast, err := r.Source.FetchForecast(fetchCtx, r.Latitude, r.Longitude)
	if err != nil {
		return r.fail(runID, stage, err)
	}

	stage = StageParsing
	code, maxC, err := forecast.Today()
	if err != nil {
		return r.fail(runID, stage, err)
	}
	log.Printf("[run %s] %s: weather code %d, max %.1f°C", runID, stage, code, maxC)

	stage = StageDeriving
	rc := r.Deriver.BuildContext(code, maxC, now())
	log.Printf("[run %s] %s: %s %d°C/%d°F on %s (bubble %dpx)", runID, stage, rc.Emoji, rc.DegC, rc.DegF, rc.Weekday, rc.BubbleWidth)

	stage = StageRendering
	if err := r.Renderer.Render(rc); err != nil {
		return r.fail(runID, stage, err)
	}

	log.Printf("[run %s] %s: wrote %s", runID, StageDone, r.Renderer.OutputPath)
	return nil
}

func (r *Runner) fail(runID string, stage Stage, err error) error {
	log.Printf("[run %s] %s: %v", runID, StageFailed, err)
	return fmt.Errorf("%s: %w", stage, err)
}
