// Package derive turns a fetched forecast into the display values the
// template consumes.
package derive

import (
	"math"
	"strconv"
	"time"

	"weather-card/models"
)

// Deriver computes display values, with optional table overrides.
// The zero value uses the built-in tables and is ready to use.
type Deriver struct {
	Emoji        map[int]string // overrides wmoEmoji when non-nil
	Widths       map[string]int // overrides dayWidths when non-nil
	DefaultWidth int            // overrides DefaultDayWidth when non-zero
}

// CelsiusToFahrenheit converts using F = C × 9/5 + 32, rounded to the
// nearest integer. Conversion never fails.
func CelsiusToFahrenheit(c float64) int {
	return int(math.Round(c*9.0/5.0 + 32.0))
}

// RoundCelsius rounds a temperature to the nearest whole degree.
func RoundCelsius(c float64) int {
	return int(math.Round(c))
}

// EmojiFor returns the glyph for a WMO weather code. Unknown codes get
// UnknownEmoji rather than an error.
func (d Deriver) EmojiFor(code int) string {
	table := d.Emoji
	if table == nil {
		table = wmoEmoji
	}
	if glyph, ok := table[code]; ok {
		return glyph
	}
	return UnknownEmoji
}

// WidthFor returns the day bubble width for a long weekday name, falling
// back to the default width for names missing from the table.
func (d Deriver) WidthFor(weekday string) int {
	table := d.Widths
	if table == nil {
		table = dayWidths
	}
	if w, ok := table[weekday]; ok {
		return w
	}
	if d.DefaultWidth != 0 {
		return d.DefaultWidth
	}
	return DefaultDayWidth
}

// BuildContext derives the render values for today's weather code and max
// temperature at the given wall-clock time. The weekday comes from the local
// clock while the API resolves its own timezone; near midnight the two
// notions of "today" can disagree.
func (d Deriver) BuildContext(code int, maxC float64, now time.Time) models.RenderContext {
	weekday := now.Weekday().String()
	return models.RenderContext{
		DegC:        RoundCelsius(maxC),
		DegF:        CelsiusToFahrenheit(maxC),
		Emoji:       d.EmojiFor(code),
		Timestamp:   strconv.FormatInt(now.UnixMilli(), 10),
		Weekday:     weekday,
		BubbleWidth: d.WidthFor(weekday),
	}
}
