package models

// RenderContext holds the derived scalars substituted into the template.
// It is built fresh for every run and never mutated afterwards.
type RenderContext struct {
	DegC        int    // today's max temperature, whole degrees Celsius
	DegF        int    // today's max temperature, whole degrees Fahrenheit
	Emoji       string // glyph for today's weather code
	Timestamp   string // render time label (Unix milliseconds)
	Weekday     string // long weekday name from the local clock
	BubbleWidth int    // pixel width of the day bubble for that weekday
}
