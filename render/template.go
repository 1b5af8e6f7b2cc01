// Package render substitutes derived values into an SVG template on disk.
package render

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"weather-card/models"
)

// Renderer reads a template file, replaces the placeholder tokens and writes
// the result to the output path.
type Renderer struct {
	TemplatePath string
	OutputPath   string
}

// Render performs literal, global substitution of every placeholder token.
// Tokens not in the known set are left untouched. The output file is
// overwritten wholesale; nothing is written when the template cannot be read.
func (r Renderer) Render(rc models.RenderContext) error {
	raw, err := os.ReadFile(r.TemplatePath)
	if err != nil {
		return fmt.Errorf("failed to read template %s: %w", r.TemplatePath, err)
	}
	if !utf8.Valid(raw) {
		return fmt.Errorf("template %s is not valid UTF-8 text", r.TemplatePath)
	}

	replacer := strings.NewReplacer(
		"{degF}", strconv.Itoa(rc.DegF),
		"{degC}", strconv.Itoa(rc.DegC),
		"{weatherEmoji}", rc.Emoji,
		"{psTime}", rc.Timestamp,
		"{todayDay}", rc.Weekday,
		"{dayBubbleWidth}", strconv.Itoa(rc.BubbleWidth),
	)
	rendered := replacer.Replace(string(raw))

	if err := os.WriteFile(r.OutputPath, []byte(rendered), 0o644); err != nil {
		return fmt.Errorf("failed to write output %s: %w", r.OutputPath, err)
	}
	return nil
}
