// Package output renders probe results and run summaries for the terminal.
package output

import (
	"github.com/fatih/color"
)

// ColorHelper provides utilities for coloring probe output.
type ColorHelper struct {
	enabled bool
}

// NewColorHelper creates a new color helper.
// Colors are enabled only when outputting to a terminal.
func NewColorHelper() *ColorHelper {
	return &ColorHelper{
		enabled: !color.NoColor,
	}
}

// FormatSupport renders a colored supported/unsupported status cell.
func (c *ColorHelper) FormatSupport(supported bool) string {
	if supported {
		return c.Success("✓ SUPPORTED")
	}

	return c.Failure("✗ UNSUPPORTED")
}

// Success returns green colored text.
func (c *ColorHelper) Success(text string) string {
	if !c.enabled {
		return text
	}
	return color.GreenString(text)
}

// Failure returns red colored text.
func (c *ColorHelper) Failure(text string) string {
	if !c.enabled {
		return text
	}
	return color.RedString(text)
}

// Warning returns yellow colored text.
func (c *ColorHelper) Warning(text string) string {
	if !c.enabled {
		return text
	}
	return color.YellowString(text)
}

// Info returns cyan colored text.
func (c *ColorHelper) Info(text string) string {
	if !c.enabled {
		return text
	}
	return color.CyanString(text)
}

// Muted returns gray colored text.
func (c *ColorHelper) Muted(text string) string {
	if !c.enabled {
		return text
	}
	return color.New(color.FgHiBlack).Sprint(text)
}

// Header returns blue bold text for section headings.
func (c *ColorHelper) Header(text string) string {
	if !c.enabled {
		return text
	}
	return color.New(color.FgBlue, color.Bold).Sprint(text)
}
