// Package ui provides pterm helpers for terminal output.
package ui

import "github.com/pterm/pterm"

// DarkTheme selects the bright color variants suited to dark terminals.
var DarkTheme bool

// tint renders a with the light or dark variant of a color pair.
func tint(light, dark pterm.Color, a any) string {
	if DarkTheme {
		return dark.Sprint(a)
	}

	return light.Sprint(a)
}

func Green(a any) string   { return tint(pterm.FgGreen, pterm.FgLightGreen, a) }
func Magenta(a any) string { return tint(pterm.FgMagenta, pterm.FgLightMagenta, a) }
func Blue(a any) string    { return tint(pterm.FgBlue, pterm.FgLightBlue, a) }
func Cyan(a any) string    { return tint(pterm.FgCyan, pterm.FgLightCyan, a) }

// Highlight renders a in the theme's emphasis color.
func Highlight(a any) string { return tint(pterm.FgBlack, pterm.FgLightWhite, a) }
