package config

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/juju/errors"
)

// Theme represents configurable colors for the editor screen.
type Theme struct {
	// Base UI
	UIBackground tcell.Color
	UIForeground tcell.Color

	// Status bar
	StatusBackground tcell.Color
	StatusForeground tcell.Color

	// Cell under the cursor
	CursorText tcell.Color
	CursorBG   tcell.Color
}

// DefaultTheme returns the built-in theme used when none is configured.
func DefaultTheme() Theme {
	return Theme{
		UIBackground: tcell.ColorBlack,
		UIForeground: tcell.ColorWhite,

		StatusBackground: tcell.ColorWhite,
		StatusForeground: tcell.ColorBlack,

		CursorText: tcell.ColorBlack,
		CursorBG:   tcell.ColorBlue,
	}
}

// TerminalTheme leverages terminal-provided defaults and ANSI palette colors
// so the editor follows the user's terminal theme.
func TerminalTheme() Theme {
	return Theme{
		UIBackground: tcell.ColorDefault,
		UIForeground: tcell.ColorDefault,

		StatusBackground: tcell.ColorGray,
		StatusForeground: tcell.ColorDefault,

		CursorText: tcell.ColorDefault,
		CursorBG:   tcell.ColorBlue,
	}
}

// BuiltinThemes exposes a couple of presets by name.
var BuiltinThemes = map[string]Theme{
	"default":  DefaultTheme(),
	"light":    DefaultTheme(),
	"terminal": TerminalTheme(),
	"dark": {
		UIBackground: tcell.ColorBlack,
		UIForeground: tcell.ColorWhite,

		StatusBackground: tcell.ColorGray,
		StatusForeground: tcell.ColorWhite,

		CursorText: tcell.ColorBlack,
		CursorBG:   tcell.ColorLightBlue,
	},
}

// apply overrides individual colors by key, e.g. "status_bg": "#336699".
func (t *Theme) apply(colors map[string]string) error {
	for key, value := range colors {
		var dst *tcell.Color
		switch strings.ToLower(key) {
		case "ui_bg":
			dst = &t.UIBackground
		case "ui_fg":
			dst = &t.UIForeground
		case "status_bg":
			dst = &t.StatusBackground
		case "status_fg":
			dst = &t.StatusForeground
		case "cursor_fg":
			dst = &t.CursorText
		case "cursor_bg":
			dst = &t.CursorBG
		default:
			return errors.Errorf("unknown color key %q", key)
		}
		c := ParseColor(value, tcell.ColorDefault)
		if c == tcell.ColorDefault {
			return errors.Errorf("invalid color %q for %s", value, key)
		}
		*dst = c
	}
	return nil
}

// ParseColor returns a tcell.Color from a name or hex like "#aabbcc".
// If parsing fails, it returns the provided fallback.
func ParseColor(s string, fallback tcell.Color) tcell.Color {
	if s == "" {
		return fallback
	}
	// tcell.GetColor supports W3C names or #RRGGBB (case-insensitive)
	c := tcell.GetColor(strings.ToLower(s))
	if c == tcell.ColorDefault {
		return fallback
	}
	return c
}
