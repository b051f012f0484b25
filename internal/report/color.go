package report

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorMode decides when ANSI colour is written.
type ColorMode int

const (
	// ColorAuto colours a stream only when it is a terminal.
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

var ErrUnknownColorMode = errors.New("unknown color mode")

func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

// ParseColorMode accepts auto, always and never. Booleans map to auto
// and never so that `color: false` works in a config file.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto", "true":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never", "false":
		return ColorNever, nil
	}
	return ColorAuto, fmt.Errorf("%w: %q", ErrUnknownColorMode, s)
}

type fdWriter interface {
	Fd() uintptr
}

// colorizes reports whether output to w should carry ANSI escapes.
func colorizes(w io.Writer, mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok || os.Getenv("TERM") == "dumb" {
		return false
	}
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func paint(c *color.Color, enabled bool) *color.Color {
	if enabled {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c
}
