// Package output builds terminal outputs with a consistent color profile.
package output

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// ColorProfile returns the color profile for w's terminal.
// NO_COLOR forces Ascii.
func ColorProfile() termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New creates a termenv.Output writing to w, or to stderr when w is nil.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(ColorProfile()),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}

// NewRenderer creates a lipgloss renderer for w that uses the same profile
// as New.
func NewRenderer(w io.Writer) *lipgloss.Renderer {
	if w == nil {
		w = os.Stdout
	}
	r := lipgloss.NewRenderer(w, termenv.WithTTY(true))
	r.SetColorProfile(ColorProfile())
	return r
}
