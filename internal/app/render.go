package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/importcache/internal/core/domain"
	"go.trai.ch/importcache/internal/ui/output"
	"go.trai.ch/importcache/internal/ui/style"
)

// Report is the state of one inspected session.
type Report struct {
	Fingerprint string
	Rows        []domain.ItemStatus
	Stats       domain.LookupStats
}

type palette struct {
	ok      lipgloss.Style
	failed  lipgloss.Style
	pending lipgloss.Style
	dim     lipgloss.Style
	accent  lipgloss.Style
}

func newPalette(w io.Writer) palette {
	r := output.NewRenderer(w)
	return palette{
		ok:      r.NewStyle().Foreground(style.Green),
		failed:  r.NewStyle().Foreground(style.Red),
		pending: r.NewStyle().Foreground(style.Slate),
		dim:     r.NewStyle().Foreground(style.Slate),
		accent:  r.NewStyle().Foreground(style.Iris).Bold(true),
	}
}

func (p palette) icon(s domain.ItemState) string {
	switch s {
	case domain.StateResolved:
		return p.ok.Render(style.Check)
	case domain.StateFailed:
		return p.failed.Render(style.Cross)
	default:
		return p.pending.Render(style.Circle)
	}
}

// RenderReport writes the item tree of a session with one line per item.
func RenderReport(w io.Writer, r Report) error {
	p := newPalette(w)
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n\n", p.dim.Render("fingerprint"), r.Fingerprint)
	for _, row := range r.Rows {
		b.WriteString(strings.Repeat("  ", row.Depth()))
		b.WriteString(p.icon(row.State))
		b.WriteString(" ")
		b.WriteString(row.Path.Base())
		if tags := flagTags(row.Eager, row.Optional, row.Lazy, row.Submodule); tags != "" {
			b.WriteString(" ")
			b.WriteString(p.dim.Render(tags))
		}
		if row.Err != "" {
			b.WriteString("  ")
			b.WriteString(p.failed.Render(row.Err))
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "\n%d lookups: %d imports, %d attributes, %d failed\n",
		r.Stats.Total(), r.Stats.Imports, r.Stats.Attributes, r.Stats.Failures)

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderResolutions writes one line per requested path.
func RenderResolutions(w io.Writer, results []Resolution) error {
	p := newPalette(w)
	var b strings.Builder

	for _, res := range results {
		if res.Err != nil {
			fmt.Fprintf(&b, "%s %s  %s\n", p.icon(domain.StateFailed), res.Path, p.failed.Render(res.Err.Error()))
			continue
		}
		fmt.Fprintf(&b, "%s %s  %s\n", p.icon(domain.StateResolved), res.Path, p.dim.Render(fmt.Sprint(res.Handle)))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

// RenderDeclarations writes the declared tree.
func RenderDeclarations(w io.Writer, schema domain.Schema) error {
	p := newPalette(w)
	var b strings.Builder

	var walk func(decls []domain.Declaration, depth int)
	walk = func(decls []domain.Declaration, depth int) {
		for _, d := range decls {
			b.WriteString(strings.Repeat("  ", depth))
			if depth == 0 {
				b.WriteString(p.accent.Render(d.Key()))
			} else {
				b.WriteString(d.Key())
			}
			if d.Field != "" && d.Field != d.Name {
				b.WriteString(" ")
				b.WriteString(p.dim.Render("(" + d.Name + ")"))
			}
			if tags := flagTags(d.Eager, d.Optional, d.Lazy, d.Submodule); tags != "" {
				b.WriteString(" ")
				b.WriteString(p.dim.Render(tags))
			}
			b.WriteString("\n")
			walk(d.Children, depth+1)
		}
	}
	walk(schema.Modules, 0)

	fmt.Fprintf(&b, "\n%d declarations, fingerprint %s\n", len(schema.Paths()), schema.Fingerprint())

	_, err := io.WriteString(w, b.String())
	return err
}

func flagTags(eager, optional, lazy, submodule bool) string {
	var tags []string
	if eager {
		tags = append(tags, "eager")
	}
	if optional {
		tags = append(tags, "optional")
	}
	if lazy {
		tags = append(tags, "lazy")
	}
	if submodule {
		tags = append(tags, "submodule")
	}
	if len(tags) == 0 {
		return ""
	}
	return "[" + strings.Join(tags, ", ") + "]"
}
