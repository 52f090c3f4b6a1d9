// Package printer renders a type registry's hierarchy for tooling output.
package printer

import (
	"io"

	"github.com/mvane/scenekit/pkg/typereg"
)

const DefaultIndentSize = 2

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs a human-readable indented tree.
	FormatText Format = "text"

	// FormatJSON outputs a nested JSON tree.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level (text format only).
	// Default: 2
	IndentSize int

	// MaxDepth limits recursion depth (0 = unlimited).
	// Default: 0 (unlimited)
	MaxDepth int

	// ShowIDs includes numeric handle ids next to type names.
	// Default: false
	ShowIDs bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:     FormatText,
		IndentSize: DefaultIndentSize,
	}
}

// Printer handles formatted output of a registry's type hierarchy.
type Printer struct {
	opts   Options
	writer io.Writer
	reg    *typereg.Registry
}

// New creates a new Printer over reg, writing to w.
func New(reg *typereg.Registry, w io.Writer, opts Options) *Printer {
	if opts.Format == "" {
		opts.Format = FormatText
	}
	if opts.IndentSize <= 0 {
		opts.IndentSize = DefaultIndentSize
	}
	return &Printer{opts: opts, writer: w, reg: reg}
}

// PrintTree renders the full registered hierarchy, roots first.
func (p *Printer) PrintTree() error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printTreeJSON()
	default:
		return p.printTreeText()
	}
}

// pruned reports whether depth is beyond the configured maximum. Depth is
// zero-based, so MaxDepth 1 prints only the roots.
func (p *Printer) pruned(depth int) bool {
	return p.opts.MaxDepth > 0 && depth >= p.opts.MaxDepth
}
