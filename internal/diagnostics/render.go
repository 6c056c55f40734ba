package diagnostics

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	ansiRed   = "\x1b[31m"
	ansiBold  = "\x1b[1m"
	ansiReset = "\x1b[0m"
)

// Renderer prints errors to a console.
type Renderer struct {
	Out   io.Writer
	Color bool
}

func NewRenderer(out io.Writer, color bool) *Renderer {
	return &Renderer{Out: out, Color: color}
}

// Render prints err with a source excerpt when src covers its location,
// and in the short form otherwise. Errors that are not *Error print as-is.
func (r *Renderer) Render(err error, src *SourceInfo) {
	fmt.Fprint(r.Out, r.Format(err, src))
}

// Format is Render into a string.
func (r *Renderer) Format(err error, src *SourceInfo) string {
	var derr *Error
	if !errors.As(err, &derr) {
		return r.paint(ansiRed, err.Error()) + "\n"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "At %s:\n", derr.Location)
	if src != nil && src.Filename == derr.Location.Filename {
		if line, ok := src.Line(derr.Location.Line); ok {
			sb.WriteString(r.excerpt(line, derr.Location.Col))
		}
	}
	fmt.Fprintf(&sb, "%s : %s\n", r.paint(ansiBold+ansiRed, derr.Kind.Name()), derr.Kind.Message())
	return sb.String()
}

func (r *Renderer) excerpt(line string, col int) string {
	pad := col - 1
	if pad < 0 {
		pad = 0
	}
	caret := strings.Repeat(" ", pad) + r.paint(ansiRed, "^")
	return fmt.Sprintf("|\n|\t%s\n|\t%s\n", line, caret)
}

func (r *Renderer) paint(code, s string) string {
	if !r.Color {
		return s
	}
	return code + s + ansiReset
}
