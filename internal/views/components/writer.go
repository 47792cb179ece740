// Package components holds the reusable view fragments shared by the course pages.
package components

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Writer writes markup and remembers the first error, so a component can emit a
// sequence of fragments and check once at the end.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Raw writes trusted markup as-is.
func (w *Writer) Raw(parts ...string) {
	for _, p := range parts {
		if w.err != nil {
			return
		}
		_, w.err = io.WriteString(w.w, p)
	}
}

// Text writes s HTML-escaped.
func (w *Writer) Text(s string) {
	w.Raw(templ.EscapeString(s))
}

// Component renders c in place.
func (w *Writer) Component(ctx context.Context, c templ.Component) {
	if w.err != nil || c == nil {
		return
	}
	w.err = c.Render(ctx, w.w)
}

// Err returns the first write or render error.
func (w *Writer) Err() error {
	return w.err
}
