package components

import (
	"bytes"
	"context"
	"io"

	"github.com/a-h/templ"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	markdown = goldmark.New(goldmark.WithExtensions(extension.Typographer))
	sanitize = bluemonday.UGCPolicy()
)

// RenderMarkdown converts module copy to sanitized HTML.
func RenderMarkdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return sanitize.Sanitize(buf.String()), nil
}

// Markdown renders src as sanitized HTML inside a prose block.
func Markdown(src string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		html, err := RenderMarkdown(src)
		if err != nil {
			return err
		}
		out := NewWriter(w)
		out.Raw(`<div class="prose">`, html, `</div>`)
		return out.Err()
	})
}
