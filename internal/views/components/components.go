package components

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"manuscrito/internal/progress"
	"manuscrito/models"
)

// NavLink is an entry in the top navigation bar. An empty Path renders plain text.
type NavLink struct {
	Label string
	Path  string
	// Post renders the link as a small form, for actions such as logout.
	Post bool
}

// NavBar renders the sticky header with a brand link and the given links.
func NavBar(brandPath, brand string, links []NavLink) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out := NewWriter(w)
		out.Raw(`<nav class="topbar"><a class="brand" href="`, templ.EscapeString(brandPath), `">`)
		out.Text(brand)
		out.Raw(`</a><div class="topbar-links">`)
		for _, link := range links {
			if link.Path == "" {
				out.Raw(`<span class="eyebrow">`)
				out.Text(link.Label)
				out.Raw(`</span>`)
				continue
			}
			if link.Post {
				out.Raw(`<form method="post" action="`, templ.EscapeString(link.Path), `"><button type="submit" class="link-button">`)
				out.Text(link.Label)
				out.Raw(`</button></form>`)
				continue
			}
			out.Raw(`<a href="`, templ.EscapeString(link.Path), `">`)
			out.Text(link.Label)
			out.Raw(`</a>`)
		}
		out.Raw(`</div></nav>`)
		return out.Err()
	})
}

// Flash renders a form message; nothing is written for an empty message.
func Flash(message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if message == "" {
			return nil
		}
		out := NewWriter(w)
		out.Raw(`<p class="flash" role="alert">`)
		out.Text(message)
		out.Raw(`</p>`)
		return out.Err()
	})
}

// ProgressBar renders a labelled bar for percent, clamped to 0..100.
func ProgressBar(percent int) templ.Component {
	percent = min(max(percent, 0), 100)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out := NewWriter(w)
		out.Raw(fmt.Sprintf(`<div class="progress" role="progressbar" aria-valuemin="0" aria-valuemax="100" aria-valuenow="%d">`, percent))
		out.Raw(fmt.Sprintf(`<div class="progress-fill" style="width: %d%%"></div></div>`, percent))
		return out.Err()
	})
}

// SealCard is one tile of the landing page grid.
func SealCard(day int, glyph, name string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out := NewWriter(w)
		out.Raw(`<div class="seal"><div class="seal-glyph">`)
		out.Text(glyph)
		out.Raw(`</div><p class="eyebrow">Día `, strconv.Itoa(day), `</p><p class="seal-name">`)
		out.Text(name)
		out.Raw(`</p></div>`)
		return out.Err()
	})
}

// ModuleCard renders a dashboard entry. Locked modules are not links.
func ModuleCard(m models.Module, status progress.Status) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out := NewWriter(w)
		day := strconv.Itoa(m.DayNumber)
		if status == progress.StatusLocked {
			out.Raw(`<div class="module-card" data-status="locked"><div class="module-icon">🔒</div>`)
		} else {
			out.Raw(`<a class="module-card" data-status="`, string(status), `" href="/modulo/`, day, `"><div class="module-icon">`)
			if status == progress.StatusCompleted {
				out.Raw(`✓`)
			} else {
				out.Text(m.Icon)
			}
			out.Raw(`</div>`)
		}
		out.Raw(`<div><p class="eyebrow">Día `, day, `</p><p class="module-title">`)
		out.Text(m.Title)
		out.Raw(`</p></div>`)
		if status == progress.StatusLocked {
			out.Raw(`</div>`)
		} else {
			out.Raw(`</a>`)
		}
		return out.Err()
	})
}

// Tab is one entry of a tab strip.
type Tab struct {
	ID    string
	Label string
	Path  string
}

// Tabs renders a tab strip marking active as the selected tab.
func Tabs(active string, tabs []Tab) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out := NewWriter(w)
		out.Raw(`<div class="tabs">`)
		for _, tab := range tabs {
			out.Raw(`<a class="tab" href="`, templ.EscapeString(tab.Path), `" data-tab="`, templ.EscapeString(tab.ID), `" data-state="`, linkState(tab.ID, active), `">`)
			out.Text(tab.Label)
			out.Raw(`</a>`)
		}
		out.Raw(`</div>`)
		return out.Err()
	})
}

func linkState(id, active string) string {
	if id == active {
		return "active"
	}
	return "inactive"
}
