package pages

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/a-h/templ"

	"manuscrito/internal/course"
	"manuscrito/internal/progress"
	"manuscrito/internal/views/components"
	"manuscrito/internal/views/layout"
	"manuscrito/models"
)

// ModuleDetail renders the reader for one unlocked module.
func ModuleDetail(u models.User, m models.Module) templ.Component {
	return layout.Layout(m.Title+" · Los 12 Sellos", moduleNav(m), moduleContent(u, m), false)
}

// ModuleDetailPartial renders the reader body for HTMX requests.
func ModuleDetailPartial(u models.User, m models.Module) templ.Component {
	return layout.Body(moduleNav(m), moduleContent(u, m), false)
}

func moduleNav(m models.Module) templ.Component {
	return backNav("/dashboard", "Volver", fmt.Sprintf("Día %d de %d", m.DayNumber, course.TotalDays))
}

func moduleContent(u models.User, m models.Module) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out := components.NewWriter(w)
		out.Raw(`<header class="center"><div class="seal-glyph">`)
		out.Text(m.Icon)
		out.Raw(`</div><p class="eyebrow">`)
		out.Text(m.Subtitle)
		out.Raw(`</p><h1>`)
		out.Text(m.Title)
		out.Raw(`</h1></header>`)

		out.Raw(`<blockquote class="card center"><p class="quote">“`)
		out.Text(m.Quote)
		out.Raw(`”</p><p class="eyebrow">`)
		out.Text(m.QuoteReference)
		out.Raw(`</p></blockquote>`)

		out.Raw(`<section class="card"><h2>Revelación del Código</h2>`)
		out.Component(ctx, components.Markdown(m.Explanation))
		out.Raw(`</section>`)

		out.Raw(`<section class="card"><h2>Aplicación Práctica</h2>`)
		out.Component(ctx, components.Markdown(m.Application))
		out.Raw(`</section>`)

		out.Raw(`<section class="card center"><h2>Afirmación Espiritual</h2><p class="quote">“`)
		out.Text(m.Affirmation)
		out.Raw(`”</p></section>`)

		out.Raw(`<section class="card"><p class="eyebrow">Narración del Código</p>`)
		if m.AudioURL != "" {
			out.Raw(`<audio controls preload="none" src="`, templ.EscapeString(string(templ.URL(m.AudioURL))), `"></audio>`)
		} else {
			out.Raw(`<p>Audio próximamente</p>`)
		}
		out.Raw(`</section>`)

		out.Raw(`<div class="center">`)
		next := strconv.Itoa(m.DayNumber + 1)
		switch {
		case progress.IsCurrent(u, m.DayNumber):
			out.Raw(`<form method="post" action="/modulo/`, strconv.Itoa(m.DayNumber), `/completar"><button class="button" type="submit">`)
			if m.DayNumber < course.TotalDays {
				out.Raw(`Completar y Desbloquear Día `, next)
			} else {
				out.Raw(`Completar el Manuscrito`)
			}
			out.Raw(`</button></form>`)
		case m.DayNumber < course.TotalDays:
			out.Raw(`<a href="/modulo/`, next, `">Siguiente Código →</a>`)
		default:
			out.Raw(`<a href="/dashboard">Volver al panel</a>`)
		}
		out.Raw(`</div>`)
		return out.Err()
	})
}
