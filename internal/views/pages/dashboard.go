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

// Dashboard renders the learner's progress and module list.
func Dashboard(u models.User, modules []models.Module) templ.Component {
	return layout.Layout("Mi Jornada · Los 12 Sellos", appNav(u), dashboardContent(u, modules), false)
}

// DashboardPartial renders the dashboard body for HTMX requests.
func DashboardPartial(u models.User, modules []models.Module) templ.Component {
	return layout.Body(appNav(u), dashboardContent(u, modules), false)
}

// CurrentDayLine describes where u stands in the course.
func CurrentDayLine(u models.User, modules []models.Module) string {
	if progress.IsComplete(u) || len(modules) == 0 {
		return "¡Has completado todos los sellos!"
	}
	idx := min(max(u.LastUnlockedDay, 1), len(modules)) - 1
	return fmt.Sprintf("Día %d de %d — %s", u.LastUnlockedDay, course.TotalDays, modules[idx].Title)
}

func dashboardContent(u models.User, modules []models.Module) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out := components.NewWriter(w)
		out.Raw(`<h1>Bienvenido, `)
		out.Text(u.FirstName())
		out.Raw(`</h1><p>Tu jornada de activación espiritual continúa.</p>`)

		out.Raw(`<div class="card" data-progress="`, strconv.Itoa(u.ProgressPercentage), `">`)
		out.Raw(`<p class="eyebrow">Progreso del Manuscrito · `, strconv.Itoa(u.ProgressPercentage), `%</p>`)
		out.Component(ctx, components.ProgressBar(u.ProgressPercentage))
		out.Raw(`<p class="current-day">`)
		out.Text(CurrentDayLine(u, modules))
		out.Raw(`</p></div>`)

		out.Raw(`<div class="module-list">`)
		for _, m := range modules {
			out.Component(ctx, components.ModuleCard(m, progress.StatusOf(u, m.DayNumber)))
		}
		out.Raw(`</div>`)
		return out.Err()
	})
}
