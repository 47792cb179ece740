package pages

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"manuscrito/internal/course"
	"manuscrito/internal/views/components"
	"manuscrito/internal/views/layout"
	"manuscrito/internal/views/unlock"
	"manuscrito/models"
)

// Admin tab identifiers, also used as the ?tab= query value.
const (
	TabModules  = "modulos"
	TabUsers    = "usuarios"
	TabSettings = "ajustes"

	defaultAdminTab = TabModules
)

var adminTabs = []components.Tab{
	{ID: TabModules, Label: "Módulos", Path: "/admin?tab=" + TabModules},
	{ID: TabUsers, Label: "Usuarios", Path: "/admin?tab=" + TabUsers},
	{ID: TabSettings, Label: "Ajustes", Path: "/admin?tab=" + TabSettings},
}

// NormalizeAdminTab maps tab to a known tab, falling back to the modules tab.
func NormalizeAdminTab(tab string) string {
	normalized := strings.ToLower(strings.TrimSpace(tab))
	if ValidAdminTab(normalized) {
		return normalized
	}
	return defaultAdminTab
}

// ValidAdminTab reports whether tab names an admin tab.
func ValidAdminTab(tab string) bool {
	for _, t := range adminTabs {
		if t.ID == tab {
			return true
		}
	}
	return false
}

// AdminView is everything the admin panel shows.
type AdminView struct {
	Tab        string
	Modules    []models.Module
	Roster     []models.Account
	UnlockMode string
	Notice     string
}

// Admin renders the admin panel.
func Admin(v AdminView) templ.Component {
	return layout.Layout("Panel de Administración · Los 12 Sellos", adminNav(), adminContent(v), true)
}

// AdminPartial renders the admin panel body for HTMX requests.
func AdminPartial(v AdminView) templ.Component {
	return layout.Body(adminNav(), adminContent(v), true)
}

// ModuleEditor renders the edit form for one module.
func ModuleEditor(m models.Module) templ.Component {
	return layout.Layout("Editando: "+m.Title, adminNav(), moduleEditorForm(m), true)
}

func adminNav() templ.Component {
	return backNav("/dashboard", "Dashboard", "Panel de Administración")
}

func adminContent(v AdminView) templ.Component {
	tab := NormalizeAdminTab(v.Tab)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out := components.NewWriter(w)
		out.Component(ctx, components.Tabs(tab, adminTabs))
		out.Raw(`<section data-admin-tab="`, tab, `">`)
		if v.Notice != "" {
			out.Raw(`<p class="notice">`)
			out.Text(v.Notice)
			out.Raw(`</p>`)
		}
		switch tab {
		case TabUsers:
			writeRoster(out, v.Roster)
		case TabSettings:
			writeSettings(out, v.UnlockMode)
		default:
			writeModuleList(out, v.Modules)
		}
		out.Raw(`</section>`)
		return out.Err()
	})
}

func writeModuleList(out *components.Writer, modules []models.Module) {
	out.Raw(`<div class="module-list">`)
	for _, m := range modules {
		day := strconv.Itoa(m.DayNumber)
		out.Raw(`<div class="module-card"><div class="module-icon">`)
		out.Text(m.Icon)
		out.Raw(`</div><div><p class="eyebrow">Día `, day, `</p><p class="module-title">`)
		out.Text(m.Title)
		out.Raw(`</p></div><a href="/admin/modulos/`, day, `">Editar</a></div>`)
	}
	out.Raw(`</div>`)
}

func writeRoster(out *components.Writer, roster []models.Account) {
	out.Raw(`<div class="card"><table><thead><tr><th>Nombre</th><th>Email</th><th>Día</th><th>Progreso</th></tr></thead><tbody>`)
	for _, a := range roster {
		out.Raw(`<tr><td>`)
		out.Text(a.Name)
		out.Raw(`</td><td>`)
		out.Text(a.Email)
		out.Raw(`</td><td>`, strconv.Itoa(min(a.LastUnlockedDay, course.TotalDays)), `/`, strconv.Itoa(course.TotalDays), `</td><td>`)
		out.Raw(strconv.Itoa(a.ProgressPercentage), `%`)
		out.Raw(`</td></tr>`)
	}
	if len(roster) == 0 {
		out.Raw(`<tr><td colspan="4">Sin usuarios registrados.</td></tr>`)
	}
	out.Raw(`</tbody></table></div>`)
}

func writeSettings(out *components.Writer, mode string) {
	current, _ := unlock.Resolve(mode)
	out.Raw(`<div class="card"><h3>Modo de Desbloqueo</h3><form class="stack" method="post" action="/admin/ajustes">`)
	for _, opt := range unlock.Options() {
		checked := ""
		if opt.Value == current.Value {
			checked = " checked"
		}
		out.Raw(`<label><span><input type="radio" name="unlock_mode" value="`, opt.Value, `"`, checked, `> `)
		out.Text(opt.Label)
		out.Raw(`</span><small>`)
		out.Text(opt.Description)
		out.Raw(`</small></label>`)
	}
	out.Raw(`<button class="button" type="submit">Guardar</button></form></div>`)
}

func moduleEditorForm(m models.Module) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out := components.NewWriter(w)
		out.Raw(`<h2>Editando: `)
		out.Text(m.Title)
		out.Raw(`</h2><form class="stack" method="post" action="/admin/modulos/`, strconv.Itoa(m.DayNumber), `">`)
		for _, f := range []struct{ label, name, value string }{
			{"Título", "title", m.Title},
			{"Cita Bíblica", "quote", m.Quote},
			{"Referencia", "quoteReference", m.QuoteReference},
		} {
			out.Raw(`<label>`, f.label, `<input type="text" name="`, f.name, `" value="`, templ.EscapeString(f.value), `"></label>`)
		}
		for _, f := range []struct{ label, name, value string }{
			{"Explicación", "explanation", m.Explanation},
			{"Aplicación Práctica", "application", m.Application},
			{"Afirmación", "affirmation", m.Affirmation},
		} {
			out.Raw(`<label>`, f.label, `<textarea name="`, f.name, `" rows="4">`)
			out.Text(f.value)
			out.Raw(`</textarea></label>`)
		}
		out.Raw(`<label>Audio (URL)<input type="url" name="audioUrl" placeholder="https://..." value="`, templ.EscapeString(m.AudioURL), `"></label>`)
		out.Raw(`<p><button class="button" type="submit">Guardar Cambios</button> <a href="/admin?tab=`, TabModules, `">Cancelar</a></p></form>`)
		return out.Err()
	})
}
