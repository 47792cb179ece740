package pages

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"

	"manuscrito/internal/course"
	"manuscrito/models"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	if err := c.Render(context.Background(), &buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	return buf.String()
}

func learner(day, percent int) models.User {
	return models.User{ID: "u-1", Name: "Ana Pérez", Email: "ana@email.com", LastUnlockedDay: day, ProgressPercentage: percent}
}

func TestNormalizeAdminTab(t *testing.T) {
	if got := NormalizeAdminTab("  USUARIOS "); got != TabUsers {
		t.Fatalf("expected normalized tab to be %q, got %q", TabUsers, got)
	}
	if got := NormalizeAdminTab("unknown"); got != defaultAdminTab {
		t.Fatalf("expected fallback to default tab, got %q", got)
	}
	if got := NormalizeAdminTab(" "); got != defaultAdminTab {
		t.Fatalf("expected fallback for empty tab, got %q", got)
	}
}

func TestValidAdminTab(t *testing.T) {
	for _, tab := range []string{TabModules, TabUsers, TabSettings} {
		if !ValidAdminTab(tab) {
			t.Fatalf("expected %s to be valid", tab)
		}
	}
	if ValidAdminTab("invalid") {
		t.Fatal("expected invalid tab to be rejected")
	}
}

func TestLandingListsSeals(t *testing.T) {
	out := render(t, Landing(course.SealNames()))
	for _, token := range []string{"El Manuscrito", "Fe", "Activación", "Día 12", `href="/signup"`} {
		if !strings.Contains(out, token) {
			t.Fatalf("expected landing to contain %q", token)
		}
	}
}

func TestLoginEscapesEmailAndShowsMessage(t *testing.T) {
	out := render(t, Login("Credenciales inválidas", `"><script>`))
	if strings.Contains(out, `"><script>`) {
		t.Fatalf("expected email to be escaped: %s", out)
	}
	if !strings.Contains(out, "Credenciales inválidas") {
		t.Fatalf("expected message to be rendered: %s", out)
	}

	partial := render(t, LoginPartial("", "ana@email.com"))
	if strings.Contains(partial, "<html") || !strings.Contains(partial, `value="ana@email.com"`) {
		t.Fatalf("unexpected partial output: %s", partial)
	}
}

func TestSignupRendersFields(t *testing.T) {
	out := render(t, Signup("La contraseña debe tener al menos 6 caracteres", "Ana", "ana@email.com"))
	for _, token := range []string{`name="name"`, `value="Ana"`, `action="/signup"`, "al menos 6 caracteres"} {
		if !strings.Contains(out, token) {
			t.Fatalf("expected signup to contain %q: %s", token, out)
		}
	}
}

func TestCurrentDayLine(t *testing.T) {
	modules := course.Modules()
	if got := CurrentDayLine(learner(3, 17), modules); got != "Día 3 de 12 — "+modules[2].Title {
		t.Fatalf("unexpected line: %q", got)
	}
	if got := CurrentDayLine(learner(13, 100), modules); got != "¡Has completado todos los sellos!" {
		t.Fatalf("unexpected completion line: %q", got)
	}
}

func TestDashboardMarksModuleStatus(t *testing.T) {
	out := render(t, Dashboard(learner(3, 17), course.Modules()))
	if strings.Count(out, `data-status="completed"`) != 2 {
		t.Fatalf("expected two completed modules: %s", out)
	}
	if strings.Count(out, `data-status="unlocked"`) != 1 || !strings.Contains(out, `href="/modulo/3"`) {
		t.Fatalf("expected day 3 to be the unlocked module: %s", out)
	}
	if strings.Count(out, `data-status="locked"`) != 9 || strings.Contains(out, `href="/modulo/4"`) {
		t.Fatalf("expected nine locked modules without links: %s", out)
	}
	if strings.Contains(out, `href="/admin"`) {
		t.Fatal("non-admin dashboard must not link to admin")
	}

	admin := learner(13, 100)
	admin.IsAdmin = true
	if out := render(t, DashboardPartial(admin, course.Modules())); !strings.Contains(out, `href="/admin"`) {
		t.Fatalf("expected admin link for admins: %s", out)
	}
}

func TestModuleDetailActions(t *testing.T) {
	day3, _ := course.Get(3)
	current := render(t, ModuleDetail(learner(3, 17), day3))
	if !strings.Contains(current, `action="/modulo/3/completar"`) || !strings.Contains(current, "Completar y Desbloquear Día 4") {
		t.Fatalf("expected completion form on the current day: %s", current)
	}

	day2, _ := course.Get(2)
	past := render(t, ModuleDetail(learner(3, 17), day2))
	if strings.Contains(past, "/completar") || !strings.Contains(past, `href="/modulo/3"`) {
		t.Fatalf("expected next link on a completed day: %s", past)
	}

	day12, _ := course.Get(12)
	last := render(t, ModuleDetailPartial(learner(12, 92), day12))
	if !strings.Contains(last, "Completar el Manuscrito") {
		t.Fatalf("expected final completion label: %s", last)
	}
	done := render(t, ModuleDetail(learner(13, 100), day12))
	if strings.Contains(done, "/completar") || !strings.Contains(done, "Volver al panel") {
		t.Fatalf("expected return link after completion: %s", done)
	}
}

func TestModuleDetailAudio(t *testing.T) {
	m, _ := course.Get(1)
	if out := render(t, ModuleDetail(learner(1, 8), m)); !strings.Contains(out, "Audio próximamente") {
		t.Fatal("expected audio placeholder")
	}
	m.AudioURL = "https://cdn.example.com/dia1.mp3"
	if out := render(t, ModuleDetail(learner(1, 8), m)); !strings.Contains(out, `<audio controls preload="none" src="https://cdn.example.com/dia1.mp3">`) {
		t.Fatalf("expected audio player: %s", out)
	}
}

func TestAdminTabs(t *testing.T) {
	roster := []models.Account{{Name: "María García", Email: "maria@email.com", LastUnlockedDay: 9, ProgressPercentage: 75}}

	modulesTab := render(t, Admin(AdminView{Tab: "", Modules: course.Modules()}))
	if !strings.Contains(modulesTab, `data-admin-tab="modulos"`) || !strings.Contains(modulesTab, `href="/admin/modulos/12"`) {
		t.Fatalf("expected module list by default: %s", modulesTab)
	}

	usersTab := render(t, AdminPartial(AdminView{Tab: TabUsers, Roster: roster}))
	if !strings.Contains(usersTab, "María García") || !strings.Contains(usersTab, "9/12") || !strings.Contains(usersTab, "75%") {
		t.Fatalf("expected roster row: %s", usersTab)
	}

	settingsTab := render(t, Admin(AdminView{Tab: TabSettings, UnlockMode: "full"}))
	if !strings.Contains(settingsTab, `value="full" checked`) || strings.Contains(settingsTab, `value="daily" checked`) {
		t.Fatalf("expected full mode to be selected: %s", settingsTab)
	}
}

func TestModuleEditorPrefillsFields(t *testing.T) {
	m, _ := course.Get(5)
	out := render(t, ModuleEditor(m))
	if !strings.Contains(out, `action="/admin/modulos/5"`) || !strings.Contains(out, templ.EscapeString(m.QuoteReference)) {
		t.Fatalf("expected editor form for day 5: %s", out)
	}
}
