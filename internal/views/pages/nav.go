// Package pages renders the full course pages and their HTMX partials.
package pages

import (
	"github.com/a-h/templ"

	"manuscrito/internal/views/components"
	"manuscrito/models"
)

const brand = "Los 12 Sellos"

func publicNav() templ.Component {
	return components.NavBar("/", brand, []components.NavLink{
		{Label: "Iniciar Sesión", Path: "/login"},
		{Label: "Comenzar", Path: "/signup"},
	})
}

func appNav(u models.User) templ.Component {
	links := make([]components.NavLink, 0, 3)
	if u.IsAdmin {
		links = append(links, components.NavLink{Label: "Admin", Path: "/admin"})
	}
	links = append(links, components.NavLink{Label: "Salir", Path: "/logout", Post: true})
	return components.NavBar("/dashboard", brand, links)
}

func backNav(path, label, trailing string) templ.Component {
	return components.NavBar(path, "← "+label, []components.NavLink{{Label: trailing}})
}
