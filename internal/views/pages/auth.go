package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"manuscrito/internal/views/components"
	"manuscrito/internal/views/layout"
)

// Login renders the full sign-in page.
func Login(message, email string) templ.Component {
	return layout.Layout("Iniciar Sesión · Los 12 Sellos", publicNav(), loginForm(message, email), false)
}

// LoginPartial renders the sign-in page body for HTMX requests.
func LoginPartial(message, email string) templ.Component {
	return layout.Body(publicNav(), loginForm(message, email), false)
}

func loginForm(message, email string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out := components.NewWriter(w)
		out.Raw(`<div class="card"><h1 class="center">Los 12 Sellos</h1>`)
		out.Raw(`<p class="center">Ingresa a tu jornada espiritual</p>`)
		out.Raw(`<form class="stack" method="post" action="/login">`)
		out.Raw(`<label>Correo electrónico<input type="email" name="email" required value="`, templ.EscapeString(email), `"></label>`)
		out.Raw(`<label>Contraseña<input type="password" name="password" required></label>`)
		out.Component(ctx, components.Flash(message))
		out.Raw(`<button class="button" type="submit">Entrar</button></form>`)
		out.Raw(`<p class="center">¿No tienes cuenta? <a href="/signup">Regístrate</a></p></div>`)
		return out.Err()
	})
}

// Signup renders the full registration page.
func Signup(message, name, email string) templ.Component {
	return layout.Layout("Crear Cuenta · Los 12 Sellos", publicNav(), signupForm(message, name, email), false)
}

// SignupPartial renders the registration page body for HTMX requests.
func SignupPartial(message, name, email string) templ.Component {
	return layout.Body(publicNav(), signupForm(message, name, email), false)
}

func signupForm(message, name, email string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out := components.NewWriter(w)
		out.Raw(`<div class="card"><h1 class="center">Crear Cuenta</h1>`)
		out.Raw(`<p class="center">Comienza tu jornada de activación</p>`)
		out.Raw(`<form class="stack" method="post" action="/signup">`)
		out.Raw(`<label>Nombre completo<input type="text" name="name" required value="`, templ.EscapeString(name), `"></label>`)
		out.Raw(`<label>Correo electrónico<input type="email" name="email" required value="`, templ.EscapeString(email), `"></label>`)
		out.Raw(`<label>Contraseña<input type="password" name="password" required placeholder="Mínimo 6 caracteres"></label>`)
		out.Component(ctx, components.Flash(message))
		out.Raw(`<button class="button" type="submit">Crear Cuenta</button></form>`)
		out.Raw(`<p class="center">¿Ya tienes cuenta? <a href="/login">Inicia sesión</a></p></div>`)
		return out.Err()
	})
}
