package pages

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"manuscrito/internal/views/components"
	"manuscrito/internal/views/layout"
)

var sealGlyphs = []string{"✦", "◈", "◇", "❖", "✧", "⬥", "◆", "⟡", "✦", "◈", "◇", "✦"}

// Landing renders the public home page with the seal grid.
func Landing(seals []string) templ.Component {
	return layout.Layout("El Manuscrito de los 12 Sellos", publicNav(), landingContent(seals), true)
}

func landingContent(seals []string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out := components.NewWriter(w)
		out.Raw(`<section class="center hero">`)
		out.Raw(`<p class="eyebrow">Una jornada de activación espiritual</p>`)
		out.Raw(`<h1>El Manuscrito<br>de los 12 Sellos</h1>`)
		out.Raw(`<p class="quote">Doce códigos sagrados. Siete días de transformación.<br>Un camino que cambiará tu vida para siempre.</p>`)
		out.Raw(`<p><a class="button" href="/signup">Comenzar la Jornada</a> <a class="button ghost" href="#sellos">Descubrir los Sellos</a></p>`)
		out.Raw(`</section>`)

		out.Raw(`<section id="sellos"><h2 class="center">Los 12 Códigos Sagrados</h2>`)
		out.Raw(`<p class="center">Cada sello contiene una verdad profunda que transformará un área específica de tu vida espiritual.</p>`)
		out.Raw(`<div class="seals">`)
		for i, name := range seals {
			out.Component(ctx, components.SealCard(i+1, sealGlyphs[i%len(sealGlyphs)], name))
		}
		out.Raw(`</div></section>`)

		out.Raw(`<section class="center"><h2>¿Estás listo para la transformación?</h2>`)
		out.Raw(`<p>Accede a los 12 códigos sagrados y comienza tu camino de activación espiritual hoy.</p>`)
		out.Raw(`<p><a class="button" href="/signup">Acceder Ahora</a></p>`)
		out.Raw(`<p class="eyebrow">Acceso de por vida · Sin suscripción · Garantía de 7 días</p></section>`)
		return out.Err()
	})
}
