// Package layout renders the HTML document shell around every page.
package layout

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"manuscrito/internal/views/components"
)

const htmxScript = "https://cdn.jsdelivr.net/npm/htmx.org@2.0.4/dist/htmx.min.js"

const stylesheet = `
:root { --bg: #0d0b08; --card: #17130d; --border: #2e2618; --text: #f2ead8; --muted: #a99c82; --gold: #d4a843; --danger: #e0685a; }
* { box-sizing: border-box; }
body { margin: 0; background: var(--bg); color: var(--text); font-family: Georgia, "Times New Roman", serif; line-height: 1.6; }
a { color: var(--gold); text-decoration: none; }
.topbar { position: sticky; top: 0; display: flex; justify-content: space-between; align-items: center; padding: 1rem 1.5rem; border-bottom: 1px solid var(--border); background: rgba(13, 11, 8, 0.85); }
.topbar-links { display: flex; gap: 1rem; align-items: center; }
.topbar-links a, .link-button { color: var(--muted); font-size: 0.9rem; }
.link-button { background: none; border: 0; cursor: pointer; font-family: inherit; }
.brand { letter-spacing: 0.1em; }
main { margin: 0 auto; padding: 2.5rem 1.5rem; }
main.narrow { max-width: 48rem; }
main.wide { max-width: 64rem; }
.card { border: 1px solid var(--border); background: var(--card); border-radius: 1rem; padding: 1.5rem; margin-bottom: 1.5rem; }
.eyebrow { text-transform: uppercase; letter-spacing: 0.15em; font-size: 0.75rem; color: var(--muted); margin: 0; }
.button { display: inline-block; padding: 0.9rem 2rem; border-radius: 0.5rem; border: 0; background: linear-gradient(135deg, #f0cf7a, var(--gold)); color: #1b1406; text-transform: uppercase; letter-spacing: 0.12em; font-size: 0.85rem; cursor: pointer; }
.button.ghost { background: none; border: 1px solid var(--gold); color: var(--gold); }
.flash { color: var(--danger); font-size: 0.9rem; }
.progress { height: 0.5rem; border-radius: 1rem; background: var(--border); overflow: hidden; }
.progress-fill { height: 100%; background: var(--gold); }
.seals { display: grid; grid-template-columns: repeat(auto-fill, minmax(10rem, 1fr)); gap: 1rem; }
.seal { border: 1px solid var(--border); border-radius: 0.75rem; padding: 1.5rem; text-align: center; }
.seal-glyph { font-size: 1.8rem; color: var(--gold); }
.module-list { display: grid; gap: 0.75rem; }
.module-card { display: flex; align-items: center; gap: 1rem; padding: 1.1rem; border: 1px solid var(--border); border-radius: 0.75rem; background: var(--card); color: var(--text); }
.module-card[data-status="locked"] { opacity: 0.5; }
.module-icon { width: 3rem; height: 3rem; display: flex; align-items: center; justify-content: center; border-radius: 0.5rem; background: var(--border); }
.module-title { margin: 0; }
.tabs { display: flex; gap: 0.25rem; margin-bottom: 2rem; }
.tab { padding: 0.5rem 1rem; border-radius: 0.4rem; color: var(--muted); }
.tab[data-state="active"] { background: var(--gold); color: #1b1406; }
form.stack { display: grid; gap: 1rem; }
label { display: grid; gap: 0.4rem; font-size: 0.9rem; color: var(--muted); }
input, textarea { padding: 0.75rem 1rem; border-radius: 0.5rem; border: 1px solid var(--border); background: #1f1a12; color: var(--text); font-family: inherit; }
table { width: 100%; border-collapse: collapse; }
th, td { text-align: left; padding: 0.8rem; border-bottom: 1px solid var(--border); }
.center { text-align: center; }
.quote { font-style: italic; font-size: 1.2rem; }
`

// Layout wraps content in the document shell. nav may be nil.
func Layout(title string, nav, content templ.Component, wide bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out := components.NewWriter(w)
		out.Raw(`<!DOCTYPE html><html lang="es"><head><meta charset="utf-8">`)
		out.Raw(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		out.Raw(`<title>`)
		out.Text(title)
		out.Raw(`</title><style>`, stylesheet, `</style>`)
		out.Raw(`<script src="`, htmxScript, `" defer></script></head>`)
		out.Raw(`<body hx-boost="true">`)
		out.Component(ctx, Body(nav, content, wide))
		out.Raw(`</body></html>`)
		return out.Err()
	})
}

// Body renders the navigation and main region without the document shell. It is
// the response for boosted HTMX navigation.
func Body(nav, content templ.Component, wide bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		out := components.NewWriter(w)
		out.Component(ctx, nav)
		out.Raw(`<main class="`, mainClass(wide), `">`)
		out.Component(ctx, content)
		out.Raw(`</main>`)
		return out.Err()
	})
}

func mainClass(wide bool) string {
	if wide {
		return "wide"
	}
	return "narrow"
}
