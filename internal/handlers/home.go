package handlers

import (
	"net/http"

	"manuscrito/internal/course"
	"manuscrito/internal/views/pages"
)

// Home renders the public landing page.
func Home(w http.ResponseWriter, r *http.Request) {
	render(w, r, pages.Landing(course.SealNames()))
}
