// Package course holds the read-only catalog of the twelve day modules.
package course

import "manuscrito/models"

// TotalDays is the number of modules in the course. A watermark of TotalDays+1
// means every module has been completed.
const TotalDays = 12

var sealNames = [TotalDays]string{
	"Fe", "Perdón", "Identidad", "Palabra",
	"Oración", "Provisión", "Sanidad", "Autoridad",
	"Propósito", "Comunidad", "Perseverancia", "Activación",
}

// Modules returns the catalog ordered by day. The slice is a copy.
func Modules() []models.Module {
	out := make([]models.Module, len(modules))
	copy(out, modules)
	return out
}

// Get returns the module for day, or false when day is outside 1..TotalDays.
func Get(day int) (models.Module, bool) {
	if day < 1 || day > len(modules) {
		return models.Module{}, false
	}
	return modules[day-1], true
}

// SealNames lists the short seal names shown on the landing page.
func SealNames() []string {
	out := make([]string, len(sealNames))
	copy(out, sealNames[:])
	return out
}
