// Package unlock lists the module release modes an administrator can pick.
package unlock

import "strings"

// Option is a selectable unlock mode exposed to the admin settings tab.
type Option struct {
	Value       string
	Label       string
	Description string
}

const (
	// Daily releases one module per completed day.
	Daily = "daily"
	// Full makes every module available at once.
	Full = "full"

	// DefaultKey is used when no preference has been stored.
	DefaultKey = Daily
)

var options = []Option{
	{Value: Daily, Label: "Diario (1 por día)", Description: "Los módulos se desbloquean progresivamente"},
	{Value: Full, Label: "Acceso completo", Description: "Todos los módulos disponibles de inmediato"},
}

// Resolve normalizes key, reporting false for unknown modes.
func Resolve(key string) (Option, bool) {
	normalized := strings.ToLower(strings.TrimSpace(key))
	for _, opt := range options {
		if opt.Value == normalized {
			return opt, true
		}
	}
	return options[0], false
}

// Options returns the modes in display order.
func Options() []Option {
	out := make([]Option, len(options))
	copy(out, options)
	return out
}
