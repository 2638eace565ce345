package theme

import (
	"log/slog"
	"sort"

	"git.home.luguber.info/inful/apidocs/internal/markdown"
)

// ApplySettings overlays per-build setting values onto the resolved theme's
// parameters. Unlike definition-time validation, a wrong-shaped value here is
// downgraded to a warning and the setting is skipped; generation proceeds.
// Returns the number of settings dropped.
func (t *Theme) ApplySettings(settings map[string]any, transform markdown.Transform) int {
	names := make([]string, 0, len(settings))
	for name := range settings {
		names = append(names, name)
	}
	sort.Strings(names)

	dropped := 0
	for _, name := range names {
		param, ok := t.Parameter(name)
		if !ok {
			slog.Warn("Ignoring unknown theme setting", "theme", t.Name, "setting", name)
			dropped++
			continue
		}
		validated, err := ValidateValue(settings[name], param.Type, transform)
		if err != nil {
			slog.Warn("Ignoring theme setting with invalid value",
				"theme", t.Name, "setting", name, "type", param.Type, "error", err)
			dropped++
			continue
		}
		param.Default = validated
	}
	return dropped
}
