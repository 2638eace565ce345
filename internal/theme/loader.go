package theme

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	apierrors "git.home.luguber.info/inful/apidocs/internal/errors"
	"git.home.luguber.info/inful/apidocs/internal/markdown"
	"git.home.luguber.info/inful/apidocs/internal/util/sets"
)

// DeclarationFile is the per-theme declaration file name.
const DeclarationFile = "theme.json"

// Loader resolves themes from a themes directory laid out as
// themes/<format>/<themeId>/theme.json.
type Loader struct {
	ThemesDir string
	Format    string
	Transform markdown.Transform
}

// NewLoader creates a Loader rooted at themesDir for the given output format.
func NewLoader(themesDir, format string, transform markdown.Transform) *Loader {
	return &Loader{ThemesDir: themesDir, Format: format, Transform: transform}
}

// Dir returns the directory a theme of the given name resolves to.
func (l *Loader) Dir(name string) string {
	return filepath.Join(l.ThemesDir, l.Format, name)
}

// Load walks the named theme's inheritance chain and returns the merged
// Theme. Each link is merged most-derived first, so overrides favor the
// requested theme. A repeated ancestor name ends the walk with a warning
// instead of looping. A missing theme directory or declaration file, or a
// malformed declaration, is fatal; no partial Theme is ever returned.
func (l *Loader) Load(name string) (*Theme, error) {
	result := newTheme(name)
	visited := sets.New[string]()

	for current := name; current != ""; {
		key := strings.ToLower(current)
		if !visited.Add(key) {
			slog.Warn("Theme inheritance chain repeats an ancestor, stopping walk",
				"theme", name, "repeated", current)
			break
		}

		dir := l.Dir(current)
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			return nil, apierrors.New(apierrors.CategoryTheme, apierrors.SeverityFatal,
				fmt.Sprintf("theme %q not found under %s", current, filepath.Join(l.ThemesDir, l.Format)))
		}

		declPath := filepath.Join(dir, DeclarationFile)
		data, err := os.ReadFile(declPath)
		if err != nil {
			return nil, apierrors.Wrap(err, apierrors.CategoryTheme, apierrors.SeverityFatal,
				fmt.Sprintf("theme %q has no readable %s", current, DeclarationFile))
		}

		decl, err := ParseDeclaration(data, declPath)
		if err != nil {
			return nil, err
		}

		if err := result.merge(dir, decl, l.Transform); err != nil {
			return nil, err
		}
		if result.Dir == "" {
			result.Dir = dir
		}

		current = decl.Base
	}

	slog.Debug("Theme resolved",
		"theme", name,
		"chain_length", visited.Len(),
		"parameters", len(result.Parameters),
		"templates", len(result.Templates),
		"bundles", len(result.Bundles),
		"assets", len(result.Assets))
	return result, nil
}
