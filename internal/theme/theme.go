package theme

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	apierrors "git.home.luguber.info/inful/apidocs/internal/errors"
	"git.home.luguber.info/inful/apidocs/internal/markdown"
	"git.home.luguber.info/inful/apidocs/internal/util/sets"
)

// Theme is the fully resolved result of walking a theme's inheritance
// chain. It is built once per run by Loader.Load and immutable afterwards
// except for per-build setting application via ApplySettings.
//
// Map keys are canonical (lower-cased) so overrides compare
// case-insensitively; declared spellings survive inside the values.
type Theme struct {
	Name     string
	Dir      string // most-derived theme directory
	Metadata map[string]string

	Parameters  map[string]*Parameter // key: lower-cased parameter name
	Templates   map[string]string     // key: lower-cased file name without extension
	Bundles     map[string]*Bundle    // key: lower-cased target path
	BundleOrder []string              // bundle keys in first-declared order
	Assets      map[string]Asset      // key: lower-cased theme-relative path

	merged int
}

// Bundle is one combined output file accumulated across the chain. Sources
// are ordered most-derived first and deduplicated by source path.
type Bundle struct {
	TargetPath string
	Sources    []string

	seen sets.Set[string]
}

// Asset is one static file copied into the output, addressed by its path
// relative to the declaring theme's root.
type Asset struct {
	Rel    string
	Source string
}

func newTheme(name string) *Theme {
	return &Theme{
		Name:       name,
		Parameters: map[string]*Parameter{},
		Templates:  map[string]string{},
		Bundles:    map[string]*Bundle{},
		Assets:     map[string]Asset{},
	}
}

// Parameter looks up a parameter by name, case-insensitively.
func (t *Theme) Parameter(name string) (*Parameter, bool) {
	p, ok := t.Parameters[strings.ToLower(name)]
	return p, ok
}

// Template looks up a template path by name (file name without extension),
// case-insensitively.
func (t *Theme) Template(name string) (string, bool) {
	p, ok := t.Templates[strings.ToLower(name)]
	return p, ok
}

// OrderedBundles returns bundles in first-declared order.
func (t *Theme) OrderedBundles() []*Bundle {
	out := make([]*Bundle, 0, len(t.BundleOrder))
	for _, key := range t.BundleOrder {
		out = append(out, t.Bundles[key])
	}
	return out
}

// merge folds one theme declaration into the accumulator. Declarations are
// merged most-derived first, so first-write-wins rules always favor the most
// specific theme while bundle accumulation keeps its files ahead of its
// ancestors'.
func (t *Theme) merge(dir string, decl *Declaration, transform markdown.Transform) error {
	t.merged++

	// Metadata comes only from the most-derived declaration.
	if t.merged == 1 && len(decl.Metadata) > 0 {
		t.Metadata = make(map[string]string, len(decl.Metadata))
		for k, v := range decl.Metadata {
			t.Metadata[k] = v
		}
	}

	if err := t.mergeParameters(decl, transform); err != nil {
		return err
	}
	if err := t.mergeTemplates(dir, decl.Templates); err != nil {
		return err
	}
	if err := t.mergeBundle(dir, decl.Scripts); err != nil {
		return err
	}
	if err := t.mergeBundle(dir, decl.Styles); err != nil {
		return err
	}
	return t.mergeAssets(dir, decl.Assets)
}

func (t *Theme) mergeParameters(decl *Declaration, transform markdown.Transform) error {
	names := make([]string, 0, len(decl.Parameters))
	for name := range decl.Parameters {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		key := strings.ToLower(name)
		if _, exists := t.Parameters[key]; exists {
			continue // a more-derived definition is never overwritten
		}
		pd := decl.Parameters[name]
		typ, err := ParseParameterType(pd.Type)
		if err != nil {
			return apierrors.Wrap(err, apierrors.CategoryTheme, apierrors.SeverityFatal,
				fmt.Sprintf("parameter %q", name))
		}
		param := &Parameter{Name: name, Type: typ, Description: pd.Description}
		if pd.Default != nil {
			validated, err := ValidateValue(pd.Default, typ, transform)
			if err != nil {
				return apierrors.Wrap(err, apierrors.CategoryTheme, apierrors.SeverityFatal,
					fmt.Sprintf("invalid default for parameter %q", name))
			}
			param.Default = validated
		}
		t.Parameters[key] = param
	}
	return nil
}

func (t *Theme) mergeTemplates(dir string, patterns []string) error {
	files, err := expandGlobs(dir, patterns)
	if err != nil {
		return err
	}
	for _, file := range files {
		base := filepath.Base(file)
		key := strings.ToLower(strings.TrimSuffix(base, filepath.Ext(base)))
		if _, exists := t.Templates[key]; exists {
			continue
		}
		t.Templates[key] = file
	}
	return nil
}

func (t *Theme) mergeBundle(dir string, fs FileSet) error {
	if fs.TargetPath == "" || len(fs.Source) == 0 {
		return nil
	}
	files, err := expandGlobs(dir, fs.Source)
	if err != nil {
		return err
	}

	key := strings.ToLower(fs.TargetPath)
	bundle, ok := t.Bundles[key]
	if !ok {
		bundle = &Bundle{TargetPath: fs.TargetPath, seen: sets.New[string]()}
		t.Bundles[key] = bundle
		t.BundleOrder = append(t.BundleOrder, key)
	}
	for _, file := range files {
		if bundle.seen.Add(file) {
			bundle.Sources = append(bundle.Sources, file)
		}
	}
	return nil
}

func (t *Theme) mergeAssets(dir string, patterns []string) error {
	files, err := expandGlobs(dir, patterns)
	if err != nil {
		return err
	}
	for _, file := range files {
		rel, err := filepath.Rel(dir, file)
		if err != nil {
			return apierrors.Wrap(err, apierrors.CategoryTheme, apierrors.SeverityFatal,
				fmt.Sprintf("asset %s escapes theme directory", file))
		}
		rel = filepath.ToSlash(rel)
		key := strings.ToLower(rel)
		if _, exists := t.Assets[key]; exists {
			continue
		}
		t.Assets[key] = Asset{Rel: rel, Source: file}
	}
	return nil
}
