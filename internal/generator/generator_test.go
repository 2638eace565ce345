package generator

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"git.home.luguber.info/inful/apidocs/internal/config"
	apierrors "git.home.luguber.info/inful/apidocs/internal/errors"
	"git.home.luguber.info/inful/apidocs/internal/metadata"
	"git.home.luguber.info/inful/apidocs/internal/theme"
)

// testSite builds a working project layout in a temp dir: one theme, one
// assembly in the API model, one topic page.
func testSite(t *testing.T) *config.Config {
	t.Helper()
	root := t.TempDir()

	themeDir := filepath.Join(root, "themes", "html", "default")
	require.NoError(t, os.MkdirAll(filepath.Join(themeDir, "js"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(themeDir, "static"), 0o755))

	decl := theme.Declaration{
		Templates: []string{"*.html"},
		Scripts:   theme.FileSet{Source: []string{"js/*.js"}, TargetPath: "assets/app.js"},
		Assets:    []string{"static/*.css"},
		Parameters: map[string]theme.ParameterDecl{
			"footerText": {Type: "String", Default: "footer"},
		},
	}
	declData, err := json.Marshal(decl)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(themeDir, theme.DeclarationFile), declData, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(themeDir, "page.html"),
		[]byte("<h1>{{.Title}}</h1><footer>{{.Params.footerText}}</footer>"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(themeDir, "js", "a.js"), []byte("// a"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(themeDir, "js", "b.js"), []byte("// b"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(themeDir, "static", "site.css"), []byte("body{}"), 0o644))

	model := metadata.Model{Assemblies: []metadata.Assembly{{
		Name: "Acme.Widgets",
		Namespaces: []metadata.Namespace{{
			Name: "Acme.Widgets",
			URL:  "api/acme.widgets.html",
			Types: []metadata.Type{{
				Name: "Widget",
				URL:  "api/acme.widgets.widget.html",
				Kind: metadata.TypeKindClass,
				Members: []metadata.Member{{
					Name: "Size", URL: "api/acme.widgets.widget.size.html", Kind: metadata.MemberKindProperty,
				}},
			}},
		}},
	}}}
	modelData, err := yaml.Marshal(&model)
	require.NoError(t, err)
	modelPath := filepath.Join(root, "api.yaml")
	require.NoError(t, os.WriteFile(modelPath, modelData, 0o644))

	contentDir := filepath.Join(root, "content")
	require.NoError(t, os.MkdirAll(contentDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(contentDir, "intro.md"),
		[]byte("---\ntitle: Introduction\n---\nWelcome.\n"), 0o644))

	return &config.Config{
		Site:   config.SiteConfig{Title: "Acme Docs"},
		Theme:  config.ThemeConfig{Name: "default", Format: "html", Dir: filepath.Join(root, "themes")},
		Input:  config.InputConfig{APIModel: modelPath, ContentDir: contentDir},
		Output: config.OutputConfig{Directory: filepath.Join(root, "site"), Clean: true},
	}
}

func TestGenerate_WritesPagesBundlesAssetsAndSitemap(t *testing.T) {
	cfg := testSite(t)

	g := New(cfg, nil)
	require.NoError(t, g.Generate(context.Background()))

	out := cfg.Output.Directory

	page, err := os.ReadFile(filepath.Join(out, "api", "acme.widgets.widget.html"))
	require.NoError(t, err)
	require.Contains(t, string(page), "<h1>Widget</h1>")
	require.Contains(t, string(page), "<footer>footer</footer>")

	topic, err := os.ReadFile(filepath.Join(out, "intro.html"))
	require.NoError(t, err)
	require.Contains(t, string(topic), "Introduction")

	bundle, err := os.ReadFile(filepath.Join(out, "assets", "app.js"))
	require.NoError(t, err)
	require.Equal(t, "// a\n// b\n", string(bundle))

	_, err = os.Stat(filepath.Join(out, "static", "site.css"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(out, SitemapFile))
	require.NoError(t, err)
	var nav []map[string]any
	require.NoError(t, json.Unmarshal(data, &nav))
	require.Len(t, nav, 2)
	require.Equal(t, "API", nav[0]["title"])
	require.Equal(t, "Topics", nav[1]["title"])
}

func TestGenerate_SettingsOverrideTemplateParams(t *testing.T) {
	cfg := testSite(t)
	cfg.Theme.Settings = map[string]any{"footerText": "custom footer"}

	g := New(cfg, nil)
	require.NoError(t, g.Generate(context.Background()))

	page, err := os.ReadFile(filepath.Join(cfg.Output.Directory, "intro.html"))
	require.NoError(t, err)
	require.Contains(t, string(page), "custom footer")
}

func TestGenerate_CleanRemovesStaleOutput(t *testing.T) {
	cfg := testSite(t)
	stale := filepath.Join(cfg.Output.Directory, "stale.html")
	require.NoError(t, os.MkdirAll(cfg.Output.Directory, 0o755))
	require.NoError(t, os.WriteFile(stale, []byte("old"), 0o644))

	g := New(cfg, nil)
	require.NoError(t, g.Generate(context.Background()))

	_, err := os.Stat(stale)
	require.True(t, os.IsNotExist(err))
}

func TestGenerate_FailsWithoutAnyInput(t *testing.T) {
	cfg := testSite(t)
	cfg.Input.APIModel = ""
	cfg.Input.ContentDir = filepath.Join(t.TempDir(), "empty")

	g := New(cfg, nil)
	err := g.Generate(context.Background())
	require.Error(t, err)
	require.True(t, apierrors.IsCategory(err, apierrors.CategoryConfig))
}

func TestGenerate_MissingThemeFails(t *testing.T) {
	cfg := testSite(t)
	cfg.Theme.Name = "nope"

	g := New(cfg, nil)
	err := g.Generate(context.Background())
	require.Error(t, err)
	require.True(t, apierrors.IsCategory(err, apierrors.CategoryTheme))
}
