package generator

import (
	"context"
	"fmt"
	"html/template"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"git.home.luguber.info/inful/apidocs/internal/config"
	apierrors "git.home.luguber.info/inful/apidocs/internal/errors"
	"git.home.luguber.info/inful/apidocs/internal/observability"
	"git.home.luguber.info/inful/apidocs/internal/sitemap"
	"git.home.luguber.info/inful/apidocs/internal/theme"
)

// fallbackPage renders pages for themes that declare no template for a kind.
const fallbackPage = `<!DOCTYPE html>
<html><head><title>{{.Title}} - {{.Site.Title}}</title></head>
<body><h1>{{.Title}}</h1></body></html>
`

// pageData is the context every page template executes against.
type pageData struct {
	Site   config.SiteConfig
	Title  string
	URL    string
	Params map[string]any
	Nav    []*sitemap.Node
}

func (g *Generator) prepareOutput() error {
	dir := g.cfg.Output.Directory
	if g.cfg.Output.Clean {
		if err := os.RemoveAll(dir); err != nil {
			return apierrors.Wrap(err, apierrors.CategoryFileSystem, apierrors.SeverityFatal,
				"failed to clean output directory")
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return apierrors.Wrap(err, apierrors.CategoryFileSystem, apierrors.SeverityFatal,
			"failed to create output directory")
	}
	return nil
}

// renderPages walks every sitemap node carrying a URL and renders it through
// the theme template matching the node kind. Progress is reported against
// the sitemap's page count.
func (g *Generator) renderPages(ctx context.Context, th *theme.Theme, sm *sitemap.Sitemap) error {
	params := make(map[string]any, len(th.Parameters))
	for _, p := range th.Parameters {
		params[p.Name] = p.Default
	}

	templates := map[string]*template.Template{}
	total := sm.PageCount()
	rendered := 0

	var renderErr error
	sm.Walk(func(n *sitemap.Node) {
		if renderErr != nil || n.URL == "" {
			return
		}
		tmpl, err := g.pageTemplate(templates, th, n.Kind)
		if err != nil {
			renderErr = err
			return
		}

		outPath := filepath.Join(g.cfg.Output.Directory, filepath.FromSlash(strings.TrimPrefix(n.URL, "/")))
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			renderErr = apierrors.Wrap(err, apierrors.CategoryFileSystem, apierrors.SeverityFatal,
				"failed to create page directory")
			return
		}
		f, err := os.Create(outPath)
		if err != nil {
			renderErr = apierrors.Wrap(err, apierrors.CategoryFileSystem, apierrors.SeverityFatal,
				"failed to create page file")
			return
		}
		defer f.Close()

		data := pageData{Site: g.cfg.Site, Title: n.Title, URL: n.URL, Params: params, Nav: sm.Items}
		if err := tmpl.Execute(f, data); err != nil {
			renderErr = apierrors.Wrap(err, apierrors.CategoryRender, apierrors.SeverityFatal,
				fmt.Sprintf("failed to render %s", n.URL))
			return
		}

		rendered++
		g.recorder.IncPagesRendered()
		observability.DebugContext(ctx, "Page rendered",
			slog.String("url", n.URL),
			slog.Int("rendered", rendered),
			slog.Int("total", total))
	})
	if renderErr != nil {
		return renderErr
	}

	observability.InfoContext(ctx, "Pages rendered", slog.Int("count", rendered))
	return nil
}

// pageTemplate resolves and caches the template for a node kind, falling
// back to a theme-wide "page" template and finally the built-in layout.
func (g *Generator) pageTemplate(cache map[string]*template.Template, th *theme.Theme, kind string) (*template.Template, error) {
	if tmpl, ok := cache[kind]; ok {
		return tmpl, nil
	}

	path, ok := th.Template(kind)
	if !ok {
		path, ok = th.Template("page")
	}

	var tmpl *template.Template
	var err error
	if ok {
		tmpl, err = template.ParseFiles(path)
		if err != nil {
			return nil, apierrors.Wrap(err, apierrors.CategoryRender, apierrors.SeverityFatal,
				fmt.Sprintf("failed to parse template %s", path))
		}
	} else {
		tmpl = template.Must(template.New(kind).Parse(fallbackPage))
	}
	cache[kind] = tmpl
	return tmpl, nil
}
