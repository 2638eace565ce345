package generator

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	apierrors "git.home.luguber.info/inful/apidocs/internal/errors"
	"git.home.luguber.info/inful/apidocs/internal/observability"
	"git.home.luguber.info/inful/apidocs/internal/sitemap"
	"git.home.luguber.info/inful/apidocs/internal/theme"
)

// SitemapFile is the client navigation data file written alongside pages.
const SitemapFile = "sitemap.json"

// writeBundles concatenates each bundle's sources, in resolved order, into
// its target path under the output directory.
func (g *Generator) writeBundles(ctx context.Context, th *theme.Theme) error {
	for _, bundle := range th.OrderedBundles() {
		outPath := filepath.Join(g.cfg.Output.Directory, filepath.FromSlash(bundle.TargetPath))
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return apierrors.Wrap(err, apierrors.CategoryFileSystem, apierrors.SeverityFatal,
				"failed to create bundle directory")
		}
		out, err := os.Create(outPath)
		if err != nil {
			return apierrors.Wrap(err, apierrors.CategoryFileSystem, apierrors.SeverityFatal,
				"failed to create bundle file")
		}
		if err := concatenate(out, bundle.Sources); err != nil {
			out.Close()
			return apierrors.Wrap(err, apierrors.CategoryFileSystem, apierrors.SeverityFatal,
				fmt.Sprintf("failed to assemble bundle %s", bundle.TargetPath))
		}
		if err := out.Close(); err != nil {
			return apierrors.Wrap(err, apierrors.CategoryFileSystem, apierrors.SeverityFatal,
				fmt.Sprintf("failed to finalize bundle %s", bundle.TargetPath))
		}
		observability.DebugContext(ctx, "Bundle written",
			slog.String("target", bundle.TargetPath),
			slog.Int("sources", len(bundle.Sources)))
	}
	return nil
}

func concatenate(out io.Writer, sources []string) error {
	for _, src := range sources {
		f, err := os.Open(src)
		if err != nil {
			return err
		}
		_, err = io.Copy(out, f)
		f.Close()
		if err != nil {
			return err
		}
		if _, err := io.WriteString(out, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// copyAssets copies each resolved asset to its theme-relative path under the
// output directory.
func (g *Generator) copyAssets(ctx context.Context, th *theme.Theme) error {
	for _, asset := range th.Assets {
		outPath := filepath.Join(g.cfg.Output.Directory, filepath.FromSlash(asset.Rel))
		if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
			return apierrors.Wrap(err, apierrors.CategoryFileSystem, apierrors.SeverityFatal,
				"failed to create asset directory")
		}
		if err := copyFile(asset.Source, outPath); err != nil {
			return apierrors.Wrap(err, apierrors.CategoryFileSystem, apierrors.SeverityFatal,
				fmt.Sprintf("failed to copy asset %s", asset.Rel))
		}
	}
	observability.DebugContext(ctx, "Assets copied", slog.Int("count", len(th.Assets)))
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// writeSitemap serializes the navigation tree for client-side consumers.
func (g *Generator) writeSitemap(sm *sitemap.Sitemap) error {
	data, err := json.MarshalIndent(sm.Items, "", "  ")
	if err != nil {
		return apierrors.Wrap(err, apierrors.CategoryInternal, apierrors.SeverityFatal,
			"failed to serialize sitemap")
	}
	path := filepath.Join(g.cfg.Output.Directory, SitemapFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return apierrors.Wrap(err, apierrors.CategoryFileSystem, apierrors.SeverityFatal,
			"failed to write "+SitemapFile)
	}
	return nil
}
