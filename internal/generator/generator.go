// Package generator runs the documentation pipeline: load theme, build
// navigation, render pages, assemble bundles, copy assets. Stages run
// strictly in order with no overlap; any failure aborts the run.
package generator

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/apidocs/internal/config"
	apierrors "git.home.luguber.info/inful/apidocs/internal/errors"
	"git.home.luguber.info/inful/apidocs/internal/markdown"
	"git.home.luguber.info/inful/apidocs/internal/metadata"
	"git.home.luguber.info/inful/apidocs/internal/metrics"
	"git.home.luguber.info/inful/apidocs/internal/observability"
	"git.home.luguber.info/inful/apidocs/internal/sitemap"
	"git.home.luguber.info/inful/apidocs/internal/theme"
	"git.home.luguber.info/inful/apidocs/internal/topics"
)

// Generator orchestrates one documentation run.
type Generator struct {
	cfg      *config.Config
	recorder metrics.Recorder
}

// New creates a Generator. A nil recorder disables metrics.
func New(cfg *config.Config, recorder metrics.Recorder) *Generator {
	if recorder == nil {
		recorder = metrics.NoopRecorder{}
	}
	return &Generator{cfg: cfg, recorder: recorder}
}

// Generate runs the full pipeline.
func (g *Generator) Generate(ctx context.Context) error {
	start := time.Now()
	ctx = observability.WithBuildID(ctx, uuid.NewString())
	ctx = observability.WithTheme(ctx, g.cfg.Theme.Name)

	err := g.generate(ctx)
	g.recorder.ObserveBuildDuration(time.Since(start))
	if err != nil {
		g.recorder.IncBuildOutcome("failed")
		return err
	}
	g.recorder.IncBuildOutcome("success")
	observability.InfoContext(ctx, "Documentation generated",
		slog.Duration("elapsed", time.Since(start)),
		slog.String("output", g.cfg.Output.Directory))
	return nil
}

func (g *Generator) generate(ctx context.Context) error {
	// Theme resolution
	stageCtx := observability.WithStage(ctx, "theme")
	loader := theme.NewLoader(g.cfg.Theme.Dir, g.cfg.Theme.Format, markdown.Render)
	themeStart := time.Now()
	th, err := loader.Load(g.cfg.Theme.Name)
	g.recorder.ObserveThemeResolveDuration(g.cfg.Theme.Name, time.Since(themeStart), err == nil)
	if err != nil {
		return err
	}
	dropped := th.ApplySettings(g.cfg.Theme.Settings, markdown.Render)
	for i := 0; i < dropped; i++ {
		g.recorder.IncSettingDropped()
	}
	observability.InfoContext(stageCtx, "Theme resolved",
		slog.Int("templates", len(th.Templates)),
		slog.Int("bundles", len(th.Bundles)),
		slog.Int("settings_dropped", dropped))

	// Consumed inputs
	stageCtx = observability.WithStage(ctx, "inputs")
	var model *metadata.Model
	if g.cfg.Input.APIModel != "" {
		if model, err = metadata.Load(g.cfg.Input.APIModel); err != nil {
			return err
		}
	}
	topicTree, err := topics.Discover(g.cfg.Input.ContentDir)
	if err != nil {
		return err
	}
	assemblies := 0
	if model != nil {
		assemblies = len(model.Assemblies)
	}
	observability.InfoContext(stageCtx, "Inputs loaded",
		slog.Int("assemblies", assemblies),
		slog.Int("topics", len(topicTree)))
	if assemblies == 0 && len(topicTree) == 0 {
		return apierrors.New(apierrors.CategoryConfig, apierrors.SeverityFatal,
			"nothing to document: no assemblies in the API model and no topics in the content directory")
	}

	// Navigation
	stageCtx = observability.WithStage(ctx, "sitemap")
	provider := sitemap.NewProvider(func() *sitemap.Sitemap {
		return sitemap.Build(model, topicTree, sitemap.Options{
			BaseURL:        g.cfg.Site.BaseURL,
			NamespacePages: g.cfg.Pages.NamespacePages(),
			MemberPages:    g.cfg.Pages.MemberPages(),
		})
	})
	sm := provider.Sitemap()
	g.recorder.SetPagesPlanned(sm.PageCount())
	observability.InfoContext(stageCtx, "Sitemap built", slog.Int("pages", sm.PageCount()))

	// Output
	if err := g.prepareOutput(); err != nil {
		return err
	}
	if err := g.renderPages(observability.WithStage(ctx, "render"), th, sm); err != nil {
		return err
	}
	if err := g.writeBundles(observability.WithStage(ctx, "bundles"), th); err != nil {
		return err
	}
	if err := g.copyAssets(observability.WithStage(ctx, "assets"), th); err != nil {
		return err
	}
	return g.writeSitemap(sm)
}
