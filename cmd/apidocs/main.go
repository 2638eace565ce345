package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path"
	"sort"
	"strings"
	"syscall"

	"github.com/alecthomas/kong"
	prom "github.com/prometheus/client_golang/prometheus"

	"git.home.luguber.info/inful/apidocs/internal/config"
	"git.home.luguber.info/inful/apidocs/internal/generator"
	gitclient "git.home.luguber.info/inful/apidocs/internal/git"
	"git.home.luguber.info/inful/apidocs/internal/markdown"
	"git.home.luguber.info/inful/apidocs/internal/metrics"
	"git.home.luguber.info/inful/apidocs/internal/preview"
	"git.home.luguber.info/inful/apidocs/internal/theme"
)

var CLI struct {
	Config  string `short:"c" help:"Configuration file path" default:"apidocs.yaml"`
	Verbose bool   `short:"v" help:"Enable verbose logging"`

	Build struct {
		Output string `short:"o" help:"Output directory override"`
	} `cmd:"" help:"Generate the documentation site"`

	Init struct {
		Force bool `help:"Overwrite existing configuration file"`
	} `cmd:"" help:"Initialize a new configuration file"`

	Preview struct {
		Addr string `help:"Listen address" default:"localhost:8080"`
	} `cmd:"" help:"Serve the site locally, rebuilding on theme/content changes"`

	Theme struct {
		Install struct {
			URL  string `arg:"" help:"Theme repository URL"`
			Name string `help:"Directory name to install under (defaults to repository name)"`
		} `cmd:"" help:"Install a theme from a Git repository"`

		Inspect struct {
			Name string `arg:"" help:"Theme name to resolve"`
		} `cmd:"" help:"Resolve a theme's inheritance chain and print its merged surface"`
	} `cmd:"" help:"Theme management"`
}

func main() {
	ctx := kong.Parse(&CLI)

	logLevel := slog.LevelInfo
	if CLI.Verbose {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})))

	var err error
	switch ctx.Command() {
	case "build":
		err = runBuild()
	case "init":
		err = config.Init(CLI.Config, CLI.Init.Force)
	case "preview":
		err = runPreview()
	case "theme install <url>":
		err = runThemeInstall()
	case "theme inspect <name>":
		err = runThemeInspect()
	}
	if err != nil {
		slog.Error("Command failed", "error", err)
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(CLI.Config)
	if err != nil {
		return nil, err
	}
	if CLI.Build.Output != "" {
		cfg.Output.Directory = CLI.Build.Output
	}
	return cfg, nil
}

func runBuild() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	return generator.New(cfg, nil).Generate(context.Background())
}

func runPreview() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	registry := prom.NewRegistry()
	recorder := metrics.NewPrometheusRecorder(registry)
	gen := generator.New(cfg, recorder)

	if err := gen.Generate(ctx); err != nil {
		return err
	}

	watchDirs := []string{cfg.Theme.Dir}
	if cfg.Input.ContentDir != "" {
		watchDirs = append(watchDirs, cfg.Input.ContentDir)
	}
	server := preview.NewServer(CLI.Preview.Addr, cfg.Output.Directory, watchDirs, gen.Generate, registry)
	return server.Start(ctx)
}

func runThemeInstall() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	name := CLI.Theme.Install.Name
	if name == "" {
		name = strings.TrimSuffix(path.Base(CLI.Theme.Install.URL), ".git")
	}

	client := gitclient.NewClient(cfg.Theme.Dir, cfg.Theme.Format)
	dest, err := client.InstallTheme(context.Background(), CLI.Theme.Install.URL, name)
	if err != nil {
		return err
	}
	slog.Info("Theme installed", "name", name, "path", dest)
	return nil
}

func runThemeInspect() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	loader := theme.NewLoader(cfg.Theme.Dir, cfg.Theme.Format, markdown.Render)
	th, err := loader.Load(CLI.Theme.Inspect.Name)
	if err != nil {
		return err
	}

	fmt.Printf("Theme: %s (%s)\n", th.Name, th.Dir)
	for _, k := range sortedKeys(th.Metadata) {
		fmt.Printf("  metadata %s: %s\n", k, th.Metadata[k])
	}

	metas, err := th.InspectTemplates()
	if err != nil {
		return err
	}
	for _, k := range sortedKeys(th.Templates) {
		line := fmt.Sprintf("  template %s: %s", k, th.Templates[k])
		if meta := metas[k]; meta.Description != "" {
			line += " (" + meta.Description + ")"
		}
		fmt.Println(line)
	}

	for _, bundle := range th.OrderedBundles() {
		fmt.Printf("  bundle %s: %d file(s)\n", bundle.TargetPath, len(bundle.Sources))
	}
	for _, k := range sortedKeys(th.Parameters) {
		p := th.Parameters[k]
		fmt.Printf("  parameter %s (%s) = %v\n", p.Name, p.Type, p.Default)
	}
	for _, k := range sortedKeys(th.Assets) {
		fmt.Printf("  asset %s\n", th.Assets[k].Rel)
	}
	return nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
