// Package config loads the generator's YAML build configuration.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	Site   SiteConfig   `yaml:"site"`
	Theme  ThemeConfig  `yaml:"theme"`
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Pages  PagesConfig  `yaml:"pages"`
}

// SiteConfig holds site-wide presentation settings.
type SiteConfig struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description,omitempty"`
	BaseURL     string `yaml:"base_url,omitempty"`
}

// ThemeConfig selects the visual theme and per-build parameter overrides.
type ThemeConfig struct {
	Name     string         `yaml:"name,omitempty"`
	Format   string         `yaml:"format,omitempty"` // output convention, selects themes/<format>/
	Dir      string         `yaml:"dir,omitempty"`    // themes root directory
	Settings map[string]any `yaml:"settings,omitempty"`
}

// InputConfig names the consumed inputs: the API metadata model file and
// the conceptual content directory.
type InputConfig struct {
	APIModel   string `yaml:"api_model,omitempty"`
	ContentDir string `yaml:"content_dir,omitempty"`
}

// OutputConfig represents output configuration.
type OutputConfig struct {
	Directory string `yaml:"directory"`
	Clean     bool   `yaml:"clean"` // Clean output directory before build
}

// PagesConfig controls page granularity: whether namespaces and members
// receive dedicated pages. Both default to true.
type PagesConfig struct {
	Namespaces *bool `yaml:"namespaces,omitempty"`
	Members    *bool `yaml:"members,omitempty"`
}

// NamespacePages reports whether namespaces get dedicated pages.
func (p PagesConfig) NamespacePages() bool { return p.Namespaces == nil || *p.Namespaces }

// MemberPages reports whether members get dedicated pages.
func (p PagesConfig) MemberPages() bool { return p.Members == nil || *p.Members }

// Load loads configuration from the specified file.
func Load(configPath string) (*Config, error) {
	// Load .env files if present; absence is not an error.
	_ = godotenv.Load(".env.local", ".env")

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("configuration file not found: %s", configPath)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))

	var config Config
	if err := yaml.Unmarshal([]byte(expandedData), &config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Apply defaults
	if config.Site.Title == "" {
		config.Site.Title = "API Documentation"
	}
	if config.Theme.Name == "" {
		config.Theme.Name = "default"
	}
	if config.Theme.Format == "" {
		config.Theme.Format = "html"
	}
	if config.Theme.Dir == "" {
		config.Theme.Dir = "themes"
	}
	if config.Input.ContentDir == "" {
		config.Input.ContentDir = "content"
	}
	if config.Output.Directory == "" {
		config.Output.Directory = "./site"
		config.Output.Clean = true
	}

	return &config, nil
}

// Init creates a new configuration file with example content.
func Init(configPath string, force bool) error {
	if _, err := os.Stat(configPath); err == nil && !force {
		return fmt.Errorf("configuration file already exists: %s (use --force to overwrite)", configPath)
	}

	exampleConfig := Config{
		Site: SiteConfig{
			Title:       "My Library",
			Description: "API reference and guides",
			BaseURL:     "https://example.com/docs",
		},
		Theme: ThemeConfig{
			Name:   "default",
			Format: "html",
			Dir:    "themes",
			Settings: map[string]any{
				"footerText": "Generated with apidocs",
			},
		},
		Input: InputConfig{
			APIModel:   "api.yaml",
			ContentDir: "content",
		},
		Output: OutputConfig{
			Directory: "./site",
			Clean:     true,
		},
	}

	data, err := yaml.Marshal(&exampleConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
