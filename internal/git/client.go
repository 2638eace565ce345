// Package git installs themes from remote repositories.
package git

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/go-git/go-git/v5"
)

// Client handles Git operations for theme installation.
type Client struct {
	themesDir string
	format    string
}

// NewClient creates a Git client installing into themesDir/<format>/.
func NewClient(themesDir, format string) *Client {
	return &Client{themesDir: themesDir, format: format}
}

// InstallTheme clones a theme repository into the themes directory under the
// given name. An existing installation of the same name is replaced.
func (c *Client) InstallTheme(ctx context.Context, url, name string) (string, error) {
	dest := filepath.Join(c.themesDir, c.format, name)
	slog.Debug("Installing theme", slog.String("url", url), slog.String("dest", dest))

	if err := os.RemoveAll(dest); err != nil {
		return "", fmt.Errorf("failed to remove existing theme directory: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return "", fmt.Errorf("failed to create themes directory: %w", err)
	}

	_, err := git.PlainCloneContext(ctx, dest, false, &git.CloneOptions{
		URL:   url,
		Depth: 1,
	})
	if err != nil {
		return "", fmt.Errorf("failed to clone theme repository: %w", err)
	}

	// A working tree is all we need; drop the repository metadata.
	if err := os.RemoveAll(filepath.Join(dest, ".git")); err != nil {
		slog.Warn("Failed to remove .git metadata from installed theme", "error", err)
	}
	return dest, nil
}
