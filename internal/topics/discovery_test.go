package topics

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeContent(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func TestDiscover_MissingDirectoryYieldsNoTopics(t *testing.T) {
	tree, err := Discover(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	require.Empty(t, tree)
}

func TestDiscover_TitleFromFrontmatter(t *testing.T) {
	root := t.TempDir()
	writeContent(t, root, map[string]string{
		"intro.md": "---\ntitle: Getting Started\n---\n# Ignored Heading\n",
	})

	tree, err := Discover(root)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	require.Equal(t, "Getting Started", tree[0].Title)
	require.Equal(t, "intro.html", tree[0].URL)
}

func TestDiscover_TitleFallsBackToFirstHeadingThenFilename(t *testing.T) {
	root := t.TempDir()
	writeContent(t, root, map[string]string{
		"guide.md": "# Guide Heading\n\nBody\n",
		"plain.md": "no headings here\n",
	})

	tree, err := Discover(root)
	require.NoError(t, err)
	require.Len(t, tree, 2)
	require.Equal(t, "Guide Heading", tree[0].Title)
	require.Equal(t, "plain", tree[1].Title)
}

func TestDiscover_DirectoriesNestAndPromoteIndex(t *testing.T) {
	root := t.TempDir()
	writeContent(t, root, map[string]string{
		"guides/index.md":   "---\ntitle: Guides\n---\n",
		"guides/install.md": "# Install\n",
		"misc/notes.md":     "# Notes\n",
	})

	tree, err := Discover(root)
	require.NoError(t, err)
	require.Len(t, tree, 2)

	guides := tree[0]
	require.Equal(t, "Guides", guides.Title)
	require.Equal(t, "guides/index.html", guides.URL)
	require.Len(t, guides.Children, 1)
	require.Equal(t, "Install", guides.Children[0].Title)
	require.Equal(t, "guides/install.html", guides.Children[0].URL)

	misc := tree[1]
	require.Equal(t, "misc", misc.Title)
	require.Empty(t, misc.URL, "directory without index stays a pure group")
	require.Len(t, misc.Children, 1)
}

func TestDiscover_SkipsNonMarkdownAndHiddenFiles(t *testing.T) {
	root := t.TempDir()
	writeContent(t, root, map[string]string{
		"a.md":      "# A\n",
		"img.png":   "binary",
		".draft.md": "# Draft\n",
	})

	tree, err := Discover(root)
	require.NoError(t, err)
	require.Len(t, tree, 1)
	require.Equal(t, "A", tree[0].Title)
}
