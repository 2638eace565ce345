package theme

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	apierrors "git.home.luguber.info/inful/apidocs/internal/errors"
	"git.home.luguber.info/inful/apidocs/internal/util/sets"
)

// expandGlobs resolves base-directory-relative glob patterns to absolute
// file paths. Patterns containing "**" recurse; everything else goes through
// filepath.Glob. Directories are skipped. Order is stable: patterns in
// declaration order, matches in lexical order, duplicates removed.
func expandGlobs(dir string, patterns []string) ([]string, error) {
	var out []string
	seen := sets.New[string]()

	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}
		var matches []string
		var err error
		if strings.Contains(pattern, "**") {
			matches, err = expandRecursive(dir, pattern)
		} else {
			matches, err = filepath.Glob(filepath.Join(dir, filepath.FromSlash(pattern)))
		}
		if err != nil {
			return nil, apierrors.Wrap(err, apierrors.CategoryTheme, apierrors.SeverityFatal,
				fmt.Sprintf("bad glob pattern %q", pattern))
		}
		for _, m := range matches {
			info, err := os.Stat(m)
			if err != nil || info.IsDir() {
				continue
			}
			abs, err := filepath.Abs(m)
			if err != nil {
				return nil, err
			}
			if seen.Add(abs) {
				out = append(out, abs)
			}
		}
	}
	return out, nil
}

// expandRecursive handles patterns with a "**" segment by walking the
// prefix directory and matching the remainder against each file.
func expandRecursive(dir, pattern string) ([]string, error) {
	idx := strings.Index(pattern, "**")
	prefix := strings.TrimSuffix(pattern[:idx], "/")
	suffix := strings.TrimPrefix(pattern[idx+2:], "/")

	root := dir
	if prefix != "" {
		root = filepath.Join(dir, filepath.FromSlash(prefix))
	}
	if _, err := os.Stat(root); os.IsNotExist(err) {
		return nil, nil
	}

	var matches []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, relErr := filepath.Rel(root, p)
		if relErr != nil {
			return relErr
		}
		rel = filepath.ToSlash(rel)

		var ok bool
		var matchErr error
		if strings.Contains(suffix, "/") {
			ok, matchErr = path.Match(suffix, rel)
		} else {
			ok, matchErr = path.Match(suffix, path.Base(rel))
		}
		if matchErr != nil {
			return matchErr
		}
		if ok || suffix == "" {
			matches = append(matches, p)
		}
		return nil
	})
	return matches, err
}
