package topics

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"git.home.luguber.info/inful/apidocs/internal/errors"
	"git.home.luguber.info/inful/apidocs/internal/frontmatter"
	"git.home.luguber.info/inful/apidocs/internal/markdown"
)

// Discover builds a topic tree from the markdown files under contentDir,
// grouping by directory structure. A directory with an index.md becomes a
// topic with both a URL and children; one without becomes a pure group node.
// Siblings are ordered by filename.
func Discover(contentDir string) ([]*Topic, error) {
	if _, err := os.Stat(contentDir); os.IsNotExist(err) {
		return nil, nil
	}
	return discoverDir(contentDir, "")
}

func discoverDir(dir, urlPrefix string) ([]*Topic, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryContent, errors.SeverityFatal,
			fmt.Sprintf("failed to read content directory %s", dir))
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var topics []*Topic
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		if entry.IsDir() {
			children, err := discoverDir(filepath.Join(dir, name), path.Join(urlPrefix, name))
			if err != nil {
				return nil, err
			}
			if len(children) == 0 {
				continue
			}
			topic := &Topic{Title: name, Children: children}
			// Promote the directory's index topic onto the group node.
			for i, child := range children {
				if strings.EqualFold(path.Base(child.URL), "index.html") {
					topic.Title = child.Title
					topic.URL = child.URL
					topic.Children = append(children[:i:i], children[i+1:]...)
					break
				}
			}
			topics = append(topics, topic)
			continue
		}

		if !strings.EqualFold(filepath.Ext(name), ".md") {
			continue
		}
		topic, err := readTopic(filepath.Join(dir, name), urlPrefix)
		if err != nil {
			return nil, err
		}
		topics = append(topics, topic)
	}
	return topics, nil
}

func readTopic(file, urlPrefix string) (*Topic, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryContent, errors.SeverityFatal,
			fmt.Sprintf("failed to read topic %s", file))
	}

	fm, body, had, err := frontmatter.Split(data)
	if err != nil {
		return nil, errors.Wrap(err, errors.CategoryContent, errors.SeverityFatal,
			fmt.Sprintf("malformed frontmatter in %s", file))
	}

	base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
	title := ""
	if had {
		fields, err := frontmatter.Fields(fm)
		if err != nil {
			return nil, errors.Wrap(err, errors.CategoryContent, errors.SeverityFatal,
				fmt.Sprintf("invalid frontmatter in %s", file))
		}
		if t, ok := fields["title"].(string); ok {
			title = t
		}
	}
	if title == "" {
		title = markdown.FirstHeading(body)
	}
	if title == "" {
		title = base
	}

	return &Topic{
		Title: title,
		URL:   path.Join(urlPrefix, base+".html"),
	}, nil
}
