// Package frontmatter splits YAML frontmatter from topic markdown files.
package frontmatter

import (
	"bytes"
	"errors"

	"gopkg.in/yaml.v3"
)

// ErrMissingClosingDelimiter is returned when a document opens a frontmatter
// block and never closes it.
var ErrMissingClosingDelimiter = errors.New("frontmatter: missing closing delimiter")

// Split separates YAML frontmatter (`---` delimited) from the Markdown body.
//
// If the document does not start with a frontmatter delimiter, had is false
// and body is the full input.
func Split(content []byte) (frontmatter []byte, body []byte, had bool, err error) {
	nl := "\n"
	if i := bytes.IndexByte(content, '\n'); i > 0 && content[i-1] == '\r' {
		nl = "\r\n"
	}

	open := []byte("---" + nl)
	if !bytes.HasPrefix(content, open) {
		return nil, content, false, nil
	}

	start := len(open)
	if bytes.HasPrefix(content[start:], open) {
		// Empty frontmatter block.
		return []byte{}, content[start+len(open):], true, nil
	}

	closeSeq := []byte(nl + "---" + nl)
	idx := bytes.Index(content[start:], closeSeq)
	if idx < 0 {
		return nil, nil, false, ErrMissingClosingDelimiter
	}

	end := start + idx + len(nl)
	return content[start:end], content[start+idx+len(closeSeq):], true, nil
}

// Fields parses a frontmatter block into a loose map. An empty block yields
// an empty map.
func Fields(frontmatter []byte) (map[string]any, error) {
	fields := map[string]any{}
	if len(bytes.TrimSpace(frontmatter)) == 0 {
		return fields, nil
	}
	if err := yaml.Unmarshal(frontmatter, &fields); err != nil {
		return nil, err
	}
	return fields, nil
}
