package templates

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const frontmatterDelimiter = "---"

// Metadata is the optional YAML frontmatter of a template file
type Metadata struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

// Template is a parsed template resource
type Template struct {
	Metadata
	Body   string
	Source string // "builtin" or the override file path
}

// ParseTemplate splits optional frontmatter from the template body.
// Frontmatter must open on the first line with "---" and close with a
// line holding only "---".
func ParseTemplate(source, text string) (*Template, error) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	tmpl := &Template{Source: source, Body: text}

	if !strings.HasPrefix(text, frontmatterDelimiter+"\n") {
		return tmpl, nil
	}

	rest := text[len(frontmatterDelimiter)+1:]
	end := strings.Index(rest, "\n"+frontmatterDelimiter+"\n")
	var header string
	switch {
	case end >= 0:
		header = rest[:end]
		tmpl.Body = rest[end+len(frontmatterDelimiter)+2:]
	case strings.HasSuffix(rest, "\n"+frontmatterDelimiter):
		header = strings.TrimSuffix(rest, "\n"+frontmatterDelimiter)
		tmpl.Body = ""
	default:
		return nil, fmt.Errorf("unterminated frontmatter in %s", source)
	}

	if err := yaml.Unmarshal([]byte(header), &tmpl.Metadata); err != nil {
		return nil, fmt.Errorf("invalid frontmatter in %s: %w", source, err)
	}
	return tmpl, nil
}
