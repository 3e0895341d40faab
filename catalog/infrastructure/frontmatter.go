package infrastructure

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/XaaXaaX/sdk/catalog/domain"
)

const frontMatterDelimiter = "---"

// MarshalDocument renders a resource as a markdown document with YAML front
// matter. Unrecognized fields carried in Extensions are written back
// verbatim alongside the known ones.
func MarshalDocument(resource *domain.Resource) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(frontMatterDelimiter + "\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(resource); err != nil {
		return nil, fmt.Errorf("encoding front matter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("closing front matter encoder: %w", err)
	}

	buf.WriteString(frontMatterDelimiter + "\n")
	buf.WriteString(resource.Markdown)
	return buf.Bytes(), nil
}

// ParseDocument parses a markdown document with YAML front matter into a
// resource. The body below the closing delimiter becomes Markdown; front
// matter keys the resource does not declare land in Extensions.
func ParseDocument(data []byte) (*domain.Resource, error) {
	text := string(data)
	if !strings.HasPrefix(text, frontMatterDelimiter+"\n") && text != frontMatterDelimiter {
		return nil, fmt.Errorf("document has no front matter")
	}

	rest := strings.TrimPrefix(text, frontMatterDelimiter+"\n")
	front, body, found := cutFrontMatter(rest)
	if !found {
		return nil, fmt.Errorf("document front matter is unterminated")
	}

	var resource domain.Resource
	if err := yaml.Unmarshal([]byte(front+"\n"), &resource); err != nil {
		return nil, fmt.Errorf("decoding front matter: %w", err)
	}
	resource.Markdown = body
	return &resource, nil
}

// cutFrontMatter splits rest at the first line that is exactly the closing
// delimiter, so indented lines like "--- divider ---" inside YAML block
// scalars do not terminate the front matter early.
func cutFrontMatter(rest string) (front, body string, found bool) {
	closing := "\n" + frontMatterDelimiter + "\n"
	if idx := strings.Index(rest, closing); idx >= 0 {
		return rest[:idx], rest[idx+len(closing):], true
	}
	if strings.HasSuffix(rest, "\n"+frontMatterDelimiter) {
		return strings.TrimSuffix(rest, "\n"+frontMatterDelimiter), "", true
	}
	return "", "", false
}
