package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
	"gopkg.in/yaml.v3"
)

// Metadata describes a markdown report.
type Metadata struct {
	Title string // front matter "title", else the first H1
}

// ParseMetadata extracts front matter and the document title from markdown source.
func ParseMetadata(source []byte) (*Metadata, error) {
	fields, body, err := splitFrontmatter(source)
	if err != nil {
		return nil, err
	}

	meta := &Metadata{}
	for _, key := range []string{"title", "Title"} {
		if v, ok := fields[key].(string); ok && strings.TrimSpace(v) != "" {
			meta.Title = strings.TrimSpace(v)
			return meta, nil
		}
	}
	meta.Title = firstHeading(body)
	return meta, nil
}

// splitFrontmatter separates a leading "---" delimited YAML block from the body.
// Content without a leading delimiter is returned unchanged with empty fields.
func splitFrontmatter(content []byte) (map[string]any, []byte, error) {
	delimiter := []byte("---")
	if !bytes.HasPrefix(content, delimiter) {
		return map[string]any{}, content, nil
	}

	rest := bytes.TrimPrefix(content, delimiter)
	rest = bytes.TrimLeft(rest, "\r\n")
	if len(rest) == 0 {
		return nil, nil, fmt.Errorf("%w: no content after opening delimiter", ErrInvalidFrontmatter)
	}

	end := bytes.Index(rest, delimiter)
	if end == -1 {
		return nil, nil, fmt.Errorf("%w: closing delimiter not found", ErrInvalidFrontmatter)
	}

	block := rest[:end]
	bodyStart := end + len(delimiter)
	if bodyStart < len(rest) {
		if rest[bodyStart] == '\r' && bodyStart+1 < len(rest) && rest[bodyStart+1] == '\n' {
			bodyStart += 2
		} else if rest[bodyStart] == '\n' {
			bodyStart++
		}
	}

	fields := map[string]any{}
	if len(bytes.TrimSpace(block)) > 0 {
		if err := yaml.Unmarshal(block, &fields); err != nil {
			return nil, nil, fmt.Errorf("%w: %v", ErrInvalidFrontmatter, err)
		}
	}

	return fields, rest[bodyStart:], nil
}

// firstHeading returns the plain text of the first level-one heading, or "".
func firstHeading(source []byte) string {
	doc := goldmark.DefaultParser().Parse(text.NewReader(source))

	var title string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if h, ok := n.(*ast.Heading); ok && h.Level == 1 {
			title = strings.TrimSpace(inlineText(h, source))
			return ast.WalkStop, nil
		}
		return ast.WalkContinue, nil
	})
	return title
}

func inlineText(n ast.Node, source []byte) string {
	var sb strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch v := c.(type) {
		case *ast.Text:
			sb.Write(v.Segment.Value(source))
			if v.SoftLineBreak() || v.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(v.Value)
		default:
			sb.WriteString(inlineText(c, source))
		}
	}
	return sb.String()
}
