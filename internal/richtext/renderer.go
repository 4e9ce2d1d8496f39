package richtext

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// Renderer converts the markdown stored in richtext fields into HTML for the
// dashboard preview pane. It is stateless; one instance can be shared across
// sessions without locking.
type Renderer struct {
	engine goldmark.Markdown
}

// NewRenderer builds a renderer with GFM extensions and auto heading ids.
func NewRenderer() *Renderer {
	return &Renderer{
		engine: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
		),
	}
}

// HTML renders markdown source into HTML.
func (r *Renderer) HTML(source string) (string, error) {
	var buf bytes.Buffer
	if err := r.engine.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("richtext render: %w", err)
	}
	return buf.String(), nil
}
