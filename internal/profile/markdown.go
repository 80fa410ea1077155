package profile

import (
	"bytes"
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var (
	md = goldmark.New(goldmark.WithExtensions(extension.Typographer))
	// biographies only need paragraphs and inline emphasis
	policy = bluemonday.UGCPolicy()
)

// RenderMarkdown converts Markdown to sanitized HTML.
func RenderMarkdown(src string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("convert markdown: %w", err)
	}
	return string(policy.SanitizeBytes(buf.Bytes())), nil
}
