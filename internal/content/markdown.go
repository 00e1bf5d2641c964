package content

import (
	"bytes"
	"fmt"
	"html/template"
	"regexp"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

var md = goldmark.New(
	goldmark.WithExtensions(
		extension.Linkify,
		extension.Typographer,
	),
)

// HTML renders a markdown paragraph. Raw HTML in the source is dropped.
func HTML(src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(unwrap(src)), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return template.HTML(buf.String()), nil
}

var (
	emphasis = regexp.MustCompile(`\*\*([^*]+)\*\*|\*([^*]+)\*|__([^_]+)__`)
	mdLink   = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
)

// Plain strips inline markdown and joins soft-wrapped lines, for terminals.
func Plain(src string) string {
	s := unwrap(src)
	s = mdLink.ReplaceAllString(s, "$1")
	s = emphasis.ReplaceAllString(s, "$1$2$3")
	return s
}

// unwrap joins hard-wrapped source lines into one line per paragraph.
func unwrap(src string) string {
	paras := strings.Split(strings.TrimSpace(src), "\n\n")
	for i, p := range paras {
		paras[i] = strings.Join(strings.Fields(p), " ")
	}
	return strings.Join(paras, "\n\n")
}
