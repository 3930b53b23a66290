package utils

import (
	"strings"
	"testing"
)

func TestRenderMarkdownSanitizes(t *testing.T) {
	out := string(RenderMarkdown("**bold** <script>alert(1)</script>"))
	if !strings.Contains(out, "<strong>bold</strong>") {
		t.Errorf("markdown not rendered: %s", out)
	}
	if strings.Contains(out, "<script>") {
		t.Errorf("script tag survived sanitization: %s", out)
	}
}

func TestRenderMarkdownHardensLinks(t *testing.T) {
	out := string(RenderMarkdown("[src](https://example.com/fact)"))
	if !strings.Contains(out, "nofollow") {
		t.Errorf("external link missing nofollow: %s", out)
	}
}
