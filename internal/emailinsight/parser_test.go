package emailinsight

import (
	"strings"
	"testing"
)

func TestParse_Anchors(t *testing.T) {
	html := `<html><body>
	<a href="https://example.com/one">  First
	link </a>
	<a>No href</a>
	<a href="">Empty href</a>
	<a name="anchor">Named</a>
	<p><a HREF="/relative/path"><span>Nested</span> text</a></p>
	<a href="mailto:team@example.com"></a>
	</body></html>`

	result, err := Parse(strings.NewReader(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []Anchor{
		{Href: "https://example.com/one", Text: "First\n\tlink"},
		{Href: "/relative/path", Text: "Nested text"},
		{Href: "mailto:team@example.com", Text: ""},
	}

	if len(result.Anchors) != len(want) {
		t.Fatalf("anchors = %d, want %d (%+v)", len(result.Anchors), len(want), result.Anchors)
	}
	for i, a := range want {
		if result.Anchors[i] != a {
			t.Errorf("Anchors[%d] = %+v, want %+v", i, result.Anchors[i], a)
		}
	}
}

func TestParse_HrefIsNotResolved(t *testing.T) {
	html := `<base href="https://example.com/"><a href="../docs/../a b?x=1&amp;y=2">x</a>`

	result, err := Parse(strings.NewReader(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Anchors) != 1 {
		t.Fatalf("anchors = %d, want 1", len(result.Anchors))
	}
	if got := result.Anchors[0].Href; got != "../docs/../a b?x=1&y=2" {
		t.Errorf("Href = %q, want raw attribute value", got)
	}
}

func TestParse_Text(t *testing.T) {
	tests := []struct {
		name     string
		html     string
		expected string
	}{
		{
			name:     "single anchor",
			html:     `<a href="https://x.com/tutorial/intro">Intro</a>`,
			expected: "Intro",
		},
		{
			name:     "document order without separators",
			html:     `<html><head><title>Hi</title></head><body><p>One</p><p>Two</p></body></html>`,
			expected: "HiOneTwo",
		},
		{
			name:     "entities decoded",
			html:     `<p>a &amp; b</p>`,
			expected: "a & b",
		},
		{
			name:     "comments excluded",
			html:     `<p>Hello</p><!-- step by step -->`,
			expected: "Hello",
		},
		{
			name:     "style and script excluded",
			html:     `<html><head><style>.step{color:red}</style><script>var setup=1</script></head><body><p>Hello</p></body></html>`,
			expected: "Hello",
		},
		{
			name:     "template excluded",
			html:     `<p>Hi</p><template><p>install</p></template>`,
			expected: "Hi",
		},
		{
			name:     "plain text without markup",
			html:     `just text`,
			expected: "just text",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Parse(strings.NewReader(tt.html))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if result.Text != tt.expected {
				t.Errorf("Text = %q, want %q", result.Text, tt.expected)
			}
		})
	}
}

func TestParse_ReaderError(t *testing.T) {
	_, err := Parse(errReader{})
	if err == nil {
		t.Fatal("expected error from failing reader, got nil")
	}
}

func TestParse_AnchorInsideTemplateStillExtracted(t *testing.T) {
	html := `<template><a href="https://example.com/guide">Guide</a></template><p>Body</p>`

	result, err := Parse(strings.NewReader(html))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Anchors) != 1 || result.Anchors[0].Href != "https://example.com/guide" {
		t.Errorf("Anchors = %+v, want the templated guide link", result.Anchors)
	}
	if result.Text != "Body" {
		t.Errorf("Text = %q, want %q", result.Text, "Body")
	}
}
