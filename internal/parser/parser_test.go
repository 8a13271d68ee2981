package parser

import (
	"testing"
)

func TestParse_FrontmatterAndBody(t *testing.T) {
	input := []byte("---\ntitle: Monday standup\n---\n# Monday standup\n- [ ] review PR\n")
	r, err := Parse(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Title != "Monday standup" {
		t.Errorf("title = %q, want %q", r.Title, "Monday standup")
	}
	if r.Body != "# Monday standup\n- [ ] review PR\n" {
		t.Errorf("body = %q", r.Body)
	}
}

func TestParse_NoFrontmatter(t *testing.T) {
	input := []byte("# Just a heading\nSome text.\n")
	r, err := Parse(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Frontmatter != nil {
		t.Errorf("expected nil frontmatter, got %v", r.Frontmatter)
	}
	if r.Title != "Just a heading" {
		t.Errorf("title = %q, want %q", r.Title, "Just a heading")
	}
}

func TestParse_InvalidYAMLFallback(t *testing.T) {
	input := []byte("---\n: invalid: yaml: {{{\n---\nBody\n")
	r, err := Parse(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Frontmatter != nil {
		t.Errorf("expected nil frontmatter on invalid YAML")
	}
	if r.Body != string(input) {
		t.Errorf("body = %q, want full input", r.Body)
	}
}

func TestParse_UnterminatedFrontmatter(t *testing.T) {
	input := []byte("---\ntitle: dangling\nno closing fence\n")
	r, err := Parse(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Frontmatter != nil {
		t.Error("expected nil frontmatter without closing delimiter")
	}
}

func TestDeriveTitle_FrontmatterOverH1(t *testing.T) {
	fm := map[string]any{"title": "FM Title"}
	body := "# H1 Title\ntext"
	if got := deriveTitle(fm, body); got != "FM Title" {
		t.Errorf("title = %q, want %q", got, "FM Title")
	}
}

func TestDeriveTitle_H1Fallback(t *testing.T) {
	if got := deriveTitle(nil, "some text\n# My Heading\nmore"); got != "My Heading" {
		t.Errorf("title = %q, want %q", got, "My Heading")
	}
}
