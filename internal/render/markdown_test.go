package render

import (
	"strings"
	"testing"
)

func TestHTML(t *testing.T) {
	r := New()

	html, err := r.HTML([]byte("### Button\nUse the **btn** class."))
	if err != nil {
		t.Fatalf("HTML failed: %v", err)
	}
	if !strings.Contains(html, "<h3") {
		t.Errorf("expected an h3 heading, got %q", html)
	}
	if !strings.Contains(html, "<strong>btn</strong>") {
		t.Errorf("expected bold rendering, got %q", html)
	}
}

func TestOutline(t *testing.T) {
	r := New()

	src := "### Button\nIntro.\n#### Sizes\nSmall to large.\n#### Variants\nGhost and outline."
	items, err := r.Outline([]byte(src))
	if err != nil {
		t.Fatalf("Outline failed: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("expected 3 outline items, got %d: %v", len(items), items)
	}
	if items[0].Title != "Button" {
		t.Errorf("first item: got %q", items[0].Title)
	}
	if items[1].Level <= items[0].Level {
		t.Errorf("subheadings should nest deeper: %v", items)
	}
}

func TestOutline_NoHeadings(t *testing.T) {
	r := New()

	items, err := r.Outline([]byte("plain text, no headings at all"))
	if err != nil {
		t.Fatalf("Outline failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected empty outline, got %v", items)
	}
}
