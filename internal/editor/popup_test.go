package editor

import (
	"testing"

	"github.com/atinylittleshell/strpath/internal/completion"
)

func labels(items []Item) []string {
	result := make([]string, len(items))
	for i, item := range items {
		result[i] = item.Label
	}
	return result
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestPopupNavigation(t *testing.T) {
	p := NewPopup()
	if p.Visible() {
		t.Fatal("new popup should be hidden")
	}
	p.Next()
	p.Prev()
	if _, ok := p.Current(); ok {
		t.Error("hidden popup should have no current item")
	}

	p.Show(SourceWords, []Item{{Label: "a"}, {Label: "b"}, {Label: "c"}}, 4)
	if !p.Visible() || p.Source() != SourceWords || p.Start() != 4 {
		t.Fatalf("unexpected popup state %+v", p)
	}

	p.Prev()
	if item, _ := p.Current(); item.Label != "c" {
		t.Errorf("prev should wrap to the last item, got %q", item.Label)
	}
	p.Next()
	p.Next()
	if item, _ := p.Current(); item.Label != "b" {
		t.Errorf("expected b, got %q", item.Label)
	}

	p.Show(SourcePaths, nil, 0)
	if p.Visible() || p.Source() != SourceNone {
		t.Error("showing no items should hide the popup")
	}
}

func TestPathItems(t *testing.T) {
	candidates := []completion.Candidate{
		{Trigger: "docs/", Annotation: "Dir", Completion: "docs/", Kind: completion.Kind{Glyph: "📁"}},
		{Trigger: "main.go", Annotation: "File", Completion: "main.go", Details: "Size: 1 kB"},
		{Trigger: "Makefile", Annotation: "File", Completion: "Makefile"},
	}

	all := pathItems(candidates, "")
	if !equalStrings(labels(all), []string{"docs/", "main.go", "Makefile"}) {
		t.Errorf("unexpected items %v", labels(all))
	}
	if all[0].Glyph != "📁" || all[1].Details != "Size: 1 kB" || all[2].Insert != "Makefile" {
		t.Errorf("candidate fields not carried over: %+v", all)
	}

	filtered := pathItems(candidates, "ma")
	if !equalStrings(labels(filtered), []string{"main.go", "Makefile"}) {
		t.Errorf("unexpected filtered items %v", labels(filtered))
	}
}

func TestWordItems(t *testing.T) {
	words := []string{"alpha", "beta", "alpha", "al", "gamma"}

	all := wordItems(words, "")
	if !equalStrings(labels(all), []string{"alpha", "beta", "al", "gamma"}) {
		t.Errorf("unexpected items %v", labels(all))
	}

	matching := wordItems(words, "al")
	if !equalStrings(labels(matching), []string{"alpha"}) {
		t.Errorf("unexpected items %v", labels(matching))
	}
}
