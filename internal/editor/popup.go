package editor

import (
	"sort"

	"github.com/atinylittleshell/strpath/internal/completion"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
)

// Source tells where the items of the popup came from.
type Source int

const (
	// SourceNone means the popup is hidden.
	SourceNone Source = iota
	// SourcePaths means the path completion listener answered the query.
	SourcePaths
	// SourceWords means the listener had no opinion and the editor fell back
	// to words of the document.
	SourceWords
)

// Item is one row of the completion popup.
type Item struct {
	Label      string
	Annotation string
	Glyph      string
	Details    string
	Insert     string
}

// Popup tracks the completion popup of the current document.
type Popup struct {
	source   Source
	items    []Item
	selected int

	// start is where the text replaced by the selected item begins; it ends
	// at the cursor.
	start int
}

// NewPopup creates a hidden popup.
func NewPopup() *Popup {
	return &Popup{}
}

// Show replaces the popup content and selects the first item. An empty item
// list hides the popup.
func (p *Popup) Show(source Source, items []Item, start int) {
	if len(items) == 0 {
		p.Reset()
		return
	}
	p.source = source
	p.items = items
	p.selected = 0
	p.start = start
}

// Reset hides the popup.
func (p *Popup) Reset() {
	p.source = SourceNone
	p.items = nil
	p.selected = 0
	p.start = 0
}

// Visible reports whether the popup is shown.
func (p *Popup) Visible() bool {
	return len(p.items) > 0
}

// Source returns the source of the items shown.
func (p *Popup) Source() Source {
	return p.source
}

// Items returns the items shown.
func (p *Popup) Items() []Item {
	return p.items
}

// Selected returns the index of the selected item.
func (p *Popup) Selected() int {
	return p.selected
}

// Start returns where the replaced text begins.
func (p *Popup) Start() int {
	return p.start
}

// Current returns the selected item.
func (p *Popup) Current() (Item, bool) {
	if !p.Visible() {
		return Item{}, false
	}
	return p.items[p.selected], true
}

// Next selects the next item, wrapping around.
func (p *Popup) Next() {
	if !p.Visible() {
		return
	}
	p.selected = (p.selected + 1) % len(p.items)
}

// Prev selects the previous item, wrapping around.
func (p *Popup) Prev() {
	if !p.Visible() {
		return
	}
	p.selected--
	if p.selected < 0 {
		p.selected = len(p.items) - 1
	}
}

// pathItems converts candidates to popup rows, keeping those that fuzzily
// match what was typed since the last separator.
func pathItems(candidates []completion.Candidate, typed string) []Item {
	matching := lo.Filter(candidates, func(c completion.Candidate, _ int) bool {
		return typed == "" || fuzzy.MatchFold(typed, c.Trigger)
	})
	return lo.Map(matching, func(c completion.Candidate, _ int) Item {
		return Item{
			Label:      c.Trigger,
			Annotation: c.Annotation,
			Glyph:      c.Kind.Glyph,
			Details:    c.Details,
			Insert:     c.Completion,
		}
	})
}

// wordItems offers the distinct words of the document matching prefix, best
// match first. The prefix itself is not offered.
func wordItems(words []string, prefix string) []Item {
	words = lo.Uniq(words)
	words = lo.Filter(words, func(w string, _ int) bool {
		return w != prefix
	})

	if prefix != "" {
		ranks := fuzzy.RankFindFold(prefix, words)
		sort.Stable(ranks)
		words = lo.Map(ranks, func(r fuzzy.Rank, _ int) string {
			return r.Target
		})
	}

	return lo.Map(words, func(w string, _ int) Item {
		return Item{Label: w, Insert: w}
	})
}
