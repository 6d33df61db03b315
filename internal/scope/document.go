package scope

import (
	"path/filepath"
	"strings"

	"github.com/atinylittleshell/strpath/internal/host"
)

// Plain is the language name for text without a grammar.
const Plain = "plain"

var shellNames = map[string]bool{
	"sh":    true,
	"bash":  true,
	"zsh":   true,
	"shell": true,
}

type classifier interface {
	classify(text string, runes []rune) []Span
}

type basicClassifier struct{}

func (basicClassifier) classify(_ string, runes []rune) []Span {
	return scanBasic(runes, false)
}

func classifierFor(lang string) classifier {
	lang = strings.ToLower(strings.TrimSpace(lang))
	switch {
	case lang == "" || lang == Plain || lang == "text":
		return basicClassifier{}
	case shellNames[lang]:
		return newShellClassifier()
	}
	if l := lookupLexer(lang); l != nil {
		return &lexerClassifier{lexer: l}
	}
	return basicClassifier{}
}

// Classify splits text into scope spans covering every rune. lang is a
// language name ("python", "go"), a shell name ("sh", "bash"), a file name,
// or empty for plain text.
func Classify(text, lang string) []Span {
	runes := []rune(text)
	spans := normalize(classifierFor(lang).classify(text, runes), len(runes))
	markOpen(spans, runes)
	return spans
}

// LanguageForFile guesses a language name from a file name.
func LanguageForFile(name string) string {
	base := strings.ToLower(filepath.Base(name))
	ext := strings.TrimPrefix(filepath.Ext(base), ".")
	if shellNames[ext] || base == ".bashrc" || base == ".zshrc" || base == ".profile" {
		return "sh"
	}
	if l := lookupLexer(base); l != nil {
		return strings.ToLower(l.Config().Name)
	}
	return Plain
}

// Document is a scoped snapshot of some text.
type Document struct {
	runes []rune
	spans []Span
}

// NewDocument classifies text and returns the resulting document.
func NewDocument(text, lang string) *Document {
	return &Document{
		runes: []rune(text),
		spans: Classify(text, lang),
	}
}

// Text returns the document text.
func (d *Document) Text() string {
	return string(d.runes)
}

// Len returns the document length in runes.
func (d *Document) Len() int {
	return len(d.runes)
}

// Spans returns the scope spans of the document.
func (d *Document) Spans() []Span {
	return d.spans
}

// ScopeAt returns the span the character at pt belongs to. The position just
// past the last character only belongs to an open string.
func (d *Document) ScopeAt(pt int) (Span, bool) {
	for _, s := range d.spans {
		if s.Start <= pt && pt < s.End {
			return s, true
		}
	}
	for _, s := range d.spans {
		if s.Open && pt == s.End {
			return s, true
		}
	}
	return Span{}, false
}

// MatchSelector reports whether the scope at pt matches selector.
func (d *Document) MatchSelector(pt int, selector string) bool {
	s, ok := d.ScopeAt(pt)
	if !ok {
		return false
	}
	return Match(s.Scope, selector)
}

// ExtractScope returns the extent of the scope at pt.
func (d *Document) ExtractScope(pt int) (host.Region, bool) {
	s, ok := d.ScopeAt(pt)
	if !ok {
		return host.Region{}, false
	}
	return host.Region{A: s.Start, B: s.End}, true
}

// Substr returns the text covered by r, clamped to the document.
func (d *Document) Substr(r host.Region) string {
	begin := clamp(r.Begin(), 0, len(d.runes))
	end := clamp(r.End(), 0, len(d.runes))
	return string(d.runes[begin:end])
}

func clamp(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
