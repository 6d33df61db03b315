// Package scope assigns lexical scopes such as "string" or "comment" to the
// text of a document, the way an editor's syntax engine does. Host bindings
// use it to answer selector matching and scope extraction queries.
package scope

import (
	"sort"
	"strings"
)

// Scope names assigned to spans.
const (
	Source       = "source"
	String       = "string"
	StringQuoted = "string.quoted"
	StringDouble = "string.quoted.double"
	StringSingle = "string.quoted.single"
	Comment      = "comment"
	CommentLine  = "comment.line"
)

// Span is a run of text sharing one scope. Start and End are rune offsets,
// End exclusive.
type Span struct {
	Start int
	End   int
	Scope string

	// Open marks a string that is not terminated yet. The position right
	// after an open span still belongs to it, so a cursor at the end of a
	// half-typed string is inside the string.
	Open bool
}

// Contains reports whether pt belongs to the span.
func (s Span) Contains(pt int) bool {
	if s.Start <= pt && pt < s.End {
		return true
	}
	return s.Open && pt == s.End
}

// Len returns the number of runes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Match reports whether scope matches selector. A selector matches its own
// name and every dotted refinement of it: "string" matches
// "string.quoted.double" but not "strings".
func Match(scope, selector string) bool {
	selector = strings.TrimSpace(selector)
	if selector == "" {
		return false
	}
	return scope == selector || strings.HasPrefix(scope, selector+".")
}

// normalize sorts spans, drops empty or overlapping ones, clamps them to n
// runes and fills the gaps with Source spans.
func normalize(spans []Span, n int) []Span {
	sort.SliceStable(spans, func(i, j int) bool {
		return spans[i].Start < spans[j].Start
	})

	result := make([]Span, 0, len(spans)*2+1)
	last := 0
	for _, s := range spans {
		if s.End > n {
			s.End = n
		}
		if s.Start < last || s.End <= s.Start {
			continue
		}
		if s.Start > last {
			result = append(result, Span{Start: last, End: s.Start, Scope: Source})
		}
		result = append(result, s)
		last = s.End
	}
	if last < n {
		result = append(result, Span{Start: last, End: n, Scope: Source})
	}
	return result
}

// markOpen flags string spans that start with a quote but are not closed by
// the same, unescaped quote.
func markOpen(spans []Span, runes []rune) {
	for i := range spans {
		s := &spans[i]
		if !Match(s.Scope, String) || s.Len() == 0 {
			continue
		}
		quote := runes[s.Start]
		if quote != '"' && quote != '\'' && quote != '`' {
			continue
		}
		if s.Len() == 1 || runes[s.End-1] != quote || escaped(runes, s.End-1) {
			s.Open = true
		}
	}
}

// escaped reports whether the rune at i is preceded by an odd number of
// backslashes.
func escaped(runes []rune, i int) bool {
	count := 0
	for j := i - 1; j >= 0 && runes[j] == '\\'; j-- {
		count++
	}
	return count%2 == 1
}
