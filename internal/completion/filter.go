package completion

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
)

// Filter decides how the text typed after the last separator narrows the
// entries of the resolved directory.
type Filter int

const (
	// FilterNone offers every entry regardless of the typed remainder.
	FilterNone Filter = iota
	// FilterPrefix keeps entries whose name starts with the remainder.
	FilterPrefix
	// FilterFuzzy keeps fuzzy matches of the remainder, best match first.
	FilterFuzzy
)

// String returns the configuration name of the filter.
func (f Filter) String() string {
	switch f {
	case FilterPrefix:
		return "prefix"
	case FilterFuzzy:
		return "fuzzy"
	default:
		return "none"
	}
}

// ParseFilter converts a configuration value into a Filter.
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return FilterNone, nil
	case "prefix":
		return FilterPrefix, nil
	case "fuzzy":
		return FilterFuzzy, nil
	default:
		return FilterNone, fmt.Errorf("unknown filter %q", s)
	}
}

// Apply narrows candidates by remainder. An empty remainder keeps everything.
func (f Filter) Apply(candidates []Candidate, remainder string) []Candidate {
	if remainder == "" {
		return candidates
	}

	switch f {
	case FilterPrefix:
		return lo.Filter(candidates, func(c Candidate, _ int) bool {
			return strings.HasPrefix(c.Trigger, remainder)
		})
	case FilterFuzzy:
		names := lo.Map(candidates, func(c Candidate, _ int) string {
			return strings.TrimSuffix(c.Trigger, Separator)
		})
		matches := fuzzy.Find(remainder, names)
		return lo.Map(matches, func(m fuzzy.Match, _ int) Candidate {
			return candidates[m.Index]
		})
	default:
		return candidates
	}
}

// excluder drops entries whose name matches any of its patterns.
type excluder struct {
	patterns []string
}

func newExcluder(patterns []string) (*excluder, error) {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(p) {
			return nil, fmt.Errorf("invalid exclude pattern %q", p)
		}
	}
	return &excluder{patterns: patterns}, nil
}

func (e *excluder) excluded(name string) bool {
	if e == nil {
		return false
	}
	return lo.SomeBy(e.patterns, func(p string) bool {
		ok, _ := doublestar.Match(p, name)
		return ok
	})
}
