// Package host defines the editor-facing surface that path completion is
// written against. A concrete editor binding implements View; the listener
// and completion packages only ever talk to this interface.
package host

// ViewID identifies one open document view.
type ViewID int

// Region is a half-open range [A, B) of rune offsets into a view's text.
// A may be greater than B for reversed selections.
type Region struct {
	A int
	B int
}

// Point returns an empty region at pt.
func Point(pt int) Region {
	return Region{A: pt, B: pt}
}

// Begin returns the smaller of the two region ends.
func (r Region) Begin() int {
	if r.A < r.B {
		return r.A
	}
	return r.B
}

// End returns the larger of the two region ends.
func (r Region) End() int {
	if r.A > r.B {
		return r.A
	}
	return r.B
}

// Empty reports whether the region spans no characters.
func (r Region) Empty() bool {
	return r.A == r.B
}

// Size returns the number of characters spanned by the region.
func (r Region) Size() int {
	return r.End() - r.Begin()
}

// Contains reports whether pt lies inside the region, end inclusive.
func (r Region) Contains(pt int) bool {
	return r.Begin() <= pt && pt <= r.End()
}

// Command names understood by host bindings.
const (
	CommandAutoComplete         = "auto_complete"
	CommandHideAutoComplete     = "hide_auto_complete"
	CommandTogglePathCompletion = "toggle_path_completion"
)

// Argument keys for CommandAutoComplete.
const (
	ArgDisableAutoInsert       = "disable_auto_insert"
	ArgNextCompletionIfShowing = "next_completion_if_showing"
)

// Args carries command arguments.
type Args map[string]any

// Bool returns the boolean argument stored under key, or def when the key is
// missing or holds a different type.
func (a Args) Bool(key string, def bool) bool {
	if a == nil {
		return def
	}
	v, ok := a[key].(bool)
	if !ok {
		return def
	}
	return v
}

// AutoCompleteArgs returns the options used whenever path completion asks the
// host to (re)open its completion popup: never insert a lone candidate on its
// own, and refresh rather than cycle an already visible list.
func AutoCompleteArgs() Args {
	return Args{
		ArgDisableAutoInsert:       true,
		ArgNextCompletionIfShowing: false,
	}
}

// View is one open document as seen by path completion.
type View interface {
	// ID returns the view identifier.
	ID() ViewID

	// Sel returns the current selection regions. The first region is the
	// primary cursor. An empty slice means the host has no selection.
	Sel() []Region

	// MatchSelector reports whether the scope at pt matches selector.
	MatchSelector(pt int, selector string) bool

	// ExtractScope returns the extent of the scope containing pt.
	// ok is false when pt lies outside the document.
	ExtractScope(pt int) (r Region, ok bool)

	// Substr returns the text covered by r, clamped to the document.
	Substr(r Region) string

	// RunCommand asks the host to run a named command.
	RunCommand(name string, args Args)
}
