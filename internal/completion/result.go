package completion

// Flags tell the host which of its own completion sources to suppress while
// the returned list is shown.
type Flags uint8

const (
	// InhibitWordCompletions hides the host's buffer-word completions.
	InhibitWordCompletions Flags = 1 << iota
	// InhibitExplicitCompletions hides completions from other explicit sources.
	InhibitExplicitCompletions
)

// DefaultFlags is attached to every list of path suggestions.
const DefaultFlags = InhibitWordCompletions | InhibitExplicitCompletions

// Has reports whether all bits of f2 are set in f.
func (f Flags) Has(f2 Flags) bool {
	return f&f2 == f2
}

// ResultType distinguishes the three possible answers to a completion query.
type ResultType int

const (
	// ResultNoOpinion lets the host fall back to its default completions.
	ResultNoOpinion ResultType = iota
	// ResultDecline means the query itself was unusable; the host shows nothing
	// from this source.
	ResultDecline
	// ResultSuggestions carries a (possibly empty) candidate list.
	ResultSuggestions
)

// String returns the string representation of a ResultType.
func (t ResultType) String() string {
	switch t {
	case ResultNoOpinion:
		return "no opinion"
	case ResultDecline:
		return "declined"
	case ResultSuggestions:
		return "suggestions"
	default:
		return "unknown"
	}
}

// Result is the answer to a completion query.
type Result struct {
	Type       ResultType
	Candidates []Candidate
	Flags      Flags
}

// NoOpinion returns a result that defers to the host's own completions.
func NoOpinion() Result {
	return Result{Type: ResultNoOpinion}
}

// Decline returns a result for a query that could not be answered.
func Decline() Result {
	return Result{Type: ResultDecline}
}

// Suggestions wraps candidates with the default inhibit flags.
func Suggestions(candidates []Candidate) Result {
	if candidates == nil {
		candidates = []Candidate{}
	}
	return Result{
		Type:       ResultSuggestions,
		Candidates: candidates,
		Flags:      DefaultFlags,
	}
}

// IsNoOpinion reports whether the host should use its defaults.
func (r Result) IsNoOpinion() bool {
	return r.Type == ResultNoOpinion
}

// IsDecline reports whether the query was declined.
func (r Result) IsDecline() bool {
	return r.Type == ResultDecline
}

// HasSuggestions reports whether r carries a candidate list, even an empty one.
func (r Result) HasSuggestions() bool {
	return r.Type == ResultSuggestions
}
