// Package headless provides a host.View over an in-memory document. It has
// no user interface; issued commands are recorded so callers can inspect
// what a real editor would have been asked to do.
package headless

import (
	"github.com/atinylittleshell/strpath/internal/host"
	"github.com/atinylittleshell/strpath/internal/scope"
)

// Command is one recorded host command.
type Command struct {
	Name string
	Args host.Args
}

// View is a single-cursor document implementing host.View.
type View struct {
	id       host.ViewID
	lang     string
	doc      *scope.Document
	cursor   int
	commands []Command

	// OnCommand, if set, is called for every command after it is recorded.
	OnCommand func(name string, args host.Args)
}

var _ host.View = (*View)(nil)

// New creates a view over text in the given language with the cursor at the
// end of the text.
func New(id host.ViewID, text, lang string) *View {
	doc := scope.NewDocument(text, lang)
	return &View{
		id:     id,
		lang:   lang,
		doc:    doc,
		cursor: doc.Len(),
	}
}

// ID implements host.View.
func (v *View) ID() host.ViewID {
	return v.id
}

// Sel implements host.View.
func (v *View) Sel() []host.Region {
	return []host.Region{host.Point(v.cursor)}
}

// MatchSelector implements host.View.
func (v *View) MatchSelector(pt int, selector string) bool {
	return v.doc.MatchSelector(pt, selector)
}

// ExtractScope implements host.View.
func (v *View) ExtractScope(pt int) (host.Region, bool) {
	return v.doc.ExtractScope(pt)
}

// Substr implements host.View.
func (v *View) Substr(r host.Region) string {
	return v.doc.Substr(r)
}

// RunCommand implements host.View.
func (v *View) RunCommand(name string, args host.Args) {
	v.commands = append(v.commands, Command{Name: name, Args: args})
	if v.OnCommand != nil {
		v.OnCommand(name, args)
	}
}

// Text returns the document text.
func (v *View) Text() string {
	return v.doc.Text()
}

// Cursor returns the cursor offset.
func (v *View) Cursor() int {
	return v.cursor
}

// SetCursor moves the cursor, clamped to the document.
func (v *View) SetCursor(pt int) {
	if pt < 0 {
		pt = 0
	}
	if pt > v.doc.Len() {
		pt = v.doc.Len()
	}
	v.cursor = pt
}

// SetText replaces the document and moves the cursor to its end.
func (v *View) SetText(text string) {
	v.doc = scope.NewDocument(text, v.lang)
	v.cursor = v.doc.Len()
}

// Insert inserts text at the cursor and moves the cursor past it.
func (v *View) Insert(text string) {
	runes := []rune(v.doc.Text())
	ins := []rune(text)

	result := make([]rune, 0, len(runes)+len(ins))
	result = append(result, runes[:v.cursor]...)
	result = append(result, ins...)
	result = append(result, runes[v.cursor:]...)

	cursor := v.cursor + len(ins)
	v.doc = scope.NewDocument(string(result), v.lang)
	v.cursor = cursor
}

// Commands returns the commands issued so far.
func (v *View) Commands() []Command {
	return v.commands
}

// CommandNames returns the names of the commands issued so far.
func (v *View) CommandNames() []string {
	names := make([]string, 0, len(v.commands))
	for _, c := range v.commands {
		names = append(names, c.Name)
	}
	return names
}

// ClearCommands forgets recorded commands.
func (v *View) ClearCommands() {
	v.commands = nil
}
