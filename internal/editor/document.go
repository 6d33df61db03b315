package editor

import (
	"github.com/atinylittleshell/strpath/internal/host"
	"github.com/atinylittleshell/strpath/internal/scope"
)

// Document is one editor tab. It implements host.View; commands the listener
// issues are queued and executed by the Model after the current event.
type Document struct {
	id     host.ViewID
	lang   string
	buffer *Buffer

	// scopes is rebuilt lazily after each text change.
	scopes  *scope.Document
	pending []command
}

type command struct {
	name string
	args host.Args
}

var _ host.View = (*Document)(nil)

// NewDocument creates a document with the cursor at the end of text.
func NewDocument(id host.ViewID, text, lang string) *Document {
	return &Document{
		id:     id,
		lang:   lang,
		buffer: NewBuffer(text),
	}
}

// ID implements host.View.
func (d *Document) ID() host.ViewID {
	return d.id
}

// Sel implements host.View. Editor documents have a single cursor.
func (d *Document) Sel() []host.Region {
	return []host.Region{host.Point(d.buffer.Pos())}
}

// MatchSelector implements host.View.
func (d *Document) MatchSelector(pt int, selector string) bool {
	return d.scopeDocument().MatchSelector(pt, selector)
}

// ExtractScope implements host.View.
func (d *Document) ExtractScope(pt int) (host.Region, bool) {
	return d.scopeDocument().ExtractScope(pt)
}

// Substr implements host.View.
func (d *Document) Substr(r host.Region) string {
	return d.scopeDocument().Substr(r)
}

// RunCommand implements host.View.
func (d *Document) RunCommand(name string, args host.Args) {
	d.pending = append(d.pending, command{name: name, args: args})
}

// Lang returns the document's language.
func (d *Document) Lang() string {
	return d.lang
}

// Buffer returns the document's text buffer.
func (d *Document) Buffer() *Buffer {
	return d.buffer
}

// Text returns the document's text.
func (d *Document) Text() string {
	return d.buffer.Text()
}

// Spans returns the scope spans of the current text.
func (d *Document) Spans() []scope.Span {
	return d.scopeDocument().Spans()
}

// changed drops cached scopes. It must be called after every edit.
func (d *Document) changed() {
	d.scopes = nil
}

// takeCommands returns and clears the queued commands.
func (d *Document) takeCommands() []command {
	cmds := d.pending
	d.pending = nil
	return cmds
}

func (d *Document) scopeDocument() *scope.Document {
	if d.scopes == nil {
		d.scopes = scope.NewDocument(d.buffer.Text(), d.lang)
	}
	return d.scopes
}
