package editor

import (
	"fmt"
	"strings"

	"github.com/atinylittleshell/strpath/internal/scope"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/rivo/uniseg"
)

const (
	prompt = "> "

	// maxPopupRows limits how many popup rows are drawn at once.
	maxPopupRows = 10

	// minLabelWidth keeps the label column readable on narrow terminals.
	minLabelWidth = 8
)

// Renderer draws the editor.
type Renderer struct {
	config RenderConfig
	width  int
}

// NewRenderer creates a new Renderer with the given configuration.
func NewRenderer(config RenderConfig) *Renderer {
	return &Renderer{
		config: config,
		width:  80,
	}
}

// SetWidth sets the terminal width for rendering.
func (r *Renderer) SetWidth(width int) {
	if width > 0 {
		r.width = width
	}
}

// Width returns the current terminal width.
func (r *Renderer) Width() int {
	return r.width
}

// Render draws the tab bar, the current line, the popup, a status line and
// the help line.
func (r *Renderer) Render(tabs []*Document, current int, popup *Popup, status, helpLine string) string {
	var sb strings.Builder

	sb.WriteString(r.RenderTabs(tabs, current))
	sb.WriteString("\n")
	sb.WriteString(r.RenderLine(tabs[current]))
	sb.WriteString("\n")

	if popup.Visible() {
		sb.WriteString(r.RenderPopup(popup))
		sb.WriteString("\n")
	}

	sb.WriteString(status)
	sb.WriteString("\n")
	sb.WriteString(helpLine)
	return sb.String()
}

// RenderTabs draws one label per tab.
func (r *Renderer) RenderTabs(tabs []*Document, current int) string {
	labels := make([]string, 0, len(tabs))
	for i, doc := range tabs {
		label := fmt.Sprintf("%d", doc.ID())
		if doc.Lang() != "" {
			label += " " + doc.Lang()
		}
		if i == current {
			labels = append(labels, r.config.ActiveTabStyle.Render(label))
		} else {
			labels = append(labels, r.config.TabStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, labels...)
}

// RenderLine draws the document text with string and comment scopes
// highlighted and the cursor shown in reverse video.
func (r *Renderer) RenderLine(doc *Document) string {
	runes := []rune(doc.Text())
	pos := doc.Buffer().Pos()

	var sb strings.Builder
	sb.WriteString(r.config.PromptStyle.Render(prompt))

	for _, span := range doc.Spans() {
		style := r.styleFor(span.Scope)
		if span.Start <= pos && pos < span.End {
			sb.WriteString(style.Render(string(runes[span.Start:pos])))
			sb.WriteString(r.config.CursorStyle.Render(string(runes[pos])))
			sb.WriteString(style.Render(string(runes[pos+1 : span.End])))
			continue
		}
		sb.WriteString(style.Render(string(runes[span.Start:span.End])))
	}

	if pos >= len(runes) {
		sb.WriteString(r.config.CursorStyle.Render(" "))
	}
	return sb.String()
}

func (r *Renderer) styleFor(name string) lipgloss.Style {
	switch {
	case scope.Match(name, scope.String):
		return r.config.StringStyle
	case scope.Match(name, scope.Comment):
		return r.config.CommentStyle
	default:
		return r.config.TextStyle
	}
}

// RenderPopup draws the completion popup. Labels are aligned by display
// width and truncated to fit the terminal. The details of the selected item
// are shown below the list.
func (r *Renderer) RenderPopup(popup *Popup) string {
	items := popup.Items()
	first, last := visibleRange(len(items), popup.Selected(), maxPopupRows)

	labelWidth := 0
	annotationWidth := 0
	for _, item := range items[first:last] {
		labelWidth = max(labelWidth, uniseg.StringWidth(item.Label))
		annotationWidth = max(annotationWidth, uniseg.StringWidth(item.Annotation))
	}

	// border, glyph column and spacing
	available := r.width - 4 - 3 - annotationWidth - 2
	labelWidth = min(labelWidth, max(available, minLabelWidth))

	rows := make([]string, 0, last-first+1)
	for i := first; i < last; i++ {
		item := items[i]

		glyph := item.Glyph
		if glyph == "" {
			glyph = " "
		}
		glyph += strings.Repeat(" ", max(0, 2-uniseg.StringWidth(glyph)))

		label := truncate.StringWithTail(item.Label, uint(labelWidth), "…")
		label += strings.Repeat(" ", labelWidth-uniseg.StringWidth(label))

		marker := "  "
		if i == popup.Selected() {
			marker = "> "
			label = r.config.SelectedStyle.Render(label)
		}

		row := marker + glyph + " " + label
		if item.Annotation != "" {
			row += "  " + r.config.AnnotationStyle.Render(item.Annotation)
		}
		rows = append(rows, row)
	}

	if item, ok := popup.Current(); ok && item.Details != "" {
		rows = append(rows, r.config.AnnotationStyle.Render(item.Details))
	}

	return r.config.PopupStyle.Render(strings.Join(rows, "\n"))
}

// visibleRange returns the window of at most size rows that contains
// selected.
func visibleRange(n, selected, size int) (int, int) {
	if n <= size {
		return 0, n
	}
	first := selected - size/2
	first = clamp(first, 0, n-size)
	return first, first + size
}
