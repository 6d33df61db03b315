package editor

import (
	"strings"
	"unicode"
)

// wordSeparators are the characters that end a word for word completion,
// in addition to whitespace.
const wordSeparators = "./\\()\"'-:,;<>~!@#$%^&*|+=[]{}`?"

// Buffer manages the text and cursor of one single-line document.
type Buffer struct {
	// runes stores the text content as a slice of runes
	runes []rune
	// pos is the cursor position (index in runes)
	pos int
}

// NewBuffer creates a buffer with initial text and the cursor at its end.
func NewBuffer(text string) *Buffer {
	runes := []rune(text)
	return &Buffer{
		runes: runes,
		pos:   len(runes),
	}
}

// Text returns the current text content as a string.
func (b *Buffer) Text() string {
	return string(b.runes)
}

// Len returns the length of the text in runes.
func (b *Buffer) Len() int {
	return len(b.runes)
}

// Pos returns the current cursor position.
func (b *Buffer) Pos() int {
	return b.pos
}

// SetPos sets the cursor position, clamped to [0, Len()].
func (b *Buffer) SetPos(pos int) {
	b.pos = clamp(pos, 0, len(b.runes))
}

// CursorStart moves the cursor to the start of the buffer.
func (b *Buffer) CursorStart() {
	b.pos = 0
}

// CursorEnd moves the cursor to the end of the buffer.
func (b *Buffer) CursorEnd() {
	b.pos = len(b.runes)
}

// Insert inserts text at the cursor and moves the cursor past it.
func (b *Buffer) Insert(text string) {
	b.Replace(b.pos, b.pos, text)
}

// Replace replaces the runes in [start, end) with text and moves the cursor
// to the end of the inserted text.
func (b *Buffer) Replace(start, end int, text string) {
	start = clamp(start, 0, len(b.runes))
	end = clamp(end, start, len(b.runes))
	ins := []rune(text)

	result := make([]rune, 0, len(b.runes)-(end-start)+len(ins))
	result = append(result, b.runes[:start]...)
	result = append(result, ins...)
	result = append(result, b.runes[end:]...)

	b.runes = result
	b.pos = start + len(ins)
}

// DeleteCharBackward deletes the character before the cursor.
// Returns true if a character was deleted.
func (b *Buffer) DeleteCharBackward() bool {
	if b.pos == 0 {
		return false
	}
	b.Replace(b.pos-1, b.pos, "")
	return true
}

// DeleteCharForward deletes the character at the cursor.
// Returns true if a character was deleted.
func (b *Buffer) DeleteCharForward() bool {
	if b.pos >= len(b.runes) {
		return false
	}
	pos := b.pos
	b.Replace(pos, pos+1, "")
	b.pos = pos
	return true
}

// DeleteWordBackward deletes the word to the left of the cursor.
// Returns true if anything was deleted.
func (b *Buffer) DeleteWordBackward() bool {
	if b.pos == 0 {
		return false
	}
	end := b.pos
	b.WordBackward()
	b.Replace(b.pos, end, "")
	return true
}

// WordBackward moves the cursor one word to the left.
// A word is a sequence of non-whitespace characters.
func (b *Buffer) WordBackward() {
	i := b.pos - 1
	for i >= 0 && unicode.IsSpace(b.runes[i]) {
		i--
	}
	for i >= 0 && !unicode.IsSpace(b.runes[i]) {
		i--
	}
	b.pos = i + 1
}

// WordForward moves the cursor one word to the right.
func (b *Buffer) WordForward() {
	i := b.pos
	for i < len(b.runes) && unicode.IsSpace(b.runes[i]) {
		i++
	}
	for i < len(b.runes) && !unicode.IsSpace(b.runes[i]) {
		i++
	}
	b.pos = i
}

// WordPrefix returns the partial word before the cursor and where it starts.
func (b *Buffer) WordPrefix() (string, int) {
	start := b.pos
	for start > 0 && !isWordSeparator(b.runes[start-1]) {
		start--
	}
	return string(b.runes[start:b.pos]), start
}

// PathPrefix returns the text typed since the last path separator, quote or
// whitespace before the cursor, and where it starts. Accepting a path
// candidate replaces this range.
func (b *Buffer) PathPrefix(sep rune) (string, int) {
	start := b.pos
	for start > 0 {
		r := b.runes[start-1]
		if r == sep || r == '"' || r == '\'' || unicode.IsSpace(r) {
			break
		}
		start--
	}
	return string(b.runes[start:b.pos]), start
}

// Words returns the words of the buffer in order of appearance.
func (b *Buffer) Words() []string {
	return strings.FieldsFunc(string(b.runes), isWordSeparator)
}

func isWordSeparator(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune(wordSeparators, r)
}

// clamp returns value clamped to the range [low, high].
func clamp(v, low, high int) int {
	if v < low {
		return low
	}
	if v > high {
		return high
	}
	return v
}
