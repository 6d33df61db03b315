package scope

import (
	"unicode/utf8"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// lexerClassifier scopes source code with a chroma lexer.
type lexerClassifier struct {
	lexer chroma.Lexer
}

func (c *lexerClassifier) classify(text string, runes []rune) []Span {
	it, err := c.lexer.Tokenise(nil, text)
	if err != nil {
		return scanBasic(runes, false)
	}

	var spans []Span
	pos := 0
	for _, tok := range it.Tokens() {
		n := utf8.RuneCountInString(tok.Value)
		start, end := pos, pos+n
		pos = end

		var scope string
		switch {
		case tok.Type == chroma.Error:
			// Lexers reject an unterminated literal token by token. Scan the
			// rest of the text for quotes instead.
			for _, s := range scanBasic(runes[start:], false) {
				s.Start += start
				s.End += start
				spans = append(spans, s)
			}
			return spans
		case tok.Type == chroma.LiteralStringAffix:
			continue
		case tok.Type.InSubCategory(chroma.LiteralString):
			scope = StringQuoted
		case tok.Type.InCategory(chroma.Comment):
			scope = Comment
		default:
			continue
		}

		// Lexers split one literal into delimiter, body and escape tokens.
		if last := len(spans) - 1; last >= 0 && spans[last].Scope == scope && spans[last].End == start {
			spans[last].End = end
			continue
		}
		spans = append(spans, Span{Start: start, End: end, Scope: scope})
	}
	return spans
}

// lookupLexer resolves a language name, alias or file name to a chroma lexer.
func lookupLexer(name string) chroma.Lexer {
	if l := lexers.Get(name); l != nil && l != lexers.Fallback {
		return l
	}
	if l := lexers.Match(name); l != nil {
		return l
	}
	return nil
}
