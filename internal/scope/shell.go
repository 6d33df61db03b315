package scope

import (
	"strings"
	"unicode/utf8"

	"mvdan.cc/sh/v3/syntax"
)

// shellClassifier scopes shell scripts using the mvdan.cc/sh parser.
type shellClassifier struct {
	parser *syntax.Parser
}

func newShellClassifier() *shellClassifier {
	return &shellClassifier{
		parser: syntax.NewParser(syntax.KeepComments(true)),
	}
}

func (c *shellClassifier) classify(text string, runes []rune) []Span {
	file, err := c.parser.Parse(strings.NewReader(text), "")
	if err != nil {
		// Incomplete input, most often an unterminated quote being typed.
		return scanBasic(runes, true)
	}

	offsets := runeOffsets(text)
	var spans []Span

	syntax.Walk(file, func(node syntax.Node) bool {
		if node == nil {
			return true
		}

		var scope string
		switch node.(type) {
		case *syntax.SglQuoted:
			scope = StringSingle
		case *syntax.DblQuoted:
			scope = StringDouble
		case *syntax.Comment:
			scope = CommentLine
		default:
			return true
		}

		start := offsets.at(int(node.Pos().Offset()))
		end := offsets.at(int(node.End().Offset()))
		spans = append(spans, Span{Start: start, End: end, Scope: scope})

		// Quotes nested inside a string belong to the outer string.
		return false
	})

	return spans
}

// byteToRune maps byte offsets of a string to rune offsets.
type byteToRune []int

func runeOffsets(text string) byteToRune {
	m := make(byteToRune, len(text)+1)
	n := 0
	for i := 0; i < len(text); {
		_, size := utf8.DecodeRuneInString(text[i:])
		for j := 0; j < size; j++ {
			m[i+j] = n
		}
		i += size
		n++
	}
	m[len(text)] = n
	return m
}

func (m byteToRune) at(b int) int {
	if b < 0 {
		return 0
	}
	if b >= len(m) {
		return m[len(m)-1]
	}
	return m[b]
}
