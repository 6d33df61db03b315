package scope

// scanBasic finds quoted strings, and optionally '#' comments, without any
// grammar. It is used for plain text and whenever a real parser rejects the
// text, which is the normal case while a string is still being typed.
func scanBasic(runes []rune, hashComments bool) []Span {
	var spans []Span
	i := 0
	for i < len(runes) {
		r := runes[i]

		switch {
		case r == '"':
			end := findStringEnd(runes, i, '"')
			spans = append(spans, Span{Start: i, End: end, Scope: StringDouble})
			i = end

		case r == '\'':
			end := findStringEnd(runes, i, '\'')
			spans = append(spans, Span{Start: i, End: end, Scope: StringSingle})
			i = end

		case r == '#' && hashComments && (i == 0 || isSpace(runes[i-1])):
			end := i
			for end < len(runes) && runes[end] != '\n' {
				end++
			}
			spans = append(spans, Span{Start: i, End: end, Scope: CommentLine})
			i = end

		default:
			i++
		}
	}
	return spans
}

// findStringEnd returns the offset just past the closing quote, or the end of
// the text for an unclosed string.
func findStringEnd(runes []rune, start int, quote rune) int {
	i := start + 1
	for i < len(runes) {
		if runes[i] == '\\' && i+1 < len(runes) {
			i += 2
			continue
		}
		if runes[i] == quote {
			return i + 1
		}
		i++
	}
	return len(runes)
}

func isSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}
