package tokenizer

import "iter"
import "unicode"
import "unicode/utf8"

// WhitespaceTokenizer emits every maximal run of non-whitespace characters.
// Nothing is case folded or stripped.
type WhitespaceTokenizer struct{}

func NewWhitespaceTokenizer() *WhitespaceTokenizer {
	return &WhitespaceTokenizer{}
}

func (tz *WhitespaceTokenizer) Name() string {
	return "whitespace"
}

func (tz *WhitespaceTokenizer) Tokens(text string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		start := -1

		for i := 0; i < len(text); {
			r, size := utf8.DecodeRuneInString(text[i:])

			if unicode.IsSpace(r) {
				if start >= 0 {
					if !yield(NewToken(text, start, i, Word)) {
						return
					}
					start = -1
				}
			} else if start < 0 {
				start = i
			}
			i += size
		}

		if start >= 0 {
			yield(NewToken(text, start, len(text), Word))
		}
	}
}
