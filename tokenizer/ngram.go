package tokenizer

import "iter"
import "strings"
import "unicode"
import "unicode/utf8"

// NGramTokenizer slides a window of N characters over the record, moving
// Stride characters at a time. Whitespace runs are collapsed to a single
// space before windowing, so "a \t\nbc" reads as "a bc". Windows that would
// run past the end of the record are dropped.
type NGramTokenizer struct {
	N      int
	Stride int
}

func NewNGramTokenizer(n, stride int) *NGramTokenizer {
	return &NGramTokenizer{N: n, Stride: stride}
}

func (tz *NGramTokenizer) Name() string {
	return "ngram4"
}

// char is one rune of the collapsed stream with the byte span it came from.
// A collapsed space spans the whole whitespace run.
type char struct {
	r          rune
	start, end int
}

func collapse(text string) []char {
	chars := make([]char, 0, len(text))

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])

		if unicode.IsSpace(r) {
			if n := len(chars); n > 0 && chars[n-1].r == ' ' {
				chars[n-1].end = i + size
			} else {
				chars = append(chars, char{' ', i, i + size})
			}
		} else {
			chars = append(chars, char{r, i, i + size})
		}
		i += size
	}
	return chars
}

func render(chars []char) string {
	var b strings.Builder
	for _, c := range chars {
		b.WriteRune(c.r)
	}
	return b.String()
}

func (tz *NGramTokenizer) Tokens(text string) iter.Seq[Token] {
	n, stride := tz.N, tz.Stride
	if n < 1 {
		n = 4
	}
	if stride < 1 {
		stride = 1
	}

	return func(yield func(Token) bool) {
		chars := collapse(text)
		if len(chars) == 0 || strings.TrimSpace(render(chars)) == "" {
			return
		}

		if len(chars) < n {
			yield(Token{
				Text:  render(chars),
				Start: chars[0].start,
				End:   chars[len(chars)-1].end,
				Class: Gram,
			})
			return
		}

		for i := 0; i+n <= len(chars); i += stride {
			window := chars[i : i+n]
			tok := Token{
				Text:  render(window),
				Start: window[0].start,
				End:   window[n-1].end,
				Class: Gram,
			}
			if !yield(tok) {
				return
			}
		}
	}
}
