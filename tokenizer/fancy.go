package tokenizer

import "iter"
import "strings"

// asciiPunct is the set of characters that act as word separators in the
// fancy rules, except for '.' and '-' which have their own handling.
const asciiPunct = "!\"#$%&'()*+,/:;<=>?@[\\]^_`{|}~"

/*
FancyTokenizer applies a cascade of rewriting rules to every whitespace token:

  - http:// and https:// URLs are kept whole, minus trailing punctuation
  - everything else is lower cased
  - numbers ([0-9+-.,] with at least one digit) are kept whole
  - apostrophes are squeezed out ("don't" -> "dont")
  - other punctuation, except '.' and '-', separates words
  - hyphenated words yield their parts and the joined form
  - periods are removed from abbreviations ("ph.d." -> "phd")

Every derived token carries the span of the whitespace token it came from.
*/
type FancyTokenizer struct {
	spaces *WhitespaceTokenizer
}

func NewFancyTokenizer() *FancyTokenizer {
	return &FancyTokenizer{spaces: NewWhitespaceTokenizer()}
}

func (tz *FancyTokenizer) Name() string {
	return "fancy"
}

func (tz *FancyTokenizer) Tokens(text string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		for src := range tz.spaces.Tokens(text) {
			for _, part := range FancySplit(src.Text) {
				tok := Token{
					Text:  part,
					Start: src.Start,
					End:   src.End,
					Class: fancyClass(part),
				}
				if !yield(tok) {
					return
				}
			}
		}
	}
}

func fancyClass(text string) TokenClass {
	switch {
	case isURLPrefix(text):
		return URL
	case isFancyNumber(text):
		return Number
	default:
		return Word
	}
}

func isURLPrefix(text string) bool {
	lower := strings.ToLower(text)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}

func isFancyNumber(text string) bool {
	digit := false
	for _, r := range text {
		switch {
		case r >= '0' && r <= '9':
			digit = true
		case strings.ContainsRune("+-.,", r):
		default:
			return false
		}
	}
	return digit
}

func isASCIIAlnum(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

// FancySplit applies the fancy rules to a single whitespace-delimited token.
func FancySplit(token string) []string {
	if isURLPrefix(token) {
		end := len(token)
		for end > 0 && !isASCIIAlnum(token[end-1]) {
			end--
		}
		return []string{token[:end]}
	}

	tok := strings.ToLower(token)
	if isFancyNumber(tok) {
		return []string{tok}
	}

	tok = strings.ReplaceAll(tok, "'", "")

	parts := strings.FieldsFunc(tok, func(r rune) bool {
		return strings.ContainsRune(asciiPunct, r)
	})

	var toks []string
	if len(parts) == 1 && parts[0] == tok {
		toks = parts
	} else {
		for _, part := range parts {
			toks = append(toks, FancySplit(part)...)
		}
	}

	toks = expandHyphens(toks)
	return squeezeAbbreviations(toks)
}

func expandHyphens(toks []string) []string {
	out := make([]string, 0, len(toks))

	for _, tok := range toks {
		if !strings.Contains(tok, "-") || isFancyNumber(tok) {
			if tok != "" {
				out = append(out, tok)
			}
			continue
		}

		pieces := append(strings.Split(tok, "-"), strings.ReplaceAll(tok, "-", ""))
		for _, piece := range pieces {
			if piece != "" {
				out = append(out, FancySplit(piece)...)
			}
		}
	}
	return out
}

func squeezeAbbreviations(toks []string) []string {
	out := make([]string, 0, len(toks))

	for _, tok := range toks {
		if isURLPrefix(tok) || isFancyNumber(tok) || !strings.Contains(tok, ".") {
			out = append(out, tok)
			continue
		}
		if squeezed := strings.ReplaceAll(tok, ".", ""); squeezed != "" {
			out = append(out, squeezed)
		}
	}
	return out
}
