package tokenizer

import "iter"
import "regexp"
import "strings"
import "unicode"
import "unicode/utf8"
import log "github.com/cihub/seelog"

const wordPart = `[\p{L}\p{M}\p{N}]+(?:['’][\p{L}\p{M}\p{N}]+)*`

var (
	urlRegex          = regexp.MustCompile(`(?i)^[a-z][a-z0-9+.\-]*://\S+`)
	currencyRegex     = regexp.MustCompile(`^\p{Sc}(?:\d{1,3}(?:,\d{3})+|\d+)(?:\.\d+)?`)
	numberRegex       = regexp.MustCompile(`^\d+(?:[.,/:\-]\d+)*`)
	abbreviationRegex = regexp.MustCompile(`^\p{L}(?:\.\p{L})+\.?`)
	hyphenatedRegex   = regexp.MustCompile(`^` + wordPart + `(?:-` + wordPart + `)+`)
	wordRegex         = regexp.MustCompile(`^` + wordPart)
)

// A matcher reports where a token of its class starting at pos ends, or -1
// when the text at pos is not of its class.
type matcher struct {
	class TokenClass
	match func(text string, pos int) int
}

// Matchers are tried in order and the first one to match wins, regardless of
// how long a later matcher's match would have been. Anything none of them
// accept becomes a one-rune Punctuation or Symbol token.
var matchers = []matcher{
	{URL, matchURL},
	{Currency, matchRegexp(currencyRegex)},
	{Number, matchNumber},
	{Abbreviation, matchAbbreviation},
	{Hyphenated, matchRegexp(hyphenatedRegex)},
	{Word, matchRegexp(wordRegex)},
}

func matchRegexp(re *regexp.Regexp) func(string, int) int {
	return func(text string, pos int) int {
		if loc := re.FindStringIndex(text[pos:]); loc != nil && loc[1] > 0 {
			return pos + loc[1]
		}
		return -1
	}
}

func runeAt(text string, pos int) rune {
	if pos >= len(text) {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRuneInString(text[pos:])
	return r
}

func isAlnum(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// segmentStart is true at the start of the record, after whitespace and
// after an opening bracket or quote.
func segmentStart(text string, pos int) bool {
	if pos == 0 {
		return true
	}
	r, _ := utf8.DecodeLastRuneInString(text[:pos])
	return unicode.IsSpace(r) || strings.ContainsRune(`([{<"'`, r)
}

func matchURL(text string, pos int) int {
	if !segmentStart(text, pos) {
		return -1
	}

	loc := urlRegex.FindStringIndex(text[pos:])
	if loc == nil {
		return -1
	}

	hostStart := pos + strings.Index(text[pos:], "://") + 3
	end := pos + loc[1]

	// Trailing punctuation belongs to the sentence, not the URL.
	for end > hostStart {
		r, size := utf8.DecodeLastRuneInString(text[hostStart:end])
		if isAlnum(r) {
			break
		}
		end -= size
	}

	if end <= hostStart {
		return -1
	}
	return end
}

func matchNumber(text string, pos int) int {
	loc := numberRegex.FindStringIndex(text[pos:])
	if loc == nil {
		return -1
	}
	end := pos + loc[1]

	// A bare digit run glued to letters is an alphanumeric word ("43pm") or
	// the head of a hyphenated compound ("1-hour").
	if !strings.ContainsAny(text[pos:end], ".,/:-") {
		next := runeAt(text, end)
		if unicode.IsLetter(next) {
			return -1
		}
		if next == '-' && unicode.IsLetter(runeAt(text, end+1)) {
			return -1
		}
	}
	return end
}

func matchAbbreviation(text string, pos int) int {
	loc := abbreviationRegex.FindStringIndex(text[pos:])
	if loc == nil {
		return -1
	}
	end := pos + loc[1]

	if isAlnum(runeAt(text, end)) {
		return -1
	}
	return end
}

// ComplexTokenizer segments text with an ordered table of matchers:
// URL, currency, number, abbreviation, hyphenated compound, word, and
// finally single punctuation or symbol characters. Case is preserved.
type ComplexTokenizer struct {
	// KeepControl emits control characters and undecodable bytes as Symbol
	// tokens instead of skipping them.
	KeepControl bool
}

func NewComplexTokenizer() *ComplexTokenizer {
	return &ComplexTokenizer{}
}

func (tz *ComplexTokenizer) Name() string {
	return "complex"
}

func isControl(r rune, size int) bool {
	if r == utf8.RuneError && size <= 1 {
		return true
	}
	return !unicode.IsPrint(r) && !unicode.IsSpace(r)
}

func (tz *ComplexTokenizer) Tokens(text string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		pos := 0

		for pos < len(text) {
			r, size := utf8.DecodeRuneInString(text[pos:])

			switch {
			case unicode.IsSpace(r):
				pos += size
				continue

			case isControl(r, size):
				if !tz.KeepControl {
					log.Tracef("Skipping control character %q at %d", r, pos)
					pos += size
					continue
				}
				if !yield(NewToken(text, pos, pos+size, Symbol)) {
					return
				}
				pos += size
				continue
			}

			tok := tz.next(text, pos)
			if !yield(tok) {
				return
			}
			pos = tok.End
		}
	}
}

func (tz *ComplexTokenizer) next(text string, pos int) Token {
	for _, m := range matchers {
		if end := m.match(text, pos); end > pos {
			tok := NewToken(text, pos, end, m.class)
			log.Tracef("Matched %s", tok)
			return tok
		}
	}

	r, size := utf8.DecodeRuneInString(text[pos:])
	if unicode.IsPunct(r) {
		return NewToken(text, pos, pos+size, Punctuation)
	}
	return NewToken(text, pos, pos+size, Symbol)
}
