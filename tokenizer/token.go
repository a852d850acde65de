package tokenizer

import "fmt"
import "strings"

type TokenClass int

const (
	Word TokenClass = iota
	Number
	Currency
	URL
	Punctuation
	Symbol
	Abbreviation
	Hyphenated
	Gram
)

func (c TokenClass) String() string {
	switch c {
	case Word:
		return "WORD"
	case Number:
		return "NUMBER"
	case Currency:
		return "CURRENCY"
	case URL:
		return "URL"
	case Punctuation:
		return "PUNCT"
	case Symbol:
		return "SYMBOL"
	case Abbreviation:
		return "ABBREV"
	case Hyphenated:
		return "HYPHENATED"
	case Gram:
		return "GRAM"
	default:
		return "UNKNOWN"
	}
}

// A Token is a span of a decoded record. Start and End are byte offsets into
// the record; Text owns its bytes and may differ from the span once a filter
// has rewritten it.
type Token struct {
	Text  string
	Start int
	End   int
	Class TokenClass
}

// NewToken copies text[start:end] into a fresh Token.
func NewToken(text string, start, end int, class TokenClass) Token {
	return Token{
		Text:  strings.Clone(text[start:end]),
		Start: start,
		End:   end,
		Class: class,
	}
}

// WithText returns a copy of t carrying different text but the same span.
func (t Token) WithText(parts ...string) Token {
	t.Text = strings.Join(parts, "")
	return t
}

func (t Token) Eql(other Token) bool {
	return t.Text == other.Text && t.Class == other.Class
}

func (t Token) String() string {
	return fmt.Sprintf("%s [%s@%d:%d]", t.Text, t.Class, t.Start, t.End)
}
