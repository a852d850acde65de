package tokenizer

import "fmt"
import "iter"
import "sort"
import "strings"

/*
A Tokenizer splits one decoded record into tokens. The returned sequence is
lazy and single-pass; calling Tokens again rescans the text from the start.
*/
type Tokenizer interface {
	Name() string
	Tokens(text string) iter.Seq[Token]
}

// UnknownStrategyError is returned by New for a strategy name that has no
// registered constructor.
type UnknownStrategyError struct {
	Name string
}

func (e *UnknownStrategyError) Error() string {
	return fmt.Sprintf("unknown tokenizer strategy %q (known: %s)",
		e.Name, strings.Join(Strategies(), ", "))
}

var constructors = map[string]func() Tokenizer{
	"whitespace": func() Tokenizer { return NewWhitespaceTokenizer() },
	"space":      func() Tokenizer { return NewWhitespaceTokenizer() },
	"ngram4":     func() Tokenizer { return NewNGramTokenizer(4, 1) },
	"4grams":     func() Tokenizer { return NewNGramTokenizer(4, 1) },
	"complex":    func() Tokenizer { return NewComplexTokenizer() },
	"fancy":      func() Tokenizer { return NewFancyTokenizer() },
}

// New returns a fresh tokenizer for the named strategy. Names are case
// insensitive.
func New(name string) (Tokenizer, error) {
	ctor, ok := constructors[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, &UnknownStrategyError{Name: name}
	}
	return ctor(), nil
}

// Strategies lists the accepted strategy names.
func Strategies() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Collect drains a token sequence into a slice.
func Collect(seq iter.Seq[Token]) []Token {
	var tokens []Token
	for tok := range seq {
		tokens = append(tokens, tok)
	}
	return tokens
}

// Texts drains a token sequence and keeps only the token text.
func Texts(seq iter.Seq[Token]) []string {
	var texts []string
	for tok := range seq {
		texts = append(texts, tok.Text)
	}
	return texts
}
