package filters

import "golang.org/x/text/cases"
import "golang.org/x/text/language"
import "github.com/cwacek/irtokens/tokenizer"

// LowerCaseFilter lower cases every token with full Unicode case mapping.
// A filter owns its caser, so one instance must not be shared between
// goroutines.
type LowerCaseFilter struct {
	FilterPlumbing
	caser cases.Caser
}

func NewLowerCaseFilter(id string) Filter {
	f := new(LowerCaseFilter)
	f.Id = id
	f.self = f
	f.caser = cases.Lower(language.Und)
	return f
}

func (f *LowerCaseFilter) Apply(tok tokenizer.Token) []tokenizer.Token {
	lowered := f.caser.String(tok.Text)
	if lowered == tok.Text {
		return []tokenizer.Token{tok}
	}
	return []tokenizer.Token{tok.WithText(lowered)}
}

// SymbolFilter drops punctuation and symbol tokens.
type SymbolFilter struct {
	FilterPlumbing
}

func NewSymbolFilter(id string) Filter {
	f := new(SymbolFilter)
	f.Id = id
	f.self = f
	return f
}

func (f *SymbolFilter) Apply(tok tokenizer.Token) []tokenizer.Token {
	switch tok.Class {
	case tokenizer.Punctuation, tokenizer.Symbol:
		return nil
	}
	return []tokenizer.Token{tok}
}
