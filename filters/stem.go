package filters

import "github.com/cwacek/irtokens/stemmer"
import "github.com/cwacek/irtokens/tokenizer"

// StemFilter replaces each token's text with its stem.
type StemFilter struct {
	FilterPlumbing
	stemmer stemmer.Stemmer
}

func NewStemFilter(id string, s stemmer.Stemmer) Filter {
	f := new(StemFilter)
	f.Id = id
	f.self = f
	f.stemmer = s
	return f
}

func (f *StemFilter) Serialize() string {
	return f.Id + "(" + f.stemmer.Name() + ")"
}

func (f *StemFilter) Apply(tok tokenizer.Token) []tokenizer.Token {
	stem := f.stemmer.Stem(tok.Text)
	if stem == "" {
		return nil
	}
	return []tokenizer.Token{tok.WithText(stem)}
}
