package filters

import "regexp"
import "strings"
import "unicode"
import "github.com/cwacek/irtokens/tokenizer"
import log "github.com/cihub/seelog"

var hyphenated = regexp.MustCompile(`^[\p{L}\p{M}\p{N}]+(?:-[\p{L}\p{M}\p{N}]+)+$`)

/*
HyphenFilter splits hyphenated compounds into their parts and adds the joined
form after them:

	mother-in-law -> mother, in, law, motherinlaw

Purely numeric compounds such as ranges ("141-19") are left alone.
*/
type HyphenFilter struct {
	FilterPlumbing
}

func NewHyphenFilter(id string) Filter {
	f := new(HyphenFilter)
	f.Id = id
	f.self = f
	return f
}

func hasLetter(text string) bool {
	return strings.IndexFunc(text, unicode.IsLetter) >= 0
}

func (f *HyphenFilter) Apply(tok tokenizer.Token) []tokenizer.Token {
	switch tok.Class {
	case tokenizer.Hyphenated, tokenizer.Word:
	default:
		return []tokenizer.Token{tok}
	}

	if !hyphenated.MatchString(tok.Text) || !hasLetter(tok.Text) {
		return []tokenizer.Token{tok}
	}

	parts := strings.Split(tok.Text, "-")
	res := make([]tokenizer.Token, 0, len(parts)+1)

	for _, part := range parts {
		res = append(res, tok.WithText(part))
	}
	res = append(res, tok.WithText(parts...))

	log.Tracef("Split %s into %d tokens", tok.Text, len(res))
	return res
}
