package filters

import "regexp"
import "strings"
import "github.com/cwacek/irtokens/tokenizer"
import log "github.com/cihub/seelog"

// Catches dotted acronyms that reach the filter as plain words, as the
// whitespace tokenizer produces them ("Ph.D.", "U.S.A").
var acronymRegex = regexp.MustCompile(`^\p{Lu}\p{Ll}*(?:\.\p{Lu}\p{Ll}*)+\.?$`)

// AcronymFilter removes the periods from abbreviations: "U.S.A." becomes
// "USA". Case is left to the case folding filter.
type AcronymFilter struct {
	FilterPlumbing
}

func NewAcronymFilter(id string) Filter {
	f := new(AcronymFilter)
	f.Id = id
	f.self = f
	return f
}

func (f *AcronymFilter) Apply(tok tokenizer.Token) []tokenizer.Token {
	if tok.Class != tokenizer.Abbreviation && !acronymRegex.MatchString(tok.Text) {
		return []tokenizer.Token{tok}
	}

	squeezed := strings.ReplaceAll(tok.Text, ".", "")
	if squeezed == "" {
		return nil
	}

	log.Tracef("Squeezed acronym %s to %s", tok.Text, squeezed)
	return []tokenizer.Token{tok.WithText(squeezed)}
}
