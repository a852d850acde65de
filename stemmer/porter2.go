package stemmer

import "github.com/kljensen/snowball"
import log "github.com/cihub/seelog"

// Porter2 is the Snowball English stemmer, the revised form of Porter's
// algorithm. Stop words are stemmed like any other word.
type Porter2 struct{}

func NewPorter2() *Porter2 {
	return &Porter2{}
}

func (p *Porter2) Name() string { return "porter2" }

func (p *Porter2) Stem(word string) string {
	if word == "" {
		return word
	}

	stem, err := snowball.Stem(word, "english", true)
	if err != nil || stem == "" {
		log.Debugf("Snowball could not stem %q: %v", word, err)
		return word
	}
	return stem
}
