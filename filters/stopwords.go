package filters

import "bufio"
import "bytes"
import "fmt"
import "io"
import "iter"
import "os"
import "sort"
import "strings"
import "unicode/utf8"
import _ "embed"
import "golang.org/x/text/cases"
import "github.com/cwacek/irtokens/tokenizer"
import log "github.com/cihub/seelog"

//go:embed stopwords.txt
var defaultStopwords []byte

// StopwordSet is an immutable set of case folded words. It is safe for
// concurrent use once loaded.
type StopwordSet struct {
	words map[string]struct{}
}

// fold case folds a word. ASCII words take the cheap path; cases.Caser
// carries state, so a fresh one is built for everything else.
func fold(word string) string {
	for i := 0; i < len(word); i++ {
		if word[i] >= utf8.RuneSelf {
			return cases.Fold().String(word)
		}
	}
	return strings.ToLower(word)
}

// NewStopwordSet builds a set from the given words.
func NewStopwordSet(words ...string) *StopwordSet {
	set := &StopwordSet{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		if w = strings.TrimSpace(w); w != "" {
			set.words[fold(w)] = struct{}{}
		}
	}
	return set
}

/*
LoadStopwords reads whitespace separated words from r. Everything after a
'#' on a line is a comment.
*/
func LoadStopwords(r io.Reader) (*StopwordSet, error) {
	set := &StopwordSet{words: make(map[string]struct{})}

	reader := bufio.NewScanner(r)
	for reader.Scan() {
		line := reader.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}

		for _, w := range strings.Fields(line) {
			log.Tracef("Inserting %s into list", w)
			set.words[fold(w)] = struct{}{}
		}
	}

	if err := reader.Err(); err != nil {
		return nil, fmt.Errorf("reading stopwords: %w", err)
	}
	return set, nil
}

func LoadStopwordsFile(path string) (*StopwordSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening stopword list: %w", err)
	}
	defer f.Close()

	set, err := LoadStopwords(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Debugf("Loaded %d stopwords from %s", set.Len(), path)
	return set, nil
}

// DefaultStopwords returns the built in English stopword list.
func DefaultStopwords() *StopwordSet {
	set, err := LoadStopwords(bytes.NewReader(defaultStopwords))
	if err != nil {
		panic(err)
	}
	return set
}

// Contains reports whether the case folded word is a stopword. A nil set
// contains nothing.
func (s *StopwordSet) Contains(word string) bool {
	if s == nil {
		return false
	}
	_, ok := s.words[fold(word)]
	return ok
}

func (s *StopwordSet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.words)
}

// Words lists the set in sorted order.
func (s *StopwordSet) Words() []string {
	if s == nil {
		return nil
	}
	words := make([]string, 0, len(s.words))
	for w := range s.words {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// Stop drops the tokens whose folded text is in set and keeps the order of
// the rest.
func Stop(tokens iter.Seq[tokenizer.Token], set *StopwordSet) iter.Seq[tokenizer.Token] {
	return func(yield func(tokenizer.Token) bool) {
		for tok := range tokens {
			if set.Contains(tok.Text) {
				continue
			}
			if !yield(tok) {
				return
			}
		}
	}
}

type StopWordFilter struct {
	FilterPlumbing
	stopwords *StopwordSet
	removed   int
}

func NewStopWordFilter(id string, set *StopwordSet) Filter {
	sw := new(StopWordFilter)
	sw.self = sw
	sw.Id = id
	sw.stopwords = set
	return sw
}

func (f *StopWordFilter) Apply(tok tokenizer.Token) []tokenizer.Token {
	if f.stopwords.Contains(tok.Text) {
		f.removed += 1
		return nil
	}
	return []tokenizer.Token{tok}
}

// Removed counts the tokens this filter has dropped.
func (f *StopWordFilter) Removed() int {
	return f.removed
}
