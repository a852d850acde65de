package stemmer

import "fmt"
import "sort"
import "strings"

// A Stemmer reduces a word to an approximate root form. Stem is total: it
// never fails or panics, and any input it has no rule for is returned
// unchanged.
type Stemmer interface {
	Name() string
	Stem(word string) string
}

// UnknownStemmerError is returned by New for a name with no registered
// stemmer.
type UnknownStemmerError struct {
	Name string
}

func (e *UnknownStemmerError) Error() string {
	return fmt.Sprintf("unknown stemmer %q (known: %s)",
		e.Name, strings.Join(Names(), ", "))
}

var constructors = map[string]func() Stemmer{
	"":         func() Stemmer { return Identity{} },
	"none":     func() Stemmer { return Identity{} },
	"identity": func() Stemmer { return Identity{} },
	"suffix_s": func() Stemmer { return NewSuffixS() },
	"porter":   func() Stemmer { return NewPorter() },
	"porter2":  func() Stemmer { return NewPorter2() },
	"snowball": func() Stemmer { return NewPorter2() },
}

// New returns the stemmer registered under name. The empty name means no
// stemming.
func New(name string) (Stemmer, error) {
	ctor, ok := constructors[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, &UnknownStemmerError{Name: name}
	}
	return ctor(), nil
}

// Names lists the accepted stemmer names, without the empty alias.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		if name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

type Identity struct{}

func (Identity) Name() string { return "identity" }

func (Identity) Stem(word string) string { return word }

// SuffixS strips a single trailing 's' from words longer than MinLength.
// Words ending in "ss" are left alone so that a second pass never strips
// again ("boss" stays "boss").
type SuffixS struct {
	MinLength int
}

func NewSuffixS() *SuffixS {
	return &SuffixS{MinLength: 3}
}

func (s *SuffixS) Name() string { return "suffix_s" }

func (s *SuffixS) Stem(word string) string {
	if len(word) <= s.MinLength || !strings.HasSuffix(word, "s") || strings.HasSuffix(word, "ss") {
		return word
	}
	return word[:len(word)-1]
}
