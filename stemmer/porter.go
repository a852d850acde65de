package stemmer

import "bytes"
import "strings"

/*
Porter is M.F. Porter's 1980 suffix stripping algorithm, including the two
departures of the reference implementation: "bli" rewrites to "ble" instead
of "abli" to "able", and "logi" rewrites to "log".

Each step is an ordered rule table. The first rule whose suffix matches the
word is selected and ends the step, whether or not its condition on the
remaining stem holds. "rational" therefore keeps "ational" in step 2: the
stem "r" has measure 0.

Words of two letters or fewer, and words containing bytes outside ASCII,
are returned unchanged. The algorithm expects lower case input.
*/
type Porter struct{}

func NewPorter() *Porter {
	return &Porter{}
}

func (p *Porter) Name() string { return "porter" }

func (p *Porter) Stem(word string) string {
	if len(word) <= 2 || !isASCII(word) {
		return word
	}

	s := &stemState{b: []byte(word), k: len(word) - 1}

	s.apply(step1a)
	s.apply(step1b)
	if s.k > 0 {
		for _, step := range laterSteps {
			s.apply(step)
		}
	}
	return string(s.b[:s.k+1])
}

func isASCII(word string) bool {
	for i := 0; i < len(word); i++ {
		if word[i] >= 0x80 {
			return false
		}
	}
	return true
}

// stemState is the scratch buffer for stemming one word. b[:k+1] is the
// current word; after a suffix match, b[:j+1] is the stem in front of it.
type stemState struct {
	b []byte
	k int
	j int
}

func (s *stemState) cons(i int) bool {
	switch s.b[i] {
	case 'a', 'e', 'i', 'o', 'u':
		return false
	case 'y':
		return i == 0 || !s.cons(i-1)
	}
	return true
}

// measure counts the vowel-consonant sequences in b[:end+1], the m of
// [C](VC){m}[V].
func (s *stemState) measure(end int) int {
	i := 0
	for i <= end && s.cons(i) {
		i++
	}

	n := 0
	for i <= end {
		for i <= end && !s.cons(i) {
			i++
		}
		if i > end {
			break
		}
		n++
		for i <= end && s.cons(i) {
			i++
		}
	}
	return n
}

func (s *stemState) m() int {
	return s.measure(s.j)
}

func (s *stemState) vowelInStem() bool {
	for i := 0; i <= s.j; i++ {
		if !s.cons(i) {
			return true
		}
	}
	return false
}

// doublec is true when b[i-1:i+1] is a doubled consonant.
func (s *stemState) doublec(i int) bool {
	return i >= 1 && s.b[i] == s.b[i-1] && s.cons(i)
}

// cvc is true when b[i-2:i+1] is consonant-vowel-consonant and the last
// consonant is not w, x or y.
func (s *stemState) cvc(i int) bool {
	if i < 2 || !s.cons(i) || s.cons(i-1) || !s.cons(i-2) {
		return false
	}
	return !strings.ContainsRune("wxy", rune(s.b[i]))
}

// ends reports whether the word ends with suffix and, if so, points j at
// the end of the stem in front of it.
func (s *stemState) ends(suffix string) bool {
	if len(suffix) > s.k+1 || !bytes.HasSuffix(s.b[:s.k+1], []byte(suffix)) {
		return false
	}
	s.j = s.k - len(suffix)
	return true
}

// setTo replaces everything after the stem with t.
func (s *stemState) setTo(t string) {
	s.b = append(s.b[:s.j+1], t...)
	s.k = len(s.b) - 1
}

type rule struct {
	suffix  string
	replace string
	// guard narrows which words select the rule. A word whose guard fails
	// moves on to the next rule.
	guard func(*stemState) bool
	// cond must hold on the stem for the rewrite to happen. A failed cond
	// still ends the step.
	cond func(*stemState) bool
	then func(*stemState)
}

// apply runs one step and reports whether any rule was selected.
func (s *stemState) apply(rules []rule) bool {
	for _, r := range rules {
		if !s.ends(r.suffix) {
			continue
		}
		if r.guard != nil && !r.guard(s) {
			continue
		}
		if r.cond == nil || r.cond(s) {
			s.setTo(r.replace)
			if r.then != nil {
				r.then(s)
			}
		}
		return true
	}
	return false
}

func measureAbove(n int) func(*stemState) bool {
	return func(s *stemState) bool { return s.m() > n }
}

var mGt0 = measureAbove(0)
var mGt1 = measureAbove(1)

func hasVowel(s *stemState) bool {
	return s.vowelInStem()
}

var step1a = []rule{
	{suffix: "sses", replace: "ss"},
	{suffix: "ies", replace: "i"},
	{suffix: "ss", replace: "ss"},
	{suffix: "s", replace: ""},
}

var step1b = []rule{
	{suffix: "eed", replace: "ee", cond: mGt0},
	{suffix: "ed", replace: "", cond: hasVowel, then: step1bRepair},
	{suffix: "ing", replace: "", cond: hasVowel, then: step1bRepair},
}

var step1bRestore = []rule{
	{suffix: "at", replace: "ate"},
	{suffix: "bl", replace: "ble"},
	{suffix: "iz", replace: "ize"},
}

// step1bRepair tidies a stem left by removing "ed" or "ing":
// hopp(ing) -> hop, fil(ing) -> file, conflat(ed) -> conflate.
func step1bRepair(s *stemState) {
	if s.apply(step1bRestore) {
		return
	}

	if s.doublec(s.k) {
		if !strings.ContainsRune("lsz", rune(s.b[s.k])) {
			s.k--
			s.b = s.b[:s.k+1]
		}
		return
	}

	if s.measure(s.k) == 1 && s.cvc(s.k) {
		s.b = append(s.b, 'e')
		s.k++
	}
}

var step1c = []rule{
	{suffix: "y", replace: "i", cond: hasVowel},
}

var step2 = []rule{
	{suffix: "ational", replace: "ate", cond: mGt0},
	{suffix: "tional", replace: "tion", cond: mGt0},
	{suffix: "enci", replace: "ence", cond: mGt0},
	{suffix: "anci", replace: "ance", cond: mGt0},
	{suffix: "izer", replace: "ize", cond: mGt0},
	{suffix: "bli", replace: "ble", cond: mGt0},
	{suffix: "alli", replace: "al", cond: mGt0},
	{suffix: "entli", replace: "ent", cond: mGt0},
	{suffix: "eli", replace: "e", cond: mGt0},
	{suffix: "ousli", replace: "ous", cond: mGt0},
	{suffix: "ization", replace: "ize", cond: mGt0},
	{suffix: "ation", replace: "ate", cond: mGt0},
	{suffix: "ator", replace: "ate", cond: mGt0},
	{suffix: "alism", replace: "al", cond: mGt0},
	{suffix: "iveness", replace: "ive", cond: mGt0},
	{suffix: "fulness", replace: "ful", cond: mGt0},
	{suffix: "ousness", replace: "ous", cond: mGt0},
	{suffix: "aliti", replace: "al", cond: mGt0},
	{suffix: "iviti", replace: "ive", cond: mGt0},
	{suffix: "biliti", replace: "ble", cond: mGt0},
	{suffix: "logi", replace: "log", cond: mGt0},
}

var step3 = []rule{
	{suffix: "icate", replace: "ic", cond: mGt0},
	{suffix: "ative", replace: "", cond: mGt0},
	{suffix: "alize", replace: "al", cond: mGt0},
	{suffix: "iciti", replace: "ic", cond: mGt0},
	{suffix: "ical", replace: "ic", cond: mGt0},
	{suffix: "ful", replace: "", cond: mGt0},
	{suffix: "ness", replace: "", cond: mGt0},
}

func stemEndsInSOrT(s *stemState) bool {
	return s.j >= 0 && (s.b[s.j] == 's' || s.b[s.j] == 't')
}

var step4 = []rule{
	{suffix: "al", cond: mGt1},
	{suffix: "ance", cond: mGt1},
	{suffix: "ence", cond: mGt1},
	{suffix: "er", cond: mGt1},
	{suffix: "ic", cond: mGt1},
	{suffix: "able", cond: mGt1},
	{suffix: "ible", cond: mGt1},
	{suffix: "ant", cond: mGt1},
	{suffix: "ement", cond: mGt1},
	{suffix: "ment", cond: mGt1},
	{suffix: "ent", cond: mGt1},
	{suffix: "ion", guard: stemEndsInSOrT, cond: mGt1},
	{suffix: "ou", cond: mGt1},
	{suffix: "ism", cond: mGt1},
	{suffix: "ate", cond: mGt1},
	{suffix: "iti", cond: mGt1},
	{suffix: "ous", cond: mGt1},
	{suffix: "ive", cond: mGt1},
	{suffix: "ize", cond: mGt1},
}

// A trailing vowel never changes the measure, so m over the stem in front
// of "e" equals m over the whole word.
var step5a = []rule{
	{suffix: "e", cond: func(s *stemState) bool {
		m := s.m()
		return m > 1 || (m == 1 && !s.cvc(s.j))
	}},
}

var step5b = []rule{
	{suffix: "ll", replace: "l", cond: func(s *stemState) bool {
		return s.measure(s.k) > 1
	}},
}

var laterSteps = [][]rule{step1c, step2, step3, step4, step5a, step5b}
