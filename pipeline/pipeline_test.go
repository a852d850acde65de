package pipeline

import "errors"
import "iter"
import "strings"
import "testing"
import "github.com/cwacek/irtokens/filereader"
import "github.com/cwacek/irtokens/filters"
import "github.com/cwacek/irtokens/stats"
import "github.com/cwacek/irtokens/tokenizer"

func texts(seq iter.Seq[Term]) []string {
	var out []string
	for term := range seq {
		out = append(out, term.Text)
	}
	return out
}

func records(lines ...string) iter.Seq2[filereader.Record, error] {
	return filereader.Records(filereader.NewLineFileReader(strings.NewReader(strings.Join(lines, "\n")), "mem"))
}

func mustNew(t *testing.T, opts Options, set *filters.StopwordSet) *Pipeline {
	t.Helper()
	p, err := New(opts, set)
	if err != nil {
		t.Fatalf("New(%+v): %v", opts, err)
	}
	return p
}

func TestNew_ConfigurationErrors(t *testing.T) {
	tests := []struct {
		field string
		opts  Options
	}{
		{"tokenizer", Options{Tokenizer: "bigram"}},
		{"stemmer", Options{Tokenizer: "complex", Stemmer: "lovins"}},
		{"encoding", Options{Tokenizer: "complex", Encoding: "ebcdic"}},
		{"snapshot interval", Options{Tokenizer: "complex", SnapshotInterval: -5}},
	}

	for _, tt := range tests {
		_, err := New(tt.opts, nil)

		var cfgErr *ConfigurationError
		if !errors.As(err, &cfgErr) {
			t.Errorf("%s: error = %v, want *ConfigurationError", tt.field, err)
			continue
		}
		if cfgErr.Field != tt.field {
			t.Errorf("error names field %q, want %q", cfgErr.Field, tt.field)
		}
	}

	_, err := New(Options{Tokenizer: "bigram"}, nil)
	var unknown *tokenizer.UnknownStrategyError
	if !errors.As(err, &unknown) {
		t.Errorf("configuration error does not wrap the tokenizer error: %v", err)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		opts  Options
		input string
		want  []string
	}{
		{
			DefaultOptions(),
			"The  Quick brown",
			[]string{"The", "Quick", "brown"},
		},
		{
			Options{Tokenizer: "complex", Stopping: true, Stemmer: "porter", CaseFold: true, DropSymbols: true},
			"The ponies were running at http://example.com.",
			[]string{"poni", "run", "http://example.com"},
		},
		{
			Options{Tokenizer: "complex", CaseFold: true, SqueezeAbbreviations: true, ExpandHyphens: true, DropSymbols: true},
			"The U.S.A. has a mother-in-law!",
			[]string{"the", "usa", "has", "a", "mother", "in", "law", "motherinlaw"},
		},
		{
			Options{Tokenizer: "whitespace", Stemmer: "suffix_s"},
			"cats bus boss",
			[]string{"cat", "bus", "boss"},
		},
		{
			Options{Tokenizer: "ngram4"},
			"abcdef",
			[]string{"abcd", "bcde", "cdef"},
		},
		{
			Options{Tokenizer: "fancy", Stopping: true, Stemmer: "porter"},
			`"whitespace-Separated" tokens (as in P0). And, a.-2./c. also.`,
			[]string{"whitespac", "separ", "whitespacesepar", "token", "p0", "2.", "a2", "c", "also"},
		},
	}

	for _, tt := range tests {
		p := mustNew(t, tt.opts, nil)
		got := texts(p.Normalize(tt.input))

		if strings.Join(got, "|") != strings.Join(tt.want, "|") {
			t.Errorf("%s: Normalize(%q) = %q, want %q", p, tt.input, got, tt.want)
		}
		if p.Stats().Total() != 0 {
			t.Errorf("Normalize touched the statistics")
		}
	}
}

func TestNormalize_Offsets(t *testing.T) {
	p := mustNew(t, Options{Tokenizer: "complex", CaseFold: true}, nil)
	input := "Cost: $5.00"

	for term := range p.Normalize(input) {
		if term.Start < 0 || term.End > len(input) || term.Start > term.End {
			t.Errorf("term %q has span %d:%d", term.Text, term.Start, term.End)
		}
		if strings.ToLower(input[term.Start:term.End]) != term.Text {
			t.Errorf("term %q does not match its span %q", term.Text, input[term.Start:term.End])
		}
	}
}

func TestNormalize_StopwordExclusion(t *testing.T) {
	set := filters.NewStopwordSet("the", "of", "and")
	p := mustNew(t, Options{Tokenizer: "whitespace", Stopping: true}, set)

	for _, term := range texts(p.Normalize("The Lord of the Rings AND the Hobbit")) {
		if set.Contains(term) {
			t.Errorf("stopword %q survived", term)
		}
	}
}

func TestRun_Snapshots(t *testing.T) {
	p := mustNew(t, Options{Tokenizer: "whitespace", SnapshotInterval: 2}, nil)

	var snaps []stats.Snapshot
	p.OnSnapshot(func(s stats.Snapshot) { snaps = append(snaps, s) })

	got := texts(p.Run(records("a b c", "d e", "", "f")))
	if strings.Join(got, "") != "abcdef" {
		t.Fatalf("Run yielded %q", got)
	}

	wantTotals := []int{2, 4, 6, 6}
	if len(snaps) != len(wantTotals) {
		t.Fatalf("got %d snapshots, want %d", len(snaps), len(wantTotals))
	}
	for i, want := range wantTotals {
		if snaps[i].TotalTokens != want || snaps[i].Kind != stats.Cumulative {
			t.Errorf("snapshot %d = %s, want %d cumulative tokens", i, snaps[i], want)
		}
	}

	if p.Stats().Total() != 6 || p.Stats().Distinct() != 6 {
		t.Errorf("stats = %d tokens, %d terms", p.Stats().Total(), p.Stats().Distinct())
	}
}

func TestRun_TermsCarryRecordIds(t *testing.T) {
	p := mustNew(t, DefaultOptions(), nil)

	var ids []string
	for term := range p.Run(records("one", "", "three")) {
		ids = append(ids, term.Record)
	}
	if strings.Join(ids, ",") != "1,3" {
		t.Errorf("record ids = %v", ids)
	}
}

func TestRun_SkipsMalformed(t *testing.T) {
	p := mustNew(t, DefaultOptions(), nil)

	var warnings []error
	p.OnWarning(func(err error) { warnings = append(warnings, err) })

	input := func(yield func(filereader.Record, error) bool) {
		if !yield(filereader.Record{Id: "1", Raw: []byte("good words")}, nil) {
			return
		}
		if !yield(filereader.Record{Id: "2", Raw: []byte("bad \xff bytes")}, nil) {
			return
		}
		if !yield(filereader.Record{}, &filereader.MalformedRecordError{Id: "3", Offset: -1, Reason: "truncated"}) {
			return
		}
		yield(filereader.Record{Id: "4", Raw: []byte("more")}, nil)
	}

	got := texts(p.Run(input))
	if strings.Join(got, " ") != "good words more" {
		t.Errorf("Run yielded %q", got)
	}
	if p.Skipped() != 2 {
		t.Errorf("skipped %d records, want 2", p.Skipped())
	}
	if p.Err() != nil {
		t.Errorf("malformed records set Err: %v", p.Err())
	}

	var malformed *filereader.MalformedRecordError
	for _, w := range warnings {
		if !errors.As(w, &malformed) {
			t.Errorf("unexpected warning %v", w)
		}
	}
}

func TestRun_EmptyInputWarning(t *testing.T) {
	p := mustNew(t, Options{Tokenizer: "whitespace", Stopping: true}, filters.NewStopwordSet("the", "a"))

	var empty []*EmptyInputWarning
	p.OnWarning(func(err error) {
		var w *EmptyInputWarning
		if errors.As(err, &w) {
			empty = append(empty, w)
		}
	})

	got := texts(p.Run(records("the a the", "a cat")))
	if strings.Join(got, " ") != "cat" {
		t.Errorf("Run yielded %q", got)
	}
	if len(empty) != 1 || empty[0].Record != "1" {
		t.Errorf("empty input warnings = %v", empty)
	}
}

func TestRun_ReadError(t *testing.T) {
	p := mustNew(t, DefaultOptions(), nil)
	boom := errors.New("disk on fire")

	finals := 0
	p.OnSnapshot(func(stats.Snapshot) { finals++ })

	input := func(yield func(filereader.Record, error) bool) {
		if !yield(filereader.Record{Id: "1", Raw: []byte("one two")}, nil) {
			return
		}
		if !yield(filereader.Record{}, boom) {
			return
		}
		yield(filereader.Record{Id: "3", Raw: []byte("never read")}, nil)
	}

	got := texts(p.Run(input))
	if len(got) != 2 {
		t.Errorf("Run yielded %q", got)
	}
	if !errors.Is(p.Err(), boom) {
		t.Errorf("Err = %v, want %v", p.Err(), boom)
	}
	if finals != 1 {
		t.Errorf("got %d final snapshots", finals)
	}
}

func TestRun_StopsEarly(t *testing.T) {
	p := mustNew(t, DefaultOptions(), nil)

	for range p.Run(records("one two three", "four")) {
		break
	}
	if p.Stats().Total() != 1 {
		t.Errorf("observed %d terms after stopping at the first", p.Stats().Total())
	}
}

func TestRun_CumulativeMatchesNormalize(t *testing.T) {
	opts := Options{Tokenizer: "complex", CaseFold: true, Stemmer: "porter", DropSymbols: true}
	lines := []string{
		"Cost: $5.00 at http://example.com on 12/25.",
		"The ponies and the cats ran at U.S.A. speed",
		"relational rational conditional",
	}

	p := mustNew(t, opts, nil)
	for range p.Run(records(lines...)) {
	}

	check := mustNew(t, opts, nil)
	want := make(stats.FrequencyTable)
	for _, line := range lines {
		for term := range check.Normalize(line) {
			want[term.Text]++
		}
	}

	if got := p.Stats().Snapshot(stats.Cumulative).Frequencies; !got.Equal(want) {
		t.Errorf("Run counted %v, want %v", got, want)
	}
}

func TestNew_ChainStages(t *testing.T) {
	tests := []struct {
		opts Options
		want string
	}{
		{DefaultOptions(), "whitespace -> stem(identity)"},
		{
			Options{Tokenizer: "complex", DropSymbols: true, CaseFold: true, Stopping: true, Stemmer: "porter"},
			"complex -> symbols -> lower -> stopwords -> stem(porter)",
		},
		{
			Options{Tokenizer: "complex", SqueezeAbbreviations: true, ExpandHyphens: true, Stemmer: "suffix_s"},
			"complex -> acronyms -> hyphens -> stem(suffix_s)",
		},
	}

	for _, tt := range tests {
		p := mustNew(t, tt.opts, nil)
		if got := p.String(); got != tt.want {
			t.Errorf("pipeline renders as %q, want %q", got, tt.want)
		}
	}
}

func TestRun_CountsStopped(t *testing.T) {
	p := mustNew(t, Options{Tokenizer: "whitespace", CaseFold: true, Stopping: true}, nil)

	got := texts(p.Run(records("The cat and the dog", "a bird")))
	if strings.Join(got, " ") != "cat dog bird" {
		t.Errorf("Run yielded %q", got)
	}
	if p.Stopped() != 4 {
		t.Errorf("stopped %d tokens, want 4", p.Stopped())
	}

	unstopped := mustNew(t, DefaultOptions(), nil)
	for range unstopped.Run(records("the cat")) {
	}
	if unstopped.Stopped() != 0 {
		t.Errorf("pipeline without stopping stopped %d tokens", unstopped.Stopped())
	}
}

func TestRun_IncrementalSnapshots(t *testing.T) {
	p := mustNew(t, Options{Tokenizer: "whitespace", SnapshotInterval: 2}, nil)
	p.SetSnapshotKind(stats.Incremental)

	var snaps []stats.Snapshot
	p.OnSnapshot(func(s stats.Snapshot) { snaps = append(snaps, s) })

	for range p.Run(records("a b c", "d e", "", "f")) {
	}

	if len(snaps) != 4 {
		t.Fatalf("got %d snapshots, want 4", len(snaps))
	}
	for i, s := range snaps[:3] {
		if s.Kind != stats.Incremental || s.TotalTokens != 2 || s.Frequencies.Total() != 2 {
			t.Errorf("interval snapshot %d = %s", i, s)
		}
	}
	if final := snaps[3]; final.Kind != stats.Cumulative || final.TotalTokens != 6 {
		t.Errorf("final snapshot = %s", final)
	}
}
