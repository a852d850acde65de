package pipeline

import "errors"
import "iter"
import "strconv"
import "github.com/cwacek/irtokens/filereader"
import "github.com/cwacek/irtokens/filters"
import "github.com/cwacek/irtokens/stats"
import "github.com/cwacek/irtokens/stemmer"
import "github.com/cwacek/irtokens/tokenizer"
import log "github.com/cihub/seelog"

// A Term is one normalized index term and the span of the record it came
// from.
type Term struct {
	Text   string
	Record string
	Start  int
	End    int
}

/*
A Pipeline turns raw records into normalized terms:

	decode -> tokenize -> symbols, acronyms, hyphens -> case fold
	       -> stopwords -> stem -> accumulate

Every stage after tokenizing runs as a filter in one chain. Stemming is
always part of it (identity when no stemmer is named); the others are
optional. A Pipeline owns stateful filters and its accumulator, so it must
be driven from one goroutine at a time; RunParallel builds one pipeline per
worker.
*/
type Pipeline struct {
	opts      Options
	stopwords *filters.StopwordSet

	tokenizer tokenizer.Tokenizer
	stemmer   stemmer.Stemmer
	decoder   *filereader.Decoder
	chain     filters.Filter
	stopper   *filters.StopWordFilter

	acc          *stats.Accumulator
	snapshotKind stats.SnapshotKind
	sinceSnap    int
	skipped      int
	stopped      int
	err          error
	onSnapshot   func(stats.Snapshot)
	onWarning    func(error)
}

// New validates opts and builds a pipeline. stopwords is only consulted
// when opts.Stopping is set, and may then be nil to use the built in list.
func New(opts Options, stopwords *filters.StopwordSet) (*Pipeline, error) {
	p := &Pipeline{opts: opts, acc: stats.NewAccumulator()}

	var err error
	if p.tokenizer, err = tokenizer.New(opts.Tokenizer); err != nil {
		return nil, &ConfigurationError{Field: "tokenizer", Value: opts.Tokenizer, Err: err}
	}
	if p.stemmer, err = stemmer.New(opts.Stemmer); err != nil {
		return nil, &ConfigurationError{Field: "stemmer", Value: opts.Stemmer, Err: err}
	}
	if p.decoder, err = filereader.NewDecoder(opts.Encoding); err != nil {
		return nil, &ConfigurationError{Field: "encoding", Value: opts.Encoding, Err: err}
	}
	if opts.SnapshotInterval < 0 {
		return nil, &ConfigurationError{
			Field: "snapshot interval",
			Value: strconv.Itoa(opts.SnapshotInterval),
			Err:   errors.New("must not be negative"),
		}
	}

	if opts.Stopping {
		if stopwords == nil {
			stopwords = filters.DefaultStopwords()
		}
		p.stopwords = stopwords
	}

	p.chain = p.buildChain()
	log.Debugf("Built pipeline %s", p)
	return p, nil
}

func (p *Pipeline) buildChain() filters.Filter {
	opts := p.opts

	var stages []filters.Filter
	if opts.DropSymbols {
		stages = append(stages, filters.NewSymbolFilter("symbols"))
	}
	if opts.SqueezeAbbreviations {
		stages = append(stages, filters.NewAcronymFilter("acronyms"))
	}
	if opts.ExpandHyphens {
		stages = append(stages, filters.NewHyphenFilter("hyphens"))
	}
	if opts.CaseFold {
		stages = append(stages, filters.NewLowerCaseFilter("lower"))
	}
	if p.stopwords != nil {
		p.stopper = filters.NewStopWordFilter("stopwords", p.stopwords).(*filters.StopWordFilter)
		stages = append(stages, p.stopper)
	}
	stages = append(stages, filters.NewStemFilter("stem", p.stemmer))
	return filters.Chain(stages...)
}

func (p *Pipeline) String() string {
	return p.tokenizer.Name() + " -> " + p.chain.String()
}

func (p *Pipeline) Options() Options {
	return p.opts
}

// OnSnapshot registers a callback for interval and final snapshots.
func (p *Pipeline) OnSnapshot(fn func(stats.Snapshot)) {
	p.onSnapshot = fn
}

// SetSnapshotKind picks the kind of the interval snapshots. It defaults to
// Cumulative, which copies the whole frequency table every interval; an
// Incremental snapshot only hands over the counts since the previous one.
// The final snapshot is always cumulative.
func (p *Pipeline) SetSnapshotKind(kind stats.SnapshotKind) {
	p.snapshotKind = kind
}

// OnWarning registers a callback for skipped records and empty input.
func (p *Pipeline) OnWarning(fn func(error)) {
	p.onWarning = fn
}

// Stats exposes the accumulator. It may be polled while Run is iterating.
func (p *Pipeline) Stats() *stats.Accumulator {
	return p.acc
}

// Skipped counts the records dropped as malformed.
func (p *Pipeline) Skipped() int {
	return p.skipped
}

// Stopped counts the tokens dropped as stopwords.
func (p *Pipeline) Stopped() int {
	if p.stopper == nil {
		return p.stopped
	}
	return p.stopped + p.stopper.Removed()
}

// Err returns the error that ended the last Run early, if any. Malformed
// records are not errors; see Skipped.
func (p *Pipeline) Err() error {
	return p.err
}

// Normalize produces the terms of one decoded record. It does not touch
// the statistics.
func (p *Pipeline) Normalize(text string) iter.Seq[Term] {
	return p.normalize("", text)
}

func (p *Pipeline) normalize(record, text string) iter.Seq[Term] {
	return func(yield func(Term) bool) {
		for tok := range filters.Run(p.chain, p.tokenizer.Tokens(text)) {
			if tok.Text == "" {
				continue
			}
			if !yield(Term{Text: tok.Text, Record: record, Start: tok.Start, End: tok.End}) {
				return
			}
		}
	}
}

/*
Run pulls records lazily, normalizes them and observes every term it
yields. The snapshot callback fires every SnapshotInterval terms and once
more with a cumulative snapshot when the run ends. Malformed records are
skipped with a warning; any other read error ends the run and is kept in
Err.
*/
func (p *Pipeline) Run(records iter.Seq2[filereader.Record, error]) iter.Seq[Term] {
	return func(yield func(Term) bool) {
		p.err = nil
		defer p.finish()

		for rec, err := range records {
			if err != nil {
				var malformed *filereader.MalformedRecordError
				if errors.As(err, &malformed) {
					p.skip(err)
					continue
				}
				log.Errorf("Stopping run: %v", err)
				p.err = err
				return
			}

			text, err := p.decoder.Decode(rec)
			if err != nil {
				p.skip(err)
				continue
			}

			if !p.runRecord(rec, text, yield) {
				return
			}
		}
	}
}

// runRecord reports false when the consumer stopped iterating.
func (p *Pipeline) runRecord(rec filereader.Record, text string, yield func(Term) bool) bool {
	count := 0

	for term := range p.normalize(rec.Id, text) {
		count++
		p.acc.Observe(term.Text)

		if !yield(term) {
			return false
		}

		p.sinceSnap++
		if p.opts.SnapshotInterval > 0 && p.sinceSnap >= p.opts.SnapshotInterval {
			p.checkpoint()
		}
	}

	if count == 0 {
		w := &EmptyInputWarning{Record: rec.Id, Source: rec.Source}
		log.Debug(w)
		if p.onWarning != nil {
			p.onWarning(w)
		}
	}
	return true
}

// checkpoint fires an interval snapshot.
func (p *Pipeline) checkpoint() {
	p.fire(p.snapshotKind)
}

func (p *Pipeline) finish() {
	p.fire(stats.Cumulative)
}

func (p *Pipeline) fire(kind stats.SnapshotKind) {
	p.sinceSnap = 0
	snap := p.acc.Snapshot(kind)
	if p.onSnapshot != nil {
		p.onSnapshot(snap)
	}
}

func (p *Pipeline) skip(err error) {
	p.skipped++
	log.Warnf("Skipping record: %v", err)
	if p.onWarning != nil {
		p.onWarning(err)
	}
}
