package stats

import "fmt"
import "sync"
import log "github.com/cihub/seelog"

type SnapshotKind int

const (
	// Cumulative snapshots cover everything observed so far.
	Cumulative SnapshotKind = iota
	// Incremental snapshots cover what was observed since the previous
	// incremental snapshot.
	Incremental
)

func (k SnapshotKind) String() string {
	switch k {
	case Cumulative:
		return "cumulative"
	case Incremental:
		return "incremental"
	default:
		return fmt.Sprintf("SnapshotKind(%d)", int(k))
	}
}

/*
A Snapshot is an immutable copy of the accumulator's state.

For an incremental snapshot TotalTokens counts the observations since the
previous incremental snapshot, DistinctTerms counts the terms first seen in
that interval, and Frequencies holds only the counts that changed. Summing
every incremental snapshot therefore reproduces the cumulative one.
*/
type Snapshot struct {
	Kind          SnapshotKind
	TotalTokens   int
	DistinctTerms int
	Frequencies   FrequencyTable
}

func (s Snapshot) String() string {
	return fmt.Sprintf("%s: %d tokens, %d terms", s.Kind, s.TotalTokens, s.DistinctTerms)
}

// A GrowthPoint is the vocabulary size after a number of tokens, one point
// of the Heaps' law curve.
type GrowthPoint struct {
	Tokens     int `json:"tokens"`
	Vocabulary int `json:"vocabulary"`
}

/*
Accumulator counts observed terms. Terms are never removed, so the
vocabulary only grows. All methods are safe to call from multiple
goroutines, which lets a caller poll snapshots while a pipeline observes.
*/
type Accumulator struct {
	mu sync.Mutex

	freq  FrequencyTable
	total int

	delta         FrequencyTable
	deltaTotal    int
	deltaDistinct int

	growth []GrowthPoint
}

func NewAccumulator() *Accumulator {
	return &Accumulator{
		freq:  make(FrequencyTable),
		delta: make(FrequencyTable),
	}
}

// Observe counts one occurrence of term. Empty terms are ignored.
func (a *Accumulator) Observe(term string) {
	if term == "" {
		return
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.observe(term, 1)
}

func (a *Accumulator) observe(term string, n int) {
	if _, seen := a.freq[term]; !seen {
		a.deltaDistinct++
	}
	a.freq[term] += n
	a.delta[term] += n
	a.total += n
	a.deltaTotal += n
}

// Snapshot copies the current state and records a point on the growth
// curve. An incremental snapshot resets the delta.
func (a *Accumulator) Snapshot(kind SnapshotKind) Snapshot {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.markGrowth()

	if kind == Incremental {
		snap := Snapshot{
			Kind:          Incremental,
			TotalTokens:   a.deltaTotal,
			DistinctTerms: a.deltaDistinct,
			Frequencies:   a.delta,
		}
		a.delta = make(FrequencyTable)
		a.deltaTotal = 0
		a.deltaDistinct = 0
		return snap
	}

	return Snapshot{
		Kind:          Cumulative,
		TotalTokens:   a.total,
		DistinctTerms: len(a.freq),
		Frequencies:   a.freq.Clone(),
	}
}

func (a *Accumulator) markGrowth() {
	if n := len(a.growth); n > 0 && a.growth[n-1].Tokens == a.total {
		return
	}
	a.growth = append(a.growth, GrowthPoint{Tokens: a.total, Vocabulary: len(a.freq)})
}

func (a *Accumulator) Total() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.total
}

func (a *Accumulator) Distinct() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.freq)
}

// Growth returns the vocabulary growth points recorded at each snapshot.
func (a *Accumulator) Growth() []GrowthPoint {
	a.mu.Lock()
	defer a.mu.Unlock()
	return append([]GrowthPoint(nil), a.growth...)
}

// Merge folds everything other has observed into a. The merged counts are
// part of a's current incremental delta.
func (a *Accumulator) Merge(other *Accumulator) {
	if other == nil || other == a {
		return
	}

	other.mu.Lock()
	theirs := other.freq.Clone()
	other.mu.Unlock()

	a.Add(theirs)
}

// Add counts every term of table as observed that many times, as when
// folding in another accumulator's incremental snapshot.
func (a *Accumulator) Add(table FrequencyTable) {
	a.mu.Lock()
	defer a.mu.Unlock()

	for term, n := range table {
		if term != "" && n > 0 {
			a.observe(term, n)
		}
	}
	log.Debugf("Added %d terms, now %d tokens over %d terms", len(table), a.total, len(a.freq))
}
