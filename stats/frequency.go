package stats

import "sort"

// FrequencyTable maps a term to the number of times it was observed.
type FrequencyTable map[string]int

func (t FrequencyTable) Clone() FrequencyTable {
	c := make(FrequencyTable, len(t))
	for term, n := range t {
		c[term] = n
	}
	return c
}

// Total sums every count in the table.
func (t FrequencyTable) Total() int {
	total := 0
	for _, n := range t {
		total += n
	}
	return total
}

// Add folds other into t key by key.
func (t FrequencyTable) Add(other FrequencyTable) {
	for term, n := range other {
		t[term] += n
	}
}

// Equal reports whether both tables hold the same counts.
func (t FrequencyTable) Equal(other FrequencyTable) bool {
	if len(t) != len(other) {
		return false
	}
	for term, n := range t {
		if m, ok := other[term]; !ok || m != n {
			return false
		}
	}
	return true
}

// Merge sums tables key by key into a new table. It is commutative and
// associative, so worker results can be merged in any order.
func Merge(tables ...FrequencyTable) FrequencyTable {
	merged := make(FrequencyTable)
	for _, t := range tables {
		merged.Add(t)
	}
	return merged
}

type TermCount struct {
	Term  string `json:"term"`
	Count int    `json:"count"`
}

// Ranked orders the table by descending count. Ties are broken
// alphabetically so the ranking is stable across runs.
func (t FrequencyTable) Ranked() []TermCount {
	ranked := make([]TermCount, 0, len(t))
	for term, n := range t {
		ranked = append(ranked, TermCount{term, n})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Count != ranked[j].Count {
			return ranked[i].Count > ranked[j].Count
		}
		return ranked[i].Term < ranked[j].Term
	})
	return ranked
}
