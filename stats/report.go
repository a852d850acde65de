package stats

import "encoding/json"
import "fmt"
import "io"
import "math"
import "text/tabwriter"

type RankedTerm struct {
	Rank        int     `json:"rank"`
	Term        string  `json:"term"`
	Count       int     `json:"count"`
	Probability float64 `json:"probability"`
	// Zipf is r·P(r), roughly constant when the corpus follows Zipf's law.
	Zipf float64 `json:"zipf"`
}

// HeapsFit holds the parameters of V = K·n^β fitted to the growth curve.
type HeapsFit struct {
	K      float64 `json:"k"`
	Beta   float64 `json:"beta"`
	Points int     `json:"points"`
}

// Valid is false when there were too few growth points to fit.
func (h HeapsFit) Valid() bool {
	return h.Points >= 2 && !math.IsNaN(h.K) && !math.IsNaN(h.Beta)
}

type Report struct {
	TotalTokens   int
	DistinctTerms int
	// Terms seen exactly once.
	Singletons int
	Top        []RankedTerm
	Heaps      HeapsFit
	Growth     []GrowthPoint
}

// NewReport ranks the top terms of a cumulative snapshot and fits Heaps'
// law to the growth curve.
func NewReport(snap Snapshot, growth []GrowthPoint, top int) Report {
	r := Report{
		TotalTokens:   snap.TotalTokens,
		DistinctTerms: snap.DistinctTerms,
		Growth:        growth,
		Heaps:         FitHeaps(growth),
	}

	ranked := snap.Frequencies.Ranked()
	for _, tc := range ranked {
		if tc.Count == 1 {
			r.Singletons++
		}
	}

	if top > len(ranked) || top < 0 {
		top = len(ranked)
	}

	for i, tc := range ranked[:top] {
		p := 0.0
		if snap.TotalTokens > 0 {
			p = float64(tc.Count) / float64(snap.TotalTokens)
		}
		r.Top = append(r.Top, RankedTerm{
			Rank:        i + 1,
			Term:        tc.Term,
			Count:       tc.Count,
			Probability: p,
			Zipf:        float64(i+1) * p,
		})
	}
	return r
}

/*
FitHeaps fits V = K·n^β by least squares on log V = log K + β·log n.
Points with no tokens or no vocabulary are skipped. With fewer than two
usable points, or when every point has the same n, the fit is left zero.
*/
func FitHeaps(growth []GrowthPoint) HeapsFit {
	var sx, sy, sxx, sxy float64
	n := 0

	for _, p := range growth {
		if p.Tokens <= 0 || p.Vocabulary <= 0 {
			continue
		}
		x := math.Log(float64(p.Tokens))
		y := math.Log(float64(p.Vocabulary))
		sx += x
		sy += y
		sxx += x * x
		sxy += x * y
		n++
	}

	fit := HeapsFit{Points: n}
	if n < 2 {
		return fit
	}

	denom := float64(n)*sxx - sx*sx
	if math.Abs(denom) < 1e-12 {
		fit.Points = 0
		return fit
	}

	fit.Beta = (float64(n)*sxy - sx*sy) / denom
	fit.K = math.Exp((sy - fit.Beta*sx) / float64(n))
	return fit
}

func (r Report) Print(w io.Writer) error {
	summary := `
  Tokens:      %d
  Terms:       %d
  Singletons:  %d
`
	if _, err := fmt.Fprintf(w, summary, r.TotalTokens, r.DistinctTerms, r.Singletons); err != nil {
		return err
	}

	if r.Heaps.Valid() {
		fmt.Fprintf(w, "  Heaps:       V = %.3f * n^%.3f (%d points)\n", r.Heaps.K, r.Heaps.Beta, r.Heaps.Points)
	} else {
		fmt.Fprintf(w, "  Heaps:       not enough growth points\n")
	}

	if len(r.Top) == 0 {
		return nil
	}

	fmt.Fprintln(w)
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(tw, "rank\tterm\tcount\tP(r)\tr*P(r)\t\n")
	for _, t := range r.Top {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%.4f\t%.4f\t\n", t.Rank, t.Term, t.Count, t.Probability, t.Zipf)
	}
	return tw.Flush()
}

func (r Report) MarshalJSON() ([]byte, error) {
	type heaps struct {
		HeapsFit
		Valid bool `json:"valid"`
	}

	return json.Marshal(struct {
		TotalTokens   int           `json:"total_tokens"`
		DistinctTerms int           `json:"distinct_terms"`
		Singletons    int           `json:"singletons"`
		Top           []RankedTerm  `json:"top"`
		Heaps         heaps         `json:"heaps"`
		Growth        []GrowthPoint `json:"growth"`
	}{
		r.TotalTokens,
		r.DistinctTerms,
		r.Singletons,
		r.Top,
		heaps{r.Heaps, r.Heaps.Valid()},
		r.Growth,
	})
}
