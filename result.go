package admix

import "sort"

// Result is one group's share of the estimate.
type Result struct {
	Group      string
	Proportion float64
}

// ResultSet holds every major group's proportion, including groups at 0.0,
// ordered for presentation.
type ResultSet []Result

// NewResultSet sorts a proportion vector by descending proportion, breaking
// ties by group label, so that rendered output is reproducible for equal
// inputs.
func NewResultSet(proportions Proportions) ResultSet {
	out := make(ResultSet, 0, len(proportions))
	for group, proportion := range proportions {
		out = append(out, Result{Group: group, Proportion: proportion})
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Proportion != out[j].Proportion {
			return out[i].Proportion > out[j].Proportion
		}
		return out[i].Group < out[j].Group
	})

	return out
}

// Zero reports the degenerate outcome in which no group received any share,
// meaning no variant overlap existed between the sample and the reference.
func (rs ResultSet) Zero() bool {
	for _, r := range rs {
		if r.Proportion > 0 {
			return false
		}
	}

	return true
}
