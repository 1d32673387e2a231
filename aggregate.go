package admix

import (
	"sort"

	"github.com/montanaflynn/stats"
	"gopkg.in/guregu/null.v3"
)

// Aggregate collapses a fine-population frequency table into per-major-group
// frequencies, taking the unweighted arithmetic mean of every mapped fine
// population present in each variant's row. Fine populations absent from the
// mapping, and mapped populations absent from a row, are ignored. A (group,
// variant) pair with no qualifying populations gets an invalid null.Float
// rather than zero.
//
// The result covers every major group in the mapping's value set for every
// variant in the input. Population labels are sorted before averaging so
// that repeated calls on identical inputs sum in the same floating-point
// order and produce identical values.
func Aggregate(fine FineFrequencies, groupMap map[string]string) GroupFrequencies {
	groups := MajorGroups(groupMap)

	out := make(GroupFrequencies, len(groups))
	for _, group := range groups {
		out[group] = make(map[string]null.Float, len(fine))
	}

	for variantID, popFreqs := range fine {
		pops := make([]string, 0, len(popFreqs))
		for pop := range popFreqs {
			pops = append(pops, pop)
		}
		sort.Strings(pops)

		byGroup := make(map[string][]float64, len(groups))
		for _, pop := range pops {
			group, exists := groupMap[pop]
			if !exists {
				continue
			}
			byGroup[group] = append(byGroup[group], popFreqs[pop])
		}

		for _, group := range groups {
			mean, err := stats.Mean(byGroup[group])
			if err != nil {
				// No mapped population covered this variant for this group
				out[group][variantID] = null.Float{}
				continue
			}
			out[group][variantID] = null.FloatFrom(mean)
		}
	}

	return out
}
