package admix

import (
	"sort"

	"gopkg.in/guregu/null.v3"
)

// FineFrequencies maps variant ID => fine population label => alternate
// allele frequency, as read from a reference panel table. Frequencies are
// semantically in [0,1] but are not validated here; the parsing layer
// substitutes 0.0 for anything it could not read.
type FineFrequencies map[string]map[string]float64

// GroupFrequencies maps major group label => variant ID => aggregated
// alternate allele frequency. An invalid null.Float records that no fine
// population mapped to the group covered the variant, which is different
// from a frequency near zero and must stay distinguishable downstream.
type GroupFrequencies map[string]map[string]null.Float

// MajorGroups returns the sorted, de-duplicated set of major group labels
// that appear as values of a population-to-group mapping.
func MajorGroups(groupMap map[string]string) []string {
	seen := make(map[string]struct{})
	for _, group := range groupMap {
		seen[group] = struct{}{}
	}

	groups := make([]string, 0, len(seen))
	for group := range seen {
		groups = append(groups, group)
	}
	sort.Strings(groups)

	return groups
}
