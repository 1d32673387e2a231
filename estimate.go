package admix

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/admixlab/admix/hwe"
)

// Proportions maps major group label => estimated fraction of the sample's
// ancestry attributed to that group. A valid vector sums to 1.0 within
// floating-point tolerance; an all-zero vector means no variant in the
// sample overlapped any group's defined frequencies, and callers must treat
// that as "cannot compute" rather than as a flat estimate.
type Proportions map[string]float64

// Zero reports whether no group received any ancestry share.
func (p Proportions) Zero() bool {
	for _, v := range p {
		if v > 0 {
			return false
		}
	}

	return true
}

// Estimate computes the per-group ancestry proportions for one sample. For
// each major group it sums, over every variant that is both called in the
// sample and defined in the group's aggregated frequencies, the log of the
// Hardy-Weinberg probability of the observed genotype. The per-group
// log-likelihoods are then normalized with log-sum-exp into proportions.
//
// A group whose frequency rows cover none of the sample's variants never
// enters the normalization and is reported as exactly 0.0; comparing the
// remaining groups over potentially different variant counts is deliberate.
// Variant IDs are visited in sorted order so the sums are reproducible
// bit-for-bit across runs.
func Estimate(genotypes map[string]Genotype, groupFreqs GroupFrequencies) Proportions {
	groups := make([]string, 0, len(groupFreqs))
	for group := range groupFreqs {
		groups = append(groups, group)
	}
	sort.Strings(groups)

	variants := make([]string, 0, len(genotypes))
	for variantID := range genotypes {
		variants = append(variants, variantID)
	}
	sort.Strings(variants)

	scored := make([]string, 0, len(groups))
	logLik := make([]float64, 0, len(groups))
	out := make(Proportions, len(groups))

	for _, group := range groups {
		freqs := groupFreqs[group]

		observed := 0
		sum := 0.0
		for _, variantID := range variants {
			freq, exists := freqs[variantID]
			if !exists || !freq.Valid {
				continue
			}

			sum += hwe.LogGenotypeProb(freq.Float64, genotypes[variantID].AltAlleles())
			observed++
		}

		if observed == 0 {
			out[group] = 0.0
			continue
		}

		scored = append(scored, group)
		logLik = append(logLik, sum)
	}

	if len(scored) == 0 {
		return out
	}

	denom := floats.LogSumExp(logLik)
	for i, group := range scored {
		out[group] = math.Exp(logLik[i] - denom)
	}

	return out
}
