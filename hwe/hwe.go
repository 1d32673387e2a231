package hwe

import "math"

// Epsilon bounds allele frequencies and genotype probabilities away from 0
// and 1 so that log-likelihoods stay finite even for monomorphic reference
// sites.
const Epsilon = 1e-9

// GenotypeProb returns the Hardy-Weinberg probability of observing the given
// number of alternate-allele copies (0, 1, or 2) at a site whose alternate
// allele frequency is p. Under random mating the three genotypes occur at
// (1-p)^2, 2p(1-p), and p^2. The frequency is clamped to [Epsilon,
// 1-Epsilon] before use, so a reference frequency of exactly 0 or 1 yields a
// tiny probability rather than an impossible one.
func GenotypeProb(p float64, altAlleles int) float64 {
	if p < Epsilon {
		p = Epsilon
	}
	if p > 1.0-Epsilon {
		p = 1.0 - Epsilon
	}

	switch altAlleles {
	case 0:
		return (1.0 - p) * (1.0 - p)
	case 1:
		return 2.0 * p * (1.0 - p)
	case 2:
		return p * p
	}

	// Not a diploid biallelic call
	return 0.0
}

// LogGenotypeProb is the log of GenotypeProb, with the probability floored
// at Epsilon so the result is never -Inf.
func LogGenotypeProb(p float64, altAlleles int) float64 {
	return math.Log(math.Max(GenotypeProb(p, altAlleles), Epsilon))
}
