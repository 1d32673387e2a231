package admix

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"gopkg.in/guregu/null.v3"
)

func toyGenotypes() map[string]Genotype {
	return map[string]Genotype{
		"rs1": Het,
		"rs2": HomAlt,
		"rs3": HomRef,
		"rs4": HomAlt,
		"rs5": Het,
	}
}

// The genotype pattern tracks the East Asian allele frequencies most closely
// (especially the homozygous-alternate calls at rs2 and rs4), so East Asian
// must dominate, with the other groups small but non-zero and the vector
// summing to 1.
func TestEstimateToyScenario(t *testing.T) {
	groupFreqs := Aggregate(toyFine(), toyMapping())
	proportions := Estimate(toyGenotypes(), groupFreqs)

	if len(proportions) != 3 {
		t.Fatalf("Expected 3 groups, got %d", len(proportions))
	}

	sum := 0.0
	for group, p := range proportions {
		if p < 0 || p > 1 {
			t.Errorf("%s: proportion %f outside [0,1]", group, p)
		}
		if p == 0 {
			t.Errorf("%s: expected a non-zero share", group)
		}
		sum += p
	}
	if math.Abs(sum-1.0) > 1e-6 {
		t.Errorf("Proportions sum to %f, expected 1.0", sum)
	}

	for _, other := range []string{"European", "African"} {
		if proportions["East Asian"] <= proportions[other] {
			t.Errorf("Expected East Asian to dominate; East Asian=%f, %s=%f",
				proportions["East Asian"], other, proportions[other])
		}
	}
}

// A group whose frequency rows are undefined everywhere must be reported as
// exactly 0.0 and must never distort the other groups' normalization.
func TestEstimateSkipsUndefinedGroup(t *testing.T) {
	mapping := toyMapping()
	mapping["Papuan"] = "Oceanian"

	groupFreqs := Aggregate(toyFine(), mapping)
	proportions := Estimate(toyGenotypes(), groupFreqs)

	if p := proportions["Oceanian"]; p != 0.0 {
		t.Errorf("Oceanian: expected exactly 0.0, got %f", p)
	}

	sum := 0.0
	for _, p := range proportions {
		sum += p
	}
	if math.Abs(sum-1.0) > 1e-6 {
		t.Errorf("Remaining proportions sum to %f, expected 1.0", sum)
	}
}

func TestEstimateNoOverlap(t *testing.T) {
	groupFreqs := Aggregate(toyFine(), toyMapping())
	genotypes := map[string]Genotype{"rs999": Het}

	proportions := Estimate(genotypes, groupFreqs)

	if !proportions.Zero() {
		t.Errorf("Expected the all-zero degenerate vector, got %v", proportions)
	}
	for group, p := range proportions {
		if p != 0.0 {
			t.Errorf("%s: expected exactly 0.0, got %f", group, p)
		}
	}
}

// Monomorphic reference frequencies must flow through the clamped probability
// path rather than producing log(0).
func TestEstimateClampedFrequencies(t *testing.T) {
	groupFreqs := GroupFrequencies{
		"A": {"rs1": null.FloatFrom(0.0), "rs2": null.FloatFrom(1.0)},
		"B": {"rs1": null.FloatFrom(0.5), "rs2": null.FloatFrom(0.5)},
	}
	genotypes := map[string]Genotype{"rs1": HomAlt, "rs2": HomRef}

	proportions := Estimate(genotypes, groupFreqs)

	sum := 0.0
	for group, p := range proportions {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			t.Fatalf("%s: non-finite proportion %f", group, p)
		}
		sum += p
	}
	if math.Abs(sum-1.0) > 1e-6 {
		t.Errorf("Proportions sum to %f, expected 1.0", sum)
	}
	if proportions["B"] <= proportions["A"] {
		t.Errorf("The group contradicted by both genotypes should lose: %v", proportions)
	}
}

// Doubling the number of variants with a consistent frequency pattern must
// sharpen the dominant group's share: more variants means more accumulated
// log-likelihood evidence.
func TestEstimateSharpensWithMoreVariants(t *testing.T) {
	single := GroupFrequencies{
		"East Asian": {"rs2": null.FloatFrom(0.87)},
		"European":   {"rs2": null.FloatFrom(0.21)},
	}
	double := GroupFrequencies{
		"East Asian": {"rs2": null.FloatFrom(0.87), "rs4": null.FloatFrom(0.935)},
		"European":   {"rs2": null.FloatFrom(0.21), "rs4": null.FloatFrom(0.06)},
	}
	genotypes := map[string]Genotype{"rs2": HomAlt, "rs4": HomAlt}

	baseline := Estimate(genotypes, single)["East Asian"]
	sharpened := Estimate(genotypes, double)["East Asian"]

	if sharpened <= baseline {
		t.Errorf("Expected the dominant share to grow with more evidence: %f -> %f", baseline, sharpened)
	}
}

// Drawing a sample's alleles from one group's own frequencies should make
// that group the (tied-)largest estimate in nearly every trial.
func TestEstimateRecoversSourceGroup(t *testing.T) {
	const (
		nVariants = 50
		nTrials   = 20
	)

	rng := rand.New(rand.NewSource(42))

	groups := []string{"A", "B", "C"}
	groupFreqs := make(GroupFrequencies, len(groups))
	for _, group := range groups {
		freqs := make(map[string]null.Float, nVariants)
		for i := 0; i < nVariants; i++ {
			freqs[fmt.Sprintf("rs%d", i)] = null.FloatFrom(0.05 + 0.9*rng.Float64())
		}
		groupFreqs[group] = freqs
	}

	wins := 0
	for trial := 0; trial < nTrials; trial++ {
		genotypes := make(map[string]Genotype, nVariants)
		for i := 0; i < nVariants; i++ {
			variantID := fmt.Sprintf("rs%d", i)
			p := groupFreqs["A"][variantID].Float64

			altAlleles := 0
			if rng.Float64() < p {
				altAlleles++
			}
			if rng.Float64() < p {
				altAlleles++
			}
			genotypes[variantID] = Genotype(altAlleles)
		}

		proportions := Estimate(genotypes, groupFreqs)
		best := true
		for _, group := range groups[1:] {
			if proportions[group] > proportions["A"] {
				best = false
			}
		}
		if best {
			wins++
		}
	}

	if wins < nTrials*3/4 {
		t.Errorf("Source group won only %d of %d trials", wins, nTrials)
	}
}

func TestEstimateDeterminism(t *testing.T) {
	groupFreqs := Aggregate(toyFine(), toyMapping())

	first := Estimate(toyGenotypes(), groupFreqs)
	second := Estimate(toyGenotypes(), groupFreqs)

	for group, p := range first {
		if second[group] != p {
			t.Errorf("%s: %v != %v across identical runs", group, p, second[group])
		}
	}
}
