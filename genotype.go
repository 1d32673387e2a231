package admix

// Genotype is a single diploid genotype call at one variant, expressed as the
// number of alternate-allele copies carried by the sample.
type Genotype int

const (
	HomRef Genotype = iota
	Het
	HomAlt
)

// AltAlleles returns the number of alternate-allele copies (0, 1, or 2)
// encoded by the call.
func (g Genotype) AltAlleles() int {
	return int(g)
}

func (g Genotype) String() string {
	switch g {
	case HomRef:
		return "HOM_REF"
	case Het:
		return "HET"
	case HomAlt:
		return "HOM_ALT"
	}

	return "UNKNOWN"
}
