// Package vcfsample extracts one sample's diploid genotype calls from a VCF
// for the ancestry estimator. The variant ID column is the join key against
// the reference frequency panel, so records without one are useless here and
// are dropped, as is any record whose genotype cannot be read as a diploid
// biallelic call.
package vcfsample

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/brentp/vcfgo"
	"github.com/carbocation/pfx"

	"github.com/admixlab/admix"
)

var BufferSize = 4096

// Open reads genotype calls for the named sample from a VCF file, which may
// be gzipped. An empty sampleName selects the file's first sample column.
func Open(path, sampleName string) (map[string]admix.Genotype, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer f.Close()

	fd, err := admix.MaybeDecompressReadCloserFromFile(f)
	if err != nil {
		return nil, pfx.Err(err)
	}
	defer fd.Close()

	return Read(fd, sampleName)
}

// Read consumes a VCF stream and returns variant ID => genotype call for one
// sample. Records with a missing ID, a missing or non-diploid GT, a missing
// allele, or an allele beyond the first alternate are skipped rather than
// failing the whole read.
func Read(r io.Reader, sampleName string) (map[string]admix.Genotype, error) {
	buffRead := bufio.NewReaderSize(r, BufferSize)
	rdr, err := vcfgo.NewReader(buffRead, false)
	if err != nil {
		return nil, pfx.Err(err)
	}

	if len(rdr.Header.SampleNames) < 1 {
		return nil, fmt.Errorf("the VCF contains no sample columns")
	}

	col := 0
	if sampleName != "" {
		col = -1
		for i, name := range rdr.Header.SampleNames {
			if name == sampleName {
				col = i
				break
			}
		}
		if col < 0 {
			return nil, fmt.Errorf("sample %q is not present in the VCF (samples: %v)", sampleName, rdr.Header.SampleNames)
		}
	}

	out := make(map[string]admix.Genotype)
	for {
		variant := rdr.Read()
		if variant == nil {
			break
		}

		if err := variant.Header.ParseSamples(variant); err != nil {
			log.Println("Sample parsing error:", err)
			continue
		}

		id := variant.Id()
		if id == "" || id == "." {
			continue
		}

		if col >= len(variant.Samples) {
			continue
		}

		genotype, ok := diploidCall(variant.Samples[col])
		if !ok {
			continue
		}

		out[id] = genotype
	}

	// vcfgo accumulates non-fatal irregularities rather than stopping; those
	// records were already dropped above
	if err := rdr.Error(); err != nil {
		log.Println("VCF parse warnings:", err)
	}

	return out, nil
}

// diploidCall counts the alternate alleles in a genotype. Phasing is
// irrelevant to the count, so 0|1 and 0/1 are the same call. Anything other
// than two known ref-or-first-alt alleles is rejected.
func diploidCall(sample *vcfgo.SampleGenotype) (admix.Genotype, bool) {
	if sample == nil || len(sample.GT) != 2 {
		return 0, false
	}

	altAlleles := 0
	for _, gt := range sample.GT {
		switch gt {
		case 0:
			// Reference allele
		case 1:
			altAlleles++
		default:
			// Missing (-1) or a later alternate allele
			return 0, false
		}
	}

	return admix.Genotype(altAlleles), true
}
