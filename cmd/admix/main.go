// admix estimates a genotyped individual's approximate ancestry proportions
// across ten major population groups, by comparing the sample's genotype
// calls against aggregated reference allele frequencies under a
// Hardy-Weinberg likelihood model. This is an illustrative estimator, not a
// substitute for a production ancestry pipeline.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/admixlab/admix"
	"github.com/admixlab/admix/freqparser"
	"github.com/admixlab/admix/popgroup"
	"github.com/admixlab/admix/vcfsample"
)

// Special value that is to be set using ldflags
// E.g.: go build -ldflags "-X main.builddate=`date -u +%Y-%m-%d:%H:%M:%S%Z`"
var builddate string

var (
	BufferSize = 4096
	STDOUT     = bufio.NewWriterSize(os.Stdout, BufferSize)
)

func main() {
	defer STDOUT.Flush()

	if builddate != "" {
		fmt.Fprintf(os.Stderr, "This admix binary was built at: %s\n", builddate)
	}

	var vcfFile, freqFile, mappingFile, sampleName, chartFile string
	flag.StringVar(&vcfFile, "vcf", "", "Path to the VCF containing the sample's diploid genotype calls. May be gzipped.")
	flag.StringVar(&freqFile, "freq", "", "Path to the reference allele frequency table: one row per variant, one column per population. May be gzipped.")
	flag.StringVar(&mappingFile, "mapping", "", "Optional: tab-delimited Population/Group file overriding the built-in panel grouping.")
	flag.StringVar(&sampleName, "sample", "", "Optional: which sample column of the VCF to read. Defaults to the first sample.")
	flag.StringVar(&chartFile, "chart", "", "Optional: also render the estimate to this PNG file.")
	flag.Parse()

	if vcfFile == "" {
		flag.PrintDefaults()
		log.Fatalln("Please provide --vcf")
	}

	if freqFile == "" {
		flag.PrintDefaults()
		log.Fatalln("Please provide --freq")
	}

	mapping := popgroup.DefaultMapping
	if mappingFile != "" {
		var err error
		if mapping, err = popgroup.LoadTSV(mappingFile); err != nil {
			log.Fatalln(err)
		}
	}
	if len(mapping) == 0 {
		log.Fatalln("The population grouping is empty")
	}

	genotypes, err := vcfsample.Open(vcfFile, sampleName)
	if err != nil {
		log.Fatalln(err)
	}
	log.Println("Parsed", len(genotypes), "genotype calls for the sample")

	fine, err := freqparser.Open(freqFile)
	if err != nil {
		log.Fatalln(err)
	}
	log.Println("Parsed", len(fine), "variants from the reference panel")

	groupFreqs := admix.Aggregate(fine, mapping)
	results := admix.NewResultSet(admix.Estimate(genotypes, groupFreqs))

	if results.Zero() {
		log.Fatalln("Cannot compute an ancestry estimate: no variant in the VCF overlapped any reference group")
	}

	RenderBar(STDOUT, results)

	if chartFile != "" {
		if err := RenderChart(chartFile, results); err != nil {
			log.Fatalln(err)
		}
		log.Println("Wrote chart to", chartFile)
	}
}
