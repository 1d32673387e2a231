package freqparser

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/carbocation/pfx"

	"github.com/admixlab/admix"
)

// Parser reads a reference allele-frequency table: one row per variant, the
// first column a variant ID, and one column per fine-grained population
// named by the header row.
type Parser struct {
	CSVReaderSettings *csv.Reader
}

// New returns a Parser for the usual tab-delimited panel format, with '#'
// comment lines ignored.
func New() *Parser {
	return NewWithDelimiter('\t')
}

func NewWithDelimiter(delimiter rune) *Parser {
	p := &Parser{}
	p.CSVReaderSettings = &csv.Reader{}
	p.CSVReaderSettings.Comma = delimiter
	p.CSVReaderSettings.Comment = '#'

	return p
}

// Parse consumes the table and returns variant ID => population => alternate
// allele frequency. A cell that cannot be parsed as a float becomes 0.0, a
// neutral absent-allele fallback rather than a parse failure; short rows
// simply omit their missing populations. Only a missing or empty header is
// an error.
func (p *Parser) Parse(r io.Reader) (admix.FineFrequencies, error) {
	reader := csv.NewReader(r)
	reader.Comma = p.CSVReaderSettings.Comma
	reader.Comment = p.CSVReaderSettings.Comment
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		return nil, pfx.Err(err)
	}
	if len(header) < 2 {
		return nil, fmt.Errorf("the header names no population columns: %v", header)
	}
	populations := header[1:]

	out := make(admix.FineFrequencies)
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, pfx.Err(err)
		}

		if len(row) < 1 || row[0] == "" {
			continue
		}

		freqs := make(map[string]float64, len(populations))
		for i, cell := range row[1:] {
			if i >= len(populations) {
				break
			}

			freq, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				freq = 0.0
			}
			freqs[populations[i]] = freq
		}

		out[row[0]] = freqs
	}

	return out, nil
}

// Open reads a frequency table from disk, transparently decompressing gzip
// and auto-detecting the delimiter.
func Open(path string) (admix.FineFrequencies, error) {
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

	data, err := io.ReadAll(fd)
	if err != nil {
		return nil, pfx.Err(err)
	}

	p := NewWithDelimiter(admix.DetermineDelimiter(bytes.NewReader(data)))

	return p.Parse(bytes.NewReader(data))
}
