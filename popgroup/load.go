package popgroup

import (
	"encoding/csv"
	"io"
	"os"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
)

type mappingRow struct {
	Population string `csv:"Population"`
	Group      string `csv:"Group"`
}

// LoadTSV reads a user-supplied population-to-group table to replace
// DefaultMapping, for reference panels whose columns the built-in curation
// does not cover. The file is tab-delimited with a Population and a Group
// header column. Rows with an empty population or group are skipped;
// duplicate populations keep the last assignment.
func LoadTSV(path string) (map[string]string, error) {
	fileBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	// Tell gocsv to use tab as the delimiter
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = '\t'
		r.LazyQuotes = true
		return r
	})

	records := []*mappingRow{}
	if err := gocsv.UnmarshalBytes(fileBytes, &records); err != nil {
		return nil, pfx.Err(err)
	}

	out := make(map[string]string, len(records))
	for _, record := range records {
		if record.Population == "" || record.Group == "" {
			continue
		}
		out[record.Population] = record.Group
	}

	return out, nil
}
