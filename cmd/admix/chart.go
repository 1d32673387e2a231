package main

import (
	"bytes"
	"os"

	"github.com/wcharczuk/go-chart/v2"

	"github.com/admixlab/admix"
)

// RenderChart writes the estimate as a PNG bar chart, one bar per group that
// received a non-zero share, in the result set's presentation order.
func RenderChart(filename string, results admix.ResultSet) error {
	bars := make([]chart.Value, 0, len(results))
	for _, r := range results {
		if r.Proportion == 0 {
			continue
		}
		bars = append(bars, chart.Value{Label: r.Group, Value: 100 * r.Proportion})
	}

	graph := chart.BarChart{
		Width:    768,
		Height:   384,
		BarWidth: 48,
		Bars:     bars,
	}

	// Render to a byte buffer
	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return err
	}

	outFile, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer outFile.Close()

	if _, err := buffer.WriteTo(outFile); err != nil {
		return err
	}

	return nil
}
