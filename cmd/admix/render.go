package main

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/fatih/color"

	"github.com/admixlab/admix"
)

// barWidth is the stacked bar's total width in terminal cells.
const barWidth = 100

// One background color per major group, reused cyclically if a custom
// mapping defines more groups than colors.
var segmentColors = []*color.Color{
	color.New(color.BgRed),
	color.New(color.BgGreen),
	color.New(color.BgYellow),
	color.New(color.BgBlue),
	color.New(color.BgMagenta),
	color.New(color.BgCyan),
	color.New(color.BgWhite),
	color.New(color.BgHiRed),
	color.New(color.BgHiGreen),
	color.New(color.BgHiBlue),
}

// RenderBar draws the estimate as a single stacked horizontal bar followed
// by a legend. Groups at exactly zero are omitted from both.
func RenderBar(w io.Writer, results admix.ResultSet) {
	fmt.Fprint(w, "\n## Ancestry Composition Estimate ##\n\n")

	visible := 0
	for _, r := range results {
		if r.Proportion > 0 {
			visible++
		}
	}

	fmt.Fprint(w, "Total Composition: [")
	cumulative, drawn := 0, 0
	for i, r := range results {
		if r.Proportion == 0 {
			continue
		}

		width := int(math.Round(r.Proportion * barWidth))
		drawn++
		if drawn == visible {
			// Rounding the other segments can leave the bar short or long;
			// the final segment absorbs the difference
			width = barWidth - cumulative
		}
		if width < 0 {
			width = 0
		}

		segmentColors[i%len(segmentColors)].Fprint(w, strings.Repeat(" ", width))
		cumulative += width
	}
	fmt.Fprint(w, "]\n\n")

	fmt.Fprintln(w, "Ancestry Breakdown:")
	for i, r := range results {
		if r.Proportion == 0 {
			continue
		}

		segmentColors[i%len(segmentColors)].Fprint(w, " ")
		fmt.Fprintf(w, " %-22s %7.2f%%\n", r.Group, 100*r.Proportion)
	}
}
