package stegano

import (
	"unicode/utf8"

	"github.com/montanaflynn/stats"
)

// Report describes how marker runes sit inside a text.
type Report struct {
	Runes      int  // total rune count
	Markers    int  // zero and one markers together
	Zeros      int
	Ones       int
	Payload    int  // whole 8-bit units the markers decode to
	WholeUnits bool // marker count divisible by BitsPerUnit
	Gaps       GapStats
}

// GapStats summarizes the runs of plain runes separating consecutive
// markers. Runs before the first marker and after the last one do not
// count; fewer than two markers means no gaps at all.
type GapStats struct {
	Count  int
	Min    int
	Max    int
	Mean   float64
	Median float64
	StdDev float64
}

/*
Inspect scans s once and reports the marker layout: counts, whether the
markers add up to whole 8-bit units, and how the plain-text gaps between
them are distributed. It never fails; a text without markers yields a zero
report. The gap spread is what gives a sloppy embedding away, so it is
worth a look before publishing a mixed text.
*/
func Inspect(s string, tokens TokenPair) Report {
	rep := Report{}
	var gaps []float64
	gap := 0
	seen := false
	for _, r := range s {
		rep.Runes++
		if r != tokens.Zero && r != tokens.One {
			gap++
			continue
		}
		if r == tokens.Zero {
			rep.Zeros++
		} else {
			rep.Ones++
		}
		if seen {
			gaps = append(gaps, float64(gap))
		}
		gap = 0
		seen = true
	}
	rep.Markers = rep.Zeros + rep.Ones
	rep.Payload = rep.Markers / BitsPerUnit
	rep.WholeUnits = rep.Markers%BitsPerUnit == 0
	rep.Gaps = summarizeGaps(gaps)
	return rep
}

func summarizeGaps(gaps []float64) GapStats {
	gs := GapStats{Count: len(gaps)}
	if len(gaps) == 0 {
		return gs
	}
	gs.Min, gs.Max = int(gaps[0]), int(gaps[0])
	for _, g := range gaps[1:] {
		if int(g) < gs.Min {
			gs.Min = int(g)
		}
		if int(g) > gs.Max {
			gs.Max = int(g)
		}
	}
	// The stats calls cannot fail on a nonempty slice.
	gs.Mean, _ = stats.Mean(gaps)
	gs.Median, _ = stats.Median(gaps)
	gs.StdDev, _ = stats.StandardDeviation(gaps)
	return gs
}

// Capacity returns the largest whole-unit payload, in bytes, whose token
// string does not outnumber the carrier's runes. Past that point the mix
// holds more marker than carrier and stops looking like the carrier.
func Capacity(carrier string) int {
	return utf8.RuneCountInString(carrier) / BitsPerUnit
}
