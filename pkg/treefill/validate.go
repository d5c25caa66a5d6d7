package treefill

import (
	"fmt"
	"math"
)

// Tolerances for the track consistency check. A stored impact parameter and
// the corresponding track-vector entry must agree to relTolerance relative,
// or absTolerance absolute when the stored value is near zero.
const (
	relTolerance = 1e-9
	absTolerance = 1e-15
)

// Discrepancy describes one field whose stored value disagrees with the
// track-parameter vector.
type Discrepancy struct {
	// Field is the name of the disagreeing impact parameter.
	Field string
	// Stored is the explicit impact-parameter field value.
	Stored float64
	// Fitted is the corresponding track-vector entry.
	Fitted float64
}

// String implements fmt.Stringer.
func (d Discrepancy) String() string {
	return fmt.Sprintf("%s: stored %v, fitted %v", d.Field, d.Stored, d.Fitted)
}

// CheckTrack verifies that a track record's explicit impact parameters agree
// with the corresponding entries of its 5-parameter track vector. It returns
// one Discrepancy per disagreeing field, or nil when the record is
// consistent.
//
// The writer runs this check on every converted track; by default a
// non-empty report fails the event (see WithStrictValidation).
func CheckTrack(t *Track) []Discrepancy {
	var report []Discrepancy
	if !agree(t.Zd, t.TrkPar[ParZ0]) {
		report = append(report, Discrepancy{Field: "Zd", Stored: t.Zd, Fitted: t.TrkPar[ParZ0]})
	}
	if !agree(t.Dxy, t.TrkPar[ParD0]) {
		report = append(report, Discrepancy{Field: "Dxy", Stored: t.Dxy, Fitted: t.TrkPar[ParD0]})
	}
	return report
}

// agree reports whether two quantities match within tolerance. The relative
// difference is taken against the stored value.
func agree(stored, fitted float64) bool {
	diff := stored - fitted
	if math.Abs(diff) < absTolerance {
		return true
	}
	return math.Abs(diff/stored) <= relTolerance
}
