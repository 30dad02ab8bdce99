package analyzer

import "chordscope/theory"

// Roman numerals used for the target of a V/x relationship. These name the
// triad each scale degree carries natively, independent of the functional
// labels used elsewhere.
var majorTargets = [8]string{"", "I", "ii", "iii", "IV", "V", "vi", "vii°"}
var minorTargets = [8]string{"", "i", "ii°", "♭III", "iv", "v", "♭VI", "♭VII"}

// secondaryTarget looks for a V-of-x relationship: a major or dominant
// quality chord whose root sits a perfect fifth above some diatonic scale
// degree. Degrees are tested in ascending order and the first hit wins.
// Returns the target degree's Roman numeral, or "" when the chord is not a
// secondary dominant.
func secondaryTarget(rootPC int, q theory.Quality, key theory.KeySignature) string {
	if !q.Dominant() {
		return ""
	}

	for degree := 1; degree <= 7; degree++ {
		if rootPC != (theory.DegreeNote(degree, key)+7)%12 {
			continue
		}
		if key.Mode == theory.Major {
			return majorTargets[degree]
		}
		return minorTargets[degree]
	}

	return ""
}
