package analyzer

import "chordscope/theory"

// inversionFigure derives the figured-bass glyphs from the bass/root
// relationship. Root position marks only seventh chords; inversions are
// keyed by the bass interval above the root reduced to an octave. A bass
// interval that fits no recognized inversion yields no figure.
func inversionFigure(q theory.Quality, bassNote, rootNote int) string {
	if bassNote == rootNote {
		switch {
		case q == theory.Dim7:
			return "°⁷"
		case q == theory.HalfDim7:
			return "ø⁷"
		case q.SeventhFamily():
			return "⁷"
		}
		return ""
	}

	bassInterval := (theory.PitchClass(bassNote) - theory.PitchClass(rootNote) + 12) % 12

	switch {
	case bassInterval == 3 || bassInterval == 4:
		// third in bass, first inversion
		if q.SeventhFamily() {
			return "⁶₅"
		}
		return "⁶"

	case bassInterval == 7 || (bassInterval == 6 && q == theory.Dim):
		// fifth in bass, second inversion
		if q.SeventhFamily() {
			return "₄³"
		}
		return "₆₄"

	case (bassInterval == 9 || bassInterval == 10 || bassInterval == 11) && q.SeventhFamily():
		// seventh in bass, third inversion
		return "₄₂"
	}

	return ""
}
