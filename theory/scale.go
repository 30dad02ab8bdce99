package theory

import "strings"

// Chromatic distance from tonic -> scale degree 1-7, or -1 when the pitch
// class is not in the scale.
var majorDegrees = [12]int{1, -1, 2, -1, 3, 4, -1, 5, -1, 6, -1, 7}
var minorDegrees = [12]int{1, -1, 2, 3, -1, 4, -1, 5, 6, -1, 7, -1} // natural minor

// Scale steps in semitones from the tonic, degree 1 first.
var majorSteps = [7]int{0, 2, 4, 5, 7, 9, 11}
var minorSteps = [7]int{0, 2, 3, 5, 7, 8, 10}

var majorFunctions = [8]string{"", "Tonic", "Supertonic", "Mediant", "Subdominant", "Dominant", "Submediant", "Leading Tone"}
var minorFunctions = [8]string{"", "Tonic", "Supertonic", "Mediant", "Subdominant", "Dominant", "Submediant", "Subtonic"}

var majorRomans = [8]string{"", "I", "ii", "iii", "IV", "V", "vi", "vii°"}
var minorRomans = [8]string{"", "i", "ii°", "♭III", "iv", "v", "♭VI", "♭VII"}

// ScaleDegree maps a pitch class to its diatonic degree 1-7 in the key, or
// -1 when the pitch class is chromatic to the scale.
func ScaleDegree(pc int, key KeySignature) int {
	dist := ((pc - key.Tonic) + 12) % 12
	if key.Mode == Major {
		return majorDegrees[dist]
	}
	return minorDegrees[dist]
}

// DegreeNote returns the pitch class of scale degree 1-7 in the key.
func DegreeNote(degree int, key KeySignature) int {
	if key.Mode == Major {
		return (key.Tonic + majorSteps[degree-1]) % 12
	}
	return (key.Tonic + minorSteps[degree-1]) % 12
}

// FunctionName returns the functional label for a scale degree, or
// "Non-diatonic" when the degree is outside 1-7.
func FunctionName(degree int, key KeySignature) string {
	if degree < 1 || degree > 7 {
		return "Non-diatonic"
	}
	if key.Mode == Major {
		return majorFunctions[degree]
	}
	return minorFunctions[degree]
}

// BaseRoman returns the Roman numeral conventionally written at a scale
// degree: I ii iii IV V vi vii° in major, i ii° ♭III iv v ♭VI ♭VII in
// minor. Returns "?" outside 1-7.
func BaseRoman(degree int, key KeySignature) string {
	if degree < 1 || degree > 7 {
		return "?"
	}
	if key.Mode == Major {
		return majorRomans[degree]
	}
	return minorRomans[degree]
}

// RomanForChord returns the Roman numeral for a chord rooted at a scale
// degree, with case and symbols adjusted to the actual quality: a
// minor-quality chord on a major degree is written lowercase (and vice
// versa), a half-diminished seventh drops the ° mark, and in minor the
// raised-leading-tone dominant is written "V". Returns "?" outside 1-7.
func RomanForChord(degree int, q Quality, key KeySignature) string {
	if degree < 1 || degree > 7 {
		return "?"
	}

	if key.Mode == Major {
		switch degree {
		case 1, 4, 5:
			if q.MinorFamily() {
				return strings.ToLower(majorRomans[degree])
			}
		case 2, 3, 6:
			if q.MajorFamily() {
				return strings.ToUpper(majorRomans[degree])
			}
		case 7:
			if q == HalfDim7 {
				return "vii"
			}
		}
		return majorRomans[degree]
	}

	switch degree {
	case 5:
		if q == Maj || q == Dom7 {
			return "V"
		}
	case 2:
		if q != Dim && q != Dim7 {
			return "ii"
		}
	}
	return minorRomans[degree]
}

// ChordDiatonic reports whether a chord with the given root pitch class and
// quality belongs to the key: the root must sit on a scale degree and the
// quality must match the family tonal convention expects there. In minor,
// degree 5 also accepts major and dominant-seventh chords, the raised
// leading-tone dominant.
func ChordDiatonic(rootPC int, q Quality, key KeySignature) bool {
	degree := ScaleDegree(rootPC, key)
	if degree == -1 {
		return false
	}

	if key.Mode == Major {
		switch degree {
		case 1, 4, 5:
			return q.MajorFamily()
		case 2, 3, 6:
			return q.MinorFamily()
		case 7:
			return q.DimFamily()
		}
	} else {
		switch degree {
		case 1, 4, 5:
			if q.MinorFamily() {
				return true
			}
			return degree == 5 && (q == Maj || q == Dom7)
		case 3, 6, 7:
			return q.MajorFamily()
		case 2:
			return q.DimFamily()
		}
	}

	return false
}

// AccidentalNotes returns the notes whose pitch classes fall outside the
// key's diatonic set. Minor keys also admit the raised 7th so the
// harmonic-minor dominant is not flagged.
func AccidentalNotes(notes []int, key KeySignature) []int {
	var diatonic [12]bool
	if key.Mode == Major {
		for _, step := range majorSteps {
			diatonic[(key.Tonic+step)%12] = true
		}
	} else {
		for _, step := range minorSteps {
			diatonic[(key.Tonic+step)%12] = true
		}
		diatonic[(key.Tonic+11)%12] = true
	}

	var accidentals []int
	for _, note := range notes {
		if !diatonic[PitchClass(note)] {
			accidentals = append(accidentals, note)
		}
	}
	return accidentals
}
