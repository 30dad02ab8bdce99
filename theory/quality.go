package theory

// Quality is a closed enumeration of chord qualities. The zero value is
// QualityNone, meaning "no chord identified".
type Quality int

const (
	QualityNone Quality = iota

	// Major family
	Maj
	Maj7
	Maj9
	Sixth
	Add9

	// Minor family
	Min
	Min7
	Min9
	Min6
	MinMaj7

	// Dominant family
	Dom7
	Dom9
	Dom11
	Dom13

	// Diminished family
	Dim
	Dim7
	HalfDim7

	// Augmented
	Aug
	Aug7

	// Suspended
	Sus2
	Sus4
	Dom7Sus2
	Dom7Sus4

	// Altered dominants
	Dom7Flat5
	Dom7Sharp5
	Dom7Flat9
	Dom7Sharp9
	Dom7Sharp11
)

var qualityTags = map[Quality]string{
	Maj:         "maj",
	Maj7:        "maj7",
	Maj9:        "maj9",
	Sixth:       "6",
	Add9:        "add9",
	Min:         "m",
	Min7:        "m7",
	Min9:        "m9",
	Min6:        "m6",
	MinMaj7:     "mMaj7",
	Dom7:        "7",
	Dom9:        "9",
	Dom11:       "11",
	Dom13:       "13",
	Dim:         "dim",
	Dim7:        "dim7",
	HalfDim7:    "ø7",
	Aug:         "aug",
	Aug7:        "aug7",
	Sus2:        "sus2",
	Sus4:        "sus4",
	Dom7Sus2:    "7sus2",
	Dom7Sus4:    "7sus4",
	Dom7Flat5:   "7♭5",
	Dom7Sharp5:  "7#5",
	Dom7Flat9:   "7♭9",
	Dom7Sharp9:  "7#9",
	Dom7Sharp11: "7#11",
}

// String returns the display tag appended to the root note name,
// e.g. Min7 renders "m7" so a D root shows "D m7".
func (q Quality) String() string {
	return qualityTags[q]
}

// SeventhFamily reports whether the chord carries a seventh, which decides
// between triad and seventh-chord inversion figures. Extended dominants
// (9, 11, 13) are not in the family: their tags carry no explicit seventh.
func (q Quality) SeventhFamily() bool {
	switch q {
	case Maj7, Min7, MinMaj7, Dom7, Dom7Sus2, Dom7Sus4, Aug7,
		Dom7Flat5, Dom7Sharp5, Dom7Flat9, Dom7Sharp9, Dom7Sharp11,
		Dim7, HalfDim7:
		return true
	}
	return false
}

// MajorFamily reports whether the quality counts as major for diatonic
// classification at degrees expecting a major chord.
func (q Quality) MajorFamily() bool {
	switch q {
	case Maj, Dom7, Maj7, Dom9, Sixth, Add9:
		return true
	}
	return false
}

// MinorFamily reports whether the quality counts as minor for diatonic
// classification at degrees expecting a minor chord.
func (q Quality) MinorFamily() bool {
	switch q {
	case Min, Min7, Min9, Min6, MinMaj7:
		return true
	}
	return false
}

// DimFamily reports whether the quality counts as diminished for diatonic
// classification at the leading-tone (major) or supertonic (minor) degree.
func (q Quality) DimFamily() bool {
	switch q {
	case Dim, Dim7, HalfDim7:
		return true
	}
	return false
}

// Dominant reports whether the chord can function as a dominant, the
// precondition for secondary-dominant detection.
func (q Quality) Dominant() bool {
	switch q {
	case Maj, Dom7, Dom9, Maj7:
		return true
	}
	return false
}
