package theory

// ChordPattern pairs a quality with its interval set: semitone offsets from
// an assumed root, ascending, first element always 0. Several extended
// patterns (maj9, add9, m9, 9, 11, 13) carry compound offsets of 12 or
// more; the matcher reduces played intervals mod 12, so those entries never
// match a live voicing. That mirrors the vocabulary as published and is
// kept as-is rather than collapsing the extensions onto simpler chords.
type ChordPattern struct {
	Quality   Quality
	Intervals []int
}

var chordPatterns = []ChordPattern{
	// Major chords
	{Maj, []int{0, 4, 7}},
	{Maj7, []int{0, 4, 7, 11}},
	{Maj9, []int{0, 4, 7, 11, 14}},
	{Sixth, []int{0, 4, 7, 9}},
	{Add9, []int{0, 4, 7, 14}},

	// Minor chords
	{Min, []int{0, 3, 7}},
	{Min7, []int{0, 3, 7, 10}},
	{Min9, []int{0, 3, 7, 10, 14}},
	{Min6, []int{0, 3, 7, 9}},
	{MinMaj7, []int{0, 3, 7, 11}},

	// Dominant chords
	{Dom7, []int{0, 4, 7, 10}},
	{Dom9, []int{0, 4, 7, 10, 14}},
	{Dom11, []int{0, 4, 7, 10, 14, 17}},
	{Dom13, []int{0, 4, 7, 10, 14, 17, 21}},

	// Diminished chords
	{Dim, []int{0, 3, 6}},
	{Dim7, []int{0, 3, 6, 9}},
	{HalfDim7, []int{0, 3, 6, 10}},

	// Augmented chords
	{Aug, []int{0, 4, 8}},
	{Aug7, []int{0, 4, 8, 10}},

	// Suspended chords
	{Sus2, []int{0, 2, 7}},
	{Sus4, []int{0, 5, 7}},
	{Dom7Sus2, []int{0, 2, 7, 10}},
	{Dom7Sus4, []int{0, 5, 7, 10}},

	// Altered dominants
	{Dom7Flat5, []int{0, 4, 6, 10}},
	{Dom7Sharp5, []int{0, 4, 8, 10}},
	{Dom7Flat9, []int{0, 4, 7, 10, 13}},
	{Dom7Sharp9, []int{0, 4, 7, 10, 15}},
	{Dom7Sharp11, []int{0, 4, 7, 10, 18}},
}

// Patterns returns the chord vocabulary in its fixed order. When two
// patterns share an interval set (aug7 and 7#5), the earlier entry wins
// during matching. Callers must not mutate the result.
func Patterns() []ChordPattern {
	return chordPatterns
}
