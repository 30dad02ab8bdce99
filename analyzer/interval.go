package analyzer

import "fmt"

var intervalNames = map[int]string{
	1:  "minor 2nd",
	2:  "major 2nd",
	3:  "minor 3rd",
	4:  "major 3rd",
	5:  "perfect 4th",
	6:  "tritone",
	7:  "perfect 5th",
	8:  "minor 6th",
	9:  "major 6th",
	10: "minor 7th",
	11: "major 7th",
	12: "octave",
}

// IntervalName labels the distance in semitones between two notes. Compound
// intervals beyond the octave fall back to a raw semitone count.
func IntervalName(semitones int) string {
	if name, ok := intervalNames[semitones]; ok {
		return name
	}
	return fmt.Sprintf("+%d semitones", semitones)
}
