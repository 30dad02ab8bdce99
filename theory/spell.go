package theory

import "fmt"

var sharpNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
var flatNames = [12]string{"C", "D♭", "D", "E♭", "E", "F", "G♭", "G", "A♭", "A", "B♭", "B"}

// PitchClass reduces a MIDI note to its chroma value 0-11.
func PitchClass(note int) int {
	return ((note % 12) + 12) % 12
}

// Octave returns the MIDI-convention octave number, so note 60 is octave 4.
func Octave(note int) int {
	return note/12 - 1
}

// SpellNote names a MIDI note in the context of a key: pitch classes the
// key spells sharp use the sharp table, flat-spelled classes use the flat
// table, anything else defaults to the sharp-preferred name. The octave
// number is appended, e.g. 60 in C Major -> "C4", 61 -> "C#4".
func SpellNote(note int, key KeySignature) string {
	pc := PitchClass(note)

	name := ""
	for _, sharp := range key.Sharps {
		if pc == sharp {
			name = sharpNames[pc]
			break
		}
	}
	if name == "" {
		for _, flat := range key.Flats {
			if pc == flat {
				name = flatNames[pc]
				break
			}
		}
	}
	if name == "" {
		name = sharpNames[pc]
	}

	return fmt.Sprintf("%s%d", name, Octave(note))
}

// NoteName names a MIDI note without key context, always sharp-preferred.
func NoteName(note int) string {
	return fmt.Sprintf("%s%d", sharpNames[PitchClass(note)], Octave(note))
}
