package analyzer

// Result is the full analysis of one held-note set against one key. It is
// a plain value produced fresh per call; the zero Result means "nothing to
// display" (empty or single-note input).
type Result struct {
	ChordName         string `json:"chordName"`
	RomanNumeral      string `json:"romanNumeral"`
	FunctionName      string `json:"functionName"`
	NonDiatonic       bool   `json:"nonDiatonic"`
	SecondaryDominant bool   `json:"secondaryDominant"`
	SecondaryTarget   string `json:"secondaryTarget,omitempty"`
	InversionFigure   string `json:"inversionFigure,omitempty"`
	AccidentalNotes   []int  `json:"accidentalNotes,omitempty"`
	BassNote          int    `json:"bassNote"`
	RootNote          int    `json:"rootNote"`
}

// Empty reports whether the result carries nothing to display.
func (r Result) Empty() bool {
	return r.ChordName == "" && r.RomanNumeral == ""
}
