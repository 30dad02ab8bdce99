// Package analyzer turns a set of simultaneously held MIDI notes into a
// key-aware harmonic analysis: chord identity, Roman numeral, inversion
// figure, and diatonic classification.
package analyzer

import (
	"fmt"
	"sort"

	"chordscope/theory"
)

// Analyzer is the analysis entry point. It is stateless apart from the
// immutable catalogs it reads, so one Analyzer may be shared across
// goroutines freely.
type Analyzer struct {
	catalog  *theory.Catalog
	patterns []theory.ChordPattern
}

// New builds an Analyzer over the given key catalog.
func New(catalog *theory.Catalog) *Analyzer {
	return &Analyzer{
		catalog:  catalog,
		patterns: theory.Patterns(),
	}
}

// Catalog returns the key catalog the analyzer was built with.
func (a *Analyzer) Catalog() *theory.Catalog {
	return a.catalog
}

// Analyze produces one Result for the held-note set in the given key.
// Input notes may arrive in any order; duplicates are tolerated. Every
// input has a defined output: empty and single-note sets yield the zero
// Result, two notes yield an interval name, three or more run the full
// chord pipeline.
func (a *Analyzer) Analyze(notes []int, key theory.KeySignature) Result {
	sorted := dedupSorted(notes)

	switch len(sorted) {
	case 0, 1:
		return Result{}
	case 2:
		return a.analyzeInterval(sorted[0], sorted[1], key)
	}
	return a.analyzeChord(sorted, key)
}

func (a *Analyzer) analyzeInterval(low, high int, key theory.KeySignature) Result {
	return Result{
		ChordName: theory.SpellNote(low, key) + " " + IntervalName(high-low),
		BassNote:  low,
		RootNote:  low,
	}
}

func (a *Analyzer) analyzeChord(notes []int, key theory.KeySignature) Result {
	res := Result{
		BassNote:        notes[0],
		RootNote:        notes[0],
		AccidentalNotes: theory.AccidentalNotes(notes, key),
	}
	if len(res.AccidentalNotes) > 0 {
		res.NonDiatonic = true
	}

	root, quality := a.matchPattern(notes)
	if quality == theory.QualityNone {
		res.ChordName = fmt.Sprintf("Cluster (%d notes)", len(notes))
		res.RomanNumeral = "?"
		return res
	}

	res.RootNote = root
	res.ChordName = theory.SpellNote(root, key) + " " + quality.String()
	if notes[0] != root {
		res.ChordName += "/" + theory.SpellNote(notes[0], key)
	}
	res.InversionFigure = inversionFigure(quality, res.BassNote, res.RootNote)

	rootPC := theory.PitchClass(root)
	degree := theory.ScaleDegree(rootPC, key)

	if !theory.ChordDiatonic(rootPC, quality, key) || res.NonDiatonic {
		res.NonDiatonic = true

		if target := secondaryTarget(rootPC, quality, key); target != "" {
			res.SecondaryDominant = true
			res.SecondaryTarget = target
			res.RomanNumeral = "V" + res.InversionFigure + "/" + target
			res.FunctionName = "Secondary Dominant"
			return res
		}

		if degree != -1 {
			res.RomanNumeral = theory.RomanForChord(degree, quality, key) + res.InversionFigure
		} else {
			res.RomanNumeral = "Non-diatonic" + res.InversionFigure
		}
		res.FunctionName = "Non-functional"
		return res
	}

	res.RomanNumeral = theory.RomanForChord(degree, quality, key) + res.InversionFigure
	res.FunctionName = theory.FunctionName(degree, key)
	return res
}

// matchPattern tries each held note as the chord root in ascending pitch
// order, reducing every note's distance from the candidate into an octave,
// and compares the sorted interval multiset against the pattern table. The
// first candidate root with any exact match wins; there is no scoring.
func (a *Analyzer) matchPattern(notes []int) (int, theory.Quality) {
	for _, root := range notes {
		intervals := make([]int, len(notes))
		for i, note := range notes {
			intervals[i] = ((note - root) % 12 + 12) % 12
		}
		sort.Ints(intervals)

		for _, p := range a.patterns {
			if intervalsEqual(intervals, p.Intervals) {
				return root, p.Quality
			}
		}
	}
	return notes[0], theory.QualityNone
}

func intervalsEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func dedupSorted(notes []int) []int {
	sorted := make([]int, len(notes))
	copy(sorted, notes)
	sort.Ints(sorted)

	out := sorted[:0]
	for i, n := range sorted {
		if i == 0 || n != sorted[i-1] {
			out = append(out, n)
		}
	}
	return out
}
