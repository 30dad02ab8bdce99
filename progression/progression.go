// Package progression reconstructs the sequence of simultaneously sounding
// note sets from a Standard MIDI File, so a whole performance can be run
// through the analyzer offline.
package progression

import (
	"sort"
	"time"

	"gitlab.com/gomidi/midi/v2/smf"
)

// Segment is one span of the file during which a fixed set of notes sounds.
type Segment struct {
	Start time.Duration
	Notes []int // ascending MIDI note numbers
}

type reducedEvent struct {
	microsec int64
	note     uint8
	off      bool
}

// FromSMF flattens all tracks into note-on/off events, sweeps them in time
// order, and emits a segment each time the held set changes to a different
// non-empty set.
func FromSMF(s *smf.SMF) []Segment {
	var events []reducedEvent

	for _, track := range s.Tracks {
		var absTicks int64
		for _, event := range track {
			absTicks += int64(event.Delta)
			var channel, key, velocity uint8
			switch {
			case event.Message.GetNoteStart(&channel, &key, &velocity):
				events = append(events, reducedEvent{microsec: s.TimeAt(absTicks), note: key})
			case event.Message.GetNoteEnd(&channel, &key):
				events = append(events, reducedEvent{microsec: s.TimeAt(absTicks), note: key, off: true})
			}
		}
	}

	// Releases sort before presses at the same instant so retriggered
	// notes don't register as a gap.
	sort.SliceStable(events, func(i, j int) bool {
		if events[i].microsec != events[j].microsec {
			return events[i].microsec < events[j].microsec
		}
		return events[i].off && !events[j].off
	})

	var segments []Segment
	pressed := make(map[uint8]bool)

	for i, ev := range events {
		if ev.off {
			delete(pressed, ev.note)
		} else {
			pressed[ev.note] = true
		}

		// apply every event at this instant before snapshotting
		if i+1 < len(events) && events[i+1].microsec == ev.microsec {
			continue
		}

		notes := heldNotes(pressed)
		if len(notes) == 0 {
			continue
		}
		if len(segments) > 0 && equalNotes(segments[len(segments)-1].Notes, notes) {
			continue
		}
		segments = append(segments, Segment{
			Start: time.Duration(ev.microsec) * time.Microsecond,
			Notes: notes,
		})
	}

	return segments
}

func heldNotes(pressed map[uint8]bool) []int {
	notes := make([]int, 0, len(pressed))
	for n := range pressed {
		notes = append(notes, int(n))
	}
	sort.Ints(notes)
	return notes
}

func equalNotes(a, b []int) bool {
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
