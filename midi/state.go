package midi

import "sync"

// NoteState tracks the set of currently held notes. It is the seam between
// the controller's event goroutine and whoever consumes the snapshot, so
// all access is mutex-guarded.
type NoteState struct {
	mu   sync.Mutex
	held [128]bool
}

// NewNoteState returns an empty tracker.
func NewNoteState() *NoteState {
	return &NoteState{}
}

// Apply folds one note event into the held set.
func (s *NoteState) Apply(ev NoteEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.held[ev.Note] = ev.On
}

// Notes returns the held notes ascending by pitch.
func (s *NoteState) Notes() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var notes []int
	for n, on := range s.held {
		if on {
			notes = append(notes, n)
		}
	}
	return notes
}

// Len returns the number of held notes.
func (s *NoteState) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	count := 0
	for _, on := range s.held {
		if on {
			count++
		}
	}
	return count
}

// Clear releases every note, used when a device disconnects.
func (s *NoteState) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.held = [128]bool{}
}
