package midi

// NoteEvent is one decoded key press or release from a controller.
// A note-on with velocity 0 arrives as a release.
type NoteEvent struct {
	Note     uint8
	Velocity uint8
	Channel  uint8
	On       bool
}
