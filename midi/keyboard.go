package midi

import (
	"fmt"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// KeyboardController handles a standard MIDI keyboard input port and
// delivers decoded note events on a channel. The gomidi callback runs on
// the driver's thread, so sends are non-blocking: if the consumer falls
// behind, events are dropped rather than stalling the hardware callback.
type KeyboardController struct {
	id       string
	inPort   drivers.In
	stopFunc func()

	noteChan chan NoteEvent
}

// NewKeyboardController opens the input port and starts listening.
func NewKeyboardController(id string, inPort drivers.In) (*KeyboardController, error) {
	kb := &KeyboardController{
		id:       id,
		inPort:   inPort,
		noteChan: make(chan NoteEvent, 64),
	}

	stop, err := gomidi.ListenTo(inPort, func(msg gomidi.Message, timestampms int32) {
		var channel, note, velocity uint8
		switch {
		case msg.GetNoteStart(&channel, &note, &velocity):
			select {
			case kb.noteChan <- NoteEvent{Note: note, Velocity: velocity, Channel: channel, On: true}:
			default:
			}
		case msg.GetNoteEnd(&channel, &note):
			select {
			case kb.noteChan <- NoteEvent{Note: note, Channel: channel, On: false}:
			default:
			}
		}
	})
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	kb.stopFunc = stop

	return kb, nil
}

func (kb *KeyboardController) ID() string {
	return kb.id
}

// NoteEvents returns the channel of decoded note on/off events.
func (kb *KeyboardController) NoteEvents() <-chan NoteEvent {
	return kb.noteChan
}

func (kb *KeyboardController) Close() error {
	if kb.stopFunc != nil {
		kb.stopFunc()
	}
	close(kb.noteChan)
	return nil
}
