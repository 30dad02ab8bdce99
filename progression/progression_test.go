package progression

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const quarter = 960 // ticks per quarter note

func newSong(tracks ...smf.Track) *smf.SMF {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(quarter)
	for _, tr := range tracks {
		s.Add(tr)
	}
	return s
}

func TestFromSMFChordChanges(t *testing.T) {
	assert := assert.New(t)

	var tr smf.Track
	tr.Add(0, smf.MetaTempo(120))
	tr.Add(0, midi.NoteOn(0, 60, 100))
	tr.Add(0, midi.NoteOn(0, 64, 100))
	tr.Add(0, midi.NoteOn(0, 67, 100))
	tr.Add(quarter, midi.NoteOff(0, 60))
	tr.Add(0, midi.NoteOff(0, 64))
	tr.Add(0, midi.NoteOff(0, 67))
	tr.Add(0, midi.NoteOn(0, 65, 100))
	tr.Add(0, midi.NoteOn(0, 69, 100))
	tr.Add(0, midi.NoteOn(0, 72, 100))
	tr.Add(quarter, midi.NoteOff(0, 65))
	tr.Add(0, midi.NoteOff(0, 69))
	tr.Add(0, midi.NoteOff(0, 72))
	tr.Close(0)

	segments := FromSMF(newSong(tr))

	// one quarter at 120 BPM is half a second
	assert.Len(segments, 2)
	assert.Equal(time.Duration(0), segments[0].Start)
	assert.Equal([]int{60, 64, 67}, segments[0].Notes)
	assert.Equal(500*time.Millisecond, segments[1].Start)
	assert.Equal([]int{65, 69, 72}, segments[1].Notes)
}

func TestFromSMFRetriggerIsNotAChange(t *testing.T) {
	var tr smf.Track
	tr.Add(0, smf.MetaTempo(120))
	tr.Add(0, midi.NoteOn(0, 60, 100))
	tr.Add(0, midi.NoteOn(0, 64, 100))
	// retrigger the root: off and on land on the same tick
	tr.Add(quarter, midi.NoteOff(0, 60))
	tr.Add(0, midi.NoteOn(0, 60, 100))
	tr.Add(quarter, midi.NoteOff(0, 60))
	tr.Add(0, midi.NoteOff(0, 64))
	tr.Close(0)

	segments := FromSMF(newSong(tr))

	assert.Len(t, segments, 1)
	assert.Equal(t, []int{60, 64}, segments[0].Notes)
}

func TestFromSMFMergesTracks(t *testing.T) {
	assert := assert.New(t)

	var bass smf.Track
	bass.Add(0, smf.MetaTempo(120))
	bass.Add(0, midi.NoteOn(0, 36, 100))
	bass.Add(2*quarter, midi.NoteOff(0, 36))
	bass.Close(0)

	var lead smf.Track
	lead.Add(quarter, midi.NoteOn(1, 60, 100))
	lead.Add(0, midi.NoteOn(1, 64, 100))
	lead.Add(quarter, midi.NoteOff(1, 60))
	lead.Add(0, midi.NoteOff(1, 64))
	lead.Close(0)

	segments := FromSMF(newSong(bass, lead))

	assert.Len(segments, 2)
	assert.Equal([]int{36}, segments[0].Notes)
	assert.Equal(500*time.Millisecond, segments[1].Start)
	assert.Equal([]int{36, 60, 64}, segments[1].Notes)
}

func TestFromSMFEmpty(t *testing.T) {
	var tr smf.Track
	tr.Close(0)
	assert.Empty(t, FromSMF(newSong(tr)))
}
