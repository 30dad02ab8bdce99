package midi

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNoteStateApply(t *testing.T) {
	assert := assert.New(t)
	st := NewNoteState()

	assert.Nil(st.Notes())
	assert.Equal(0, st.Len())

	st.Apply(NoteEvent{Note: 64, Velocity: 100, On: true})
	st.Apply(NoteEvent{Note: 60, Velocity: 100, On: true})
	st.Apply(NoteEvent{Note: 67, Velocity: 100, On: true})

	// snapshot is sorted by pitch regardless of arrival order
	assert.Equal([]int{60, 64, 67}, st.Notes())
	assert.Equal(3, st.Len())

	st.Apply(NoteEvent{Note: 64, On: false})
	assert.Equal([]int{60, 67}, st.Notes())

	// releasing a note that is not held is a no-op
	st.Apply(NoteEvent{Note: 50, On: false})
	assert.Equal([]int{60, 67}, st.Notes())
}

func TestNoteStateRepeatedPress(t *testing.T) {
	st := NewNoteState()
	st.Apply(NoteEvent{Note: 60, On: true})
	st.Apply(NoteEvent{Note: 60, On: true})
	assert.Equal(t, 1, st.Len())

	st.Apply(NoteEvent{Note: 60, On: false})
	assert.Equal(t, 0, st.Len())
}

func TestNoteStateClear(t *testing.T) {
	st := NewNoteState()
	st.Apply(NoteEvent{Note: 60, On: true})
	st.Apply(NoteEvent{Note: 127, On: true})
	st.Apply(NoteEvent{Note: 0, On: true})
	assert.Equal(t, []int{0, 60, 127}, st.Notes())

	st.Clear()
	assert.Nil(t, st.Notes())
	assert.Equal(t, 0, st.Len())
}

func TestNoteStateConcurrentApply(t *testing.T) {
	st := NewNoteState()

	var wg sync.WaitGroup
	for n := 0; n < 128; n++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			st.Apply(NoteEvent{Note: uint8(n), On: true})
		}(n)
	}
	wg.Wait()

	assert.Equal(t, 128, st.Len())
}
