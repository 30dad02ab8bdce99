package theory

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatternsStartAtRootAndAscend(t *testing.T) {
	for _, p := range Patterns() {
		assert.NotEmptyf(t, p.Quality.String(), "quality %d has no tag", p.Quality)
		assert.Equalf(t, 0, p.Intervals[0], "%s does not start at the root", p.Quality)
		for i := 1; i < len(p.Intervals); i++ {
			assert.Greaterf(t, p.Intervals[i], p.Intervals[i-1], "%s intervals not ascending", p.Quality)
		}
	}
}

func TestAug7DeclaredBeforeItsEnharmonicTwin(t *testing.T) {
	// aug7 and 7#5 share {0,4,8,10}; declaration order decides the match
	augIdx, altIdx := -1, -1
	for i, p := range Patterns() {
		switch p.Quality {
		case Aug7:
			augIdx = i
		case Dom7Sharp5:
			altIdx = i
		}
	}
	assert.NotEqual(t, -1, augIdx)
	assert.NotEqual(t, -1, altIdx)
	assert.Less(t, augIdx, altIdx)
}

func TestSeventhFamilyMatchesTagConvention(t *testing.T) {
	// the seventh family is exactly the qualities whose tag names a
	// seventh, plus the diminished sevenths
	for _, p := range Patterns() {
		q := p.Quality
		want := strings.Contains(q.String(), "7") || q == Dim7 || q == HalfDim7
		assert.Equalf(t, want, q.SeventhFamily(), "quality %s", q)
	}
}

func TestDominantCapableQualities(t *testing.T) {
	assert := assert.New(t)
	assert.True(Maj.Dominant())
	assert.True(Dom7.Dominant())
	assert.True(Dom9.Dominant())
	assert.True(Maj7.Dominant())
	assert.False(Min7.Dominant())
	assert.False(Dim7.Dominant())
	assert.False(Sus4.Dominant())
}
