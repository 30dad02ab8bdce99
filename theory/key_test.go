package theory

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCatalogHasThirtyKeys(t *testing.T) {
	c := NewCatalog()
	assert.Equal(t, 30, c.Count())
	assert.Len(t, c.All(), 30)
}

func TestCatalogOrder(t *testing.T) {
	assert := assert.New(t)
	c := NewCatalog()

	assert.Equal("C Major", c.Get(0).Name)
	assert.Equal("G Major", c.Get(1).Name)
	assert.Equal("A minor", c.Get(15).Name)
	assert.Equal("A♭ minor", c.Get(29).Name)
}

func TestOutOfRangeIndexFallsBackToCMajor(t *testing.T) {
	assert := assert.New(t)
	c := NewCatalog()

	assert.Equal("C Major", c.Get(-1).Name)
	assert.Equal("C Major", c.Get(30).Name)
	assert.Equal("C Major", c.Get(1000).Name)
}

func TestSharpAndFlatSetsAreDisjoint(t *testing.T) {
	c := NewCatalog()
	for _, key := range c.All() {
		flats := make(map[int]bool)
		for _, pc := range key.Flats {
			flats[pc] = true
		}
		for _, pc := range key.Sharps {
			assert.Falsef(t, flats[pc], "%s spells pitch class %d both sharp and flat", key.Name, pc)
		}
	}
}

func TestIndexOf(t *testing.T) {
	assert := assert.New(t)
	c := NewCatalog()

	assert.Equal(0, c.IndexOf("C Major"))
	assert.Equal(25, c.IndexOf("C minor"))
	assert.Equal(-1, c.IndexOf("H Major"))
}
