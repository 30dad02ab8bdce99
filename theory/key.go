package theory

// Mode distinguishes major from natural-minor keys.
type Mode int

const (
	Major Mode = iota
	Minor
)

func (m Mode) String() string {
	if m == Minor {
		return "minor"
	}
	return "Major"
}

// KeySignature describes one key: its tonic pitch class and which pitch
// classes the key spells with sharps or flats. A pitch class in neither
// list falls back to the sharp-preferred default spelling.
type KeySignature struct {
	Name   string
	Tonic  int // pitch class 0-11
	Mode   Mode
	Sharps []int // pitch classes spelled sharp in this key
	Flats  []int // pitch classes spelled flat in this key
}

// Catalog is the fixed set of supported key signatures, in circle-of-fifths
// order: 15 major keys then 15 minor keys. Built once and never mutated.
type Catalog struct {
	keys []KeySignature
}

// NewCatalog builds the key-signature catalog.
func NewCatalog() *Catalog {
	return &Catalog{keys: []KeySignature{
		// Major keys, sharps
		{Name: "C Major", Tonic: 0, Mode: Major},
		{Name: "G Major", Tonic: 7, Mode: Major, Sharps: []int{6}},
		{Name: "D Major", Tonic: 2, Mode: Major, Sharps: []int{6, 1}},
		{Name: "A Major", Tonic: 9, Mode: Major, Sharps: []int{6, 1, 8}},
		{Name: "E Major", Tonic: 4, Mode: Major, Sharps: []int{6, 1, 8, 3}},
		{Name: "B Major", Tonic: 11, Mode: Major, Sharps: []int{6, 1, 8, 3, 10}},
		{Name: "F# Major", Tonic: 6, Mode: Major, Sharps: []int{6, 1, 8, 3, 10, 5}},
		{Name: "C# Major", Tonic: 1, Mode: Major, Sharps: []int{0, 6, 1, 8, 3, 10, 5}},

		// Major keys, flats
		{Name: "F Major", Tonic: 5, Mode: Major, Flats: []int{10}},
		{Name: "B♭ Major", Tonic: 10, Mode: Major, Flats: []int{10, 3}},
		{Name: "E♭ Major", Tonic: 3, Mode: Major, Flats: []int{10, 3, 8}},
		{Name: "A♭ Major", Tonic: 8, Mode: Major, Flats: []int{10, 3, 8, 1}},
		{Name: "D♭ Major", Tonic: 1, Mode: Major, Flats: []int{10, 3, 8, 1, 6}},
		{Name: "G♭ Major", Tonic: 6, Mode: Major, Flats: []int{10, 3, 8, 1, 6, 11}},
		{Name: "C♭ Major", Tonic: 11, Mode: Major, Flats: []int{0, 10, 3, 8, 1, 6, 11}},

		// Minor keys, sharps
		{Name: "A minor", Tonic: 9, Mode: Minor},
		{Name: "E minor", Tonic: 4, Mode: Minor, Sharps: []int{6}},
		{Name: "B minor", Tonic: 11, Mode: Minor, Sharps: []int{6, 1}},
		{Name: "F# minor", Tonic: 6, Mode: Minor, Sharps: []int{6, 1, 8}},
		{Name: "C# minor", Tonic: 1, Mode: Minor, Sharps: []int{6, 1, 8, 3}},
		{Name: "G# minor", Tonic: 8, Mode: Minor, Sharps: []int{6, 1, 8, 3, 10}},
		{Name: "D# minor", Tonic: 3, Mode: Minor, Sharps: []int{6, 1, 8, 3, 10, 5}},
		{Name: "A# minor", Tonic: 10, Mode: Minor, Sharps: []int{0, 6, 1, 8, 3, 10, 5}},

		// Minor keys, flats
		{Name: "D minor", Tonic: 2, Mode: Minor, Flats: []int{10}},
		{Name: "G minor", Tonic: 7, Mode: Minor, Flats: []int{10, 3}},
		{Name: "C minor", Tonic: 0, Mode: Minor, Flats: []int{10, 3, 8}},
		{Name: "F minor", Tonic: 5, Mode: Minor, Flats: []int{10, 3, 8, 1}},
		{Name: "B♭ minor", Tonic: 10, Mode: Minor, Flats: []int{10, 3, 8, 1, 6}},
		{Name: "E♭ minor", Tonic: 3, Mode: Minor, Flats: []int{10, 3, 8, 1, 6, 11}},
		{Name: "A♭ minor", Tonic: 8, Mode: Minor, Flats: []int{0, 10, 3, 8, 1, 6, 11}},
	}}
}

// Count returns the number of keys in the catalog.
func (c *Catalog) Count() int {
	return len(c.keys)
}

// Get returns the key at index. An out-of-range index returns the first
// entry (C Major) rather than failing.
func (c *Catalog) Get(index int) KeySignature {
	if index < 0 || index >= len(c.keys) {
		return c.keys[0]
	}
	return c.keys[index]
}

// All returns the catalog in order. Callers must not mutate the result.
func (c *Catalog) All() []KeySignature {
	return c.keys
}

// IndexOf returns the catalog index of the key with the given name, or -1.
func (c *Catalog) IndexOf(name string) int {
	for i, k := range c.keys {
		if k.Name == name {
			return i
		}
	}
	return -1
}
