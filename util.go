package bitnum

type RandSource interface {
	Uint64() uint64
}

// RandUint generates a random Uint stored at exactly the given width from an
// external source. The leading digits are as random as the rest, so the
// value's BitLen is usually, but not always, the full width.
func RandUint(source RandSource, width int) *Uint {
	if width < 1 {
		panic("bitnum: random width out of range")
	}
	u := &Uint{width: width, words: make([]uint64, wordsFor(width))}
	for i := range u.words {
		u.words[i] = source.Uint64()
	}
	u.clearSpare()
	return u
}
