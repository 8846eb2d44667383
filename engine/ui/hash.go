package ui

// ID identifies a window or widget across frames. It is a 32-bit FNV-1a hash
// of a label, optionally chained from a parent ID so equal labels in
// different windows resolve to different ids. Collisions are not detected.
type ID uint32

const (
	fnvOffset ID = 2166136261
	fnvPrime  ID = 16777619
)

// Hash returns the id of text. A zero seed starts a fresh hash; any other
// seed continues from it.
func Hash(text string, seed ID) ID {
	h := seed
	if h == 0 {
		h = fnvOffset
	}
	for i := 0; i < len(text); i++ {
		h = (h ^ ID(text[i])) * fnvPrime
	}
	return h
}

// HashIndex chains the little-endian bytes of i onto seed.
func HashIndex(i int, seed ID) ID {
	h := seed
	if h == 0 {
		h = fnvOffset
	}
	v := uint32(i)
	for n := 0; n < 4; n++ {
		h = (h ^ ID(byte(v))) * fnvPrime
		v >>= 8
	}
	return h
}
