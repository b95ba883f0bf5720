package dat

// DAT is a frozen double-array trie over syllable keys.
//   - States are indices into Base/Check (0 is unused; Root is typically 1).
//   - Transition: t := Base[s] + c; valid if Check[t] == s; next state is t.
//   - c is a dense alphabet ID in [1..Sigma]. c==0 means "not in alphabet".
//
// The trie itself carries no payload. Clients associate data with states
// by indexing their own stores with the state number returned from a walk.
type DAT struct {
	// Root state index (commonly 1).
	Root uint32

	// Sigma is the size of the dense alphabet (maximum dense ID).
	Sigma uint16

	// Base and Check are the classic double-array.
	Base  []int32 // len == N
	Check []int32 // len == N

	// Alphabet maps BMP code points to dense IDs [0..Sigma].
	Alphabet PagedMap
}

// NStates returns number of allocated slots/states in the arrays.
func (d *DAT) NStates() int { return len(d.Base) }

// Transition returns (nextState, ok). dense must be in [1..Sigma].
func (d *DAT) Transition(state uint32, dense uint16) (uint32, bool) {
	if dense == 0 || int(state) >= len(d.Base) || int(state) >= len(d.Check) {
		return 0, false
	}
	t := d.Base[state] + int32(dense)
	if t <= 0 || int(t) >= len(d.Check) {
		return 0, false
	}
	if d.Check[t] != int32(state) {
		return 0, false
	}
	return uint32(t), true
}

// Dense maps a code point to a dense alphabet ID.
// Returns 0 if the code point is not in the alphabet or outside the BMP.
func (d *DAT) Dense(r rune) uint16 {
	if r < 0 || r > 0xFFFF {
		return 0
	}
	return d.Alphabet.Dense(uint16(r))
}
