package romaji

import "fmt"

const absentSpellings = 0xFF
const maxSpellings = absentSpellings - 1
const initialSpellingSlots = 2 // include slot 0 + root slot

// spellingStore keeps the alternatives of every syllable directly indexed by
// trie state. Spellings of all syllables share one flat slice; a slot
// records the offset and count of its run.
type spellingStore struct {
	count     []uint8 // per slot; absentSpellings if the state is no syllable
	offset    []int32 // per slot, into spellings
	spellings []string
}

func newSpellingStore(capacity int) *spellingStore {
	s := &spellingStore{
		count:     make([]uint8, initialSpellingSlots),
		offset:    make([]int32, initialSpellingSlots),
		spellings: make([]string, 0, capacity),
	}
	for i := range s.count {
		s.count[i] = absentSpellings
	}
	return s
}

func checkSpellings(alternatives []string) error {
	if len(alternatives) == 0 {
		return fmt.Errorf("empty alternatives")
	}
	if len(alternatives) > maxSpellings {
		return fmt.Errorf("too many alternatives: %d", len(alternatives))
	}
	for i, a := range alternatives {
		if a == "" {
			return fmt.Errorf("empty spelling at index %d", i)
		}
	}
	return nil
}

func (s *spellingStore) ensure(pos int) {
	if pos < len(s.count) {
		return
	}
	grow := pos + 1 - len(s.count)
	old := len(s.count)
	s.count = append(s.count, make([]uint8, grow)...)
	s.offset = append(s.offset, make([]int32, grow)...)
	for i := old; i < len(s.count); i++ {
		s.count[i] = absentSpellings
	}
}

// Put stores the alternatives for trie state pos, replacing earlier ones.
// A replaced run stays in the flat slice unreferenced.
func (s *spellingStore) Put(pos int, alternatives []string) error {
	if pos <= 0 {
		return fmt.Errorf("invalid trie position: %d", pos)
	}
	if err := checkSpellings(alternatives); err != nil {
		return err
	}
	s.ensure(pos)
	s.offset[pos] = int32(len(s.spellings))
	s.count[pos] = uint8(len(alternatives))
	s.spellings = append(s.spellings, alternatives...)
	return nil
}

// Get returns the alternatives at trie state pos. The result aliases the
// store and must not be modified.
func (s *spellingStore) Get(pos int) ([]string, bool) {
	if pos <= 0 || pos >= len(s.count) {
		return nil, false
	}
	n := s.count[pos]
	if n == absentSpellings {
		return nil, false
	}
	off := int(s.offset[pos])
	return s.spellings[off : off+int(n) : off+int(n)], true
}
