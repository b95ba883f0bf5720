package romaji

// keyIterator walks successive prefix states for one key.
type keyIterator interface {
	Next(symbol uint16) int
}

type keyTrieStats struct {
	Backend    string
	UsedSlots  int
	TotalSlots int
	MaxStateID int
}

func (s keyTrieStats) FillRatio() float64 {
	if s.TotalSlots == 0 {
		return 0
	}
	return float64(s.UsedSlots) / float64(s.TotalSlots)
}

// keyTrie is the internal backend abstraction for syllable-key storage.
//
// Positions handed out before Freeze are temporary and must be translated
// with ResolvePosition afterwards.
type keyTrie interface {
	EncodeKey(s string) ([]uint16, bool)
	EncodeRunes(rs []rune) []uint16
	AllocPositionForKey(key []uint16) int
	ResolvePosition(pos int) int
	Freeze()
	Iterator() keyIterator
	Stats() keyTrieStats
}
