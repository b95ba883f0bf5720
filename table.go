package romaji

import (
	"fmt"
	"io"
	"unicode/utf8"
)

// TableReader yields table entries one-by-one.
// It should return io.EOF when the stream is exhausted.
type TableReader interface {
	Next() (syllable string, alternatives []string, err error)
}

// Table maps syllables (one or two kana) to their accepted spellings.
//
// Syllable keys are compiled into a frozen double-array trie; spellings are
// stored in a compact store referenced by trie state. A Table is immutable
// once LoadTable returns and may be shared between goroutines.
type Table struct {
	keys       keyTrie
	spellings  *spellingStore
	size       int
	Identifier string // Identifies the table
}

// LoadTable compiles a table from a streaming, format-agnostic source.
//
// Syllables must consist of one or two runes from the BMP, and every entry
// needs at least one non-empty spelling. The first spelling is the preferred
// one. If a syllable occurs more than once, the later entry wins.
//
// Parsing concrete file formats is left to adapters like package romajitab.
func LoadTable(name string, reader TableReader) (table *Table, err error) {
	backend := newDATBackend()
	type pendingEntry struct {
		pos          int
		alternatives []string
	}
	pending := make([]pendingEntry, 0, 256)
	seen := make(map[int]string)
	spellingCount := 0
	for {
		syllable, alternatives, rerr := reader.Next()
		if rerr == io.EOF {
			break
		}
		if rerr != nil {
			return nil, fmt.Errorf("table %s: %w", name, rerr)
		}
		if n := utf8.RuneCountInString(syllable); n == 0 || n > 2 {
			return nil, fmt.Errorf("table %s: syllable %q must have one or two characters", name, syllable)
		}
		if err = checkSpellings(alternatives); err != nil {
			return nil, fmt.Errorf("table %s: syllable %q: %w", name, syllable, err)
		}
		key, ok := backend.EncodeKey(syllable)
		if !ok {
			return nil, fmt.Errorf("table %s: cannot encode syllable %q", name, syllable)
		}
		pos := backend.AllocPositionForKey(key)
		if pos == 0 {
			return nil, fmt.Errorf("table %s: could not allocate trie position for syllable %q", name, syllable)
		}
		if _, dup := seen[pos]; dup {
			tracer().Infof("table %s: syllable %q redefined, later entry wins", name, syllable)
		}
		seen[pos] = syllable
		alts := make([]string, len(alternatives))
		copy(alts, alternatives)
		spellingCount += len(alts)
		pending = append(pending, pendingEntry{pos: pos, alternatives: alts})
	}
	backend.Freeze()
	table = &Table{
		keys:       backend,
		spellings:  newSpellingStore(spellingCount),
		size:       len(seen),
		Identifier: fmt.Sprintf("romaji: %s", name),
	}
	for _, p := range pending {
		state := backend.ResolvePosition(p.pos)
		if state == 0 {
			return nil, fmt.Errorf("table %s: could not resolve trie position %d after freeze", name, p.pos)
		}
		if err = table.spellings.Put(state, p.alternatives); err != nil {
			return nil, fmt.Errorf("table %s: %w", name, err)
		}
	}
	kind, used, total, maxStateID, fill := table.Stats()
	tracer().Infof("table %s: %d syllables, trie backend=%s used=%d total=%d fill=%.2f maxStateID=%d",
		name, table.size, kind, used, total, fill, maxStateID)
	tracer().Debugf("table %s: %s", name, backend)
	return table, nil
}

// Len returns the number of syllables in the table.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return t.size
}

// Stats reports density metrics for the underlying key trie.
func (t *Table) Stats() (backend string, usedSlots, totalSlots, maxStateID int, fillRatio float64) {
	if t == nil || t.keys == nil {
		return "", 0, 0, 0, 0
	}
	stats := t.keys.Stats()
	return stats.Backend, stats.UsedSlots, stats.TotalSlots, stats.MaxStateID, stats.FillRatio()
}

// Lookup returns a copy of the spellings for syllable.
func (t *Table) Lookup(syllable string) ([]string, bool) {
	if t == nil || t.keys == nil {
		return nil, false
	}
	key, _ := t.keys.EncodeKey(syllable)
	alts, ok := t.lookupKey(key)
	if !ok {
		return nil, false
	}
	return cloneSpellings(alts), true
}

// Preferred returns the first spelling for syllable.
func (t *Table) Preferred(syllable string) (string, bool) {
	alts, ok := t.Lookup(syllable)
	if !ok {
		return "", false
	}
	return alts[0], true
}

// lookupRunes is the non-copying lookup used on the conversion path.
func (t *Table) lookupRunes(rs []rune) ([]string, bool) {
	if t == nil || t.keys == nil {
		return nil, false
	}
	return t.lookupKey(t.keys.EncodeRunes(rs))
}

func (t *Table) lookupKey(key []uint16) ([]string, bool) {
	if len(key) == 0 {
		return nil, false
	}
	it := t.keys.Iterator()
	state := 0
	for _, c := range key {
		if state = it.Next(c); state == 0 {
			return nil, false
		}
	}
	return t.spellings.Get(state)
}

func cloneSpellings(alts []string) []string {
	c := make([]string, len(alts))
	copy(c, alts)
	return c
}
