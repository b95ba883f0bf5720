package romaji

import (
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/npillmayer/romaji/dat"
)

type datBuildNode struct {
	tmpID    int
	state    uint32
	children map[uint16]*datBuildNode
}

// datBackend collects syllable keys in a pointer trie and compiles them into
// a double-array trie on Freeze. Before Freeze, positions are temporary node
// IDs; afterwards they are DAT states.
type datBackend struct {
	frozen      bool
	root        *datBuildNode
	nextNodeID  int
	runeToDense map[rune]uint16
	nextDenseID uint16
	resolved    map[int]uint32 // temporary node ID => DAT state, filled by Freeze
	compiled    *dat.DAT
}

func newDATBackend() *datBackend {
	return &datBackend{
		root:        &datBuildNode{tmpID: 1, children: make(map[uint16]*datBuildNode)},
		nextNodeID:  2,
		runeToDense: make(map[rune]uint16),
		compiled: &dat.DAT{
			Root: 1,
		},
	}
}

// EncodeKey maps s to dense alphabet IDs. While building, unseen runes are
// added to the alphabet; runes outside the BMP are rejected. Once frozen,
// unknown runes encode as 0, which never transitions.
func (db *datBackend) EncodeKey(s string) ([]uint16, bool) {
	key := make([]uint16, 0, utf8.RuneCountInString(s))
	if db.frozen {
		for _, r := range s {
			key = append(key, db.compiled.Dense(r))
		}
		return key, true
	}
	for _, r := range s {
		if r < 0 || r > 0xFFFF {
			return nil, false
		}
		dense, ok := db.runeToDense[r]
		if !ok {
			if db.nextDenseID == ^uint16(0) {
				return nil, false
			}
			db.nextDenseID++
			dense = db.nextDenseID
			db.runeToDense[r] = dense
			db.compiled.Alphabet.Set(uint16(r), dense)
		}
		key = append(key, dense)
	}
	return key, true
}

// EncodeRunes is the lookup-only encoding used on the conversion path.
func (db *datBackend) EncodeRunes(rs []rune) []uint16 {
	key := make([]uint16, len(rs))
	for i, r := range rs {
		key[i] = db.compiled.Dense(r)
	}
	return key
}

// AllocPositionForKey inserts key into the build trie and returns its
// temporary position. A frozen backend accepts no new keys and returns 0.
func (db *datBackend) AllocPositionForKey(key []uint16) int {
	if len(key) == 0 || db.frozen {
		return 0
	}
	n := db.root
	for _, c := range key {
		if c == 0 {
			return 0
		}
		child := n.children[c]
		if child == nil {
			child = &datBuildNode{
				tmpID:    db.nextNodeID,
				children: make(map[uint16]*datBuildNode),
			}
			db.nextNodeID++
			n.children[c] = child
		}
		n = child
	}
	return n.tmpID
}

// ResolvePosition translates a temporary build position into its DAT state.
// It returns 0 if the backend is not frozen yet or pos is unknown.
func (db *datBackend) ResolvePosition(pos int) int {
	if !db.frozen {
		return 0
	}
	return int(db.resolved[pos])
}

func (db *datBackend) Freeze() {
	if db.frozen {
		return
	}
	db.compiled.Sigma = db.nextDenseID
	db.compiled.Base = make([]int32, int(db.compiled.Root)+1)
	db.compiled.Check = make([]int32, int(db.compiled.Root)+1)
	db.resolved = make(map[int]uint32, db.nextNodeID)
	db.root.state = db.compiled.Root
	queue := []*datBuildNode{db.root}
	for q := 0; q < len(queue); q++ {
		n := queue[q]
		db.resolved[n.tmpID] = n.state
		if len(n.children) == 0 {
			continue
		}
		labels := sortedLabels(n.children)
		base := findDATBase(db.compiled.Check, labels)
		ensureDATIndex(db.compiled, base+int(labels[len(labels)-1]))
		db.compiled.Base[n.state] = int32(base)
		for _, label := range labels {
			t := base + int(label)
			child := n.children[label]
			child.state = uint32(t)
			db.compiled.Check[t] = int32(n.state)
			queue = append(queue, child)
		}
	}
	db.root = nil
	db.runeToDense = nil
	db.frozen = true
}

// Iterator walks the compiled trie. It must not be called before Freeze.
func (db *datBackend) Iterator() keyIterator {
	assert(db.frozen, "dat backend: Iterator called before Freeze")
	return &datIterator{
		d:     db.compiled,
		state: db.compiled.Root,
	}
}

type datIterator struct {
	d     *dat.DAT
	state uint32
	dead  bool
}

func (it *datIterator) Next(symbol uint16) int {
	if it.dead || it.d == nil {
		it.dead = true
		return 0
	}
	next, ok := it.d.Transition(it.state, symbol)
	if !ok {
		it.dead = true
		return 0
	}
	it.state = next
	return int(next)
}

func sortedLabels(children map[uint16]*datBuildNode) []uint16 {
	labels := make([]uint16, 0, len(children))
	for label := range children {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool {
		return labels[i] < labels[j]
	})
	return labels
}

// findDATBase returns the smallest base for which every labelled slot is
// still free. Slots beyond the current arrays count as free.
func findDATBase(check []int32, labels []uint16) int {
	for base := 1; ; base++ {
		ok := true
		for _, label := range labels {
			t := base + int(label)
			if t < len(check) && check[t] != 0 {
				ok = false
				break
			}
		}
		if ok {
			return base
		}
	}
}

func ensureDATIndex(d *dat.DAT, idx int) {
	if idx < len(d.Base) {
		return
	}
	grow := idx + 1 - len(d.Base)
	d.Base = append(d.Base, make([]int32, grow)...)
	d.Check = append(d.Check, make([]int32, grow)...)
}

func (db *datBackend) String() string {
	return fmt.Sprintf("DAT(states=%d,sigma=%d,frozen=%v)", db.compiled.NStates(), db.compiled.Sigma, db.frozen)
}

func (db *datBackend) Stats() keyTrieStats {
	stats := keyTrieStats{
		Backend:    "dat",
		TotalSlots: db.compiled.NStates(),
		MaxStateID: int(db.compiled.Root),
	}
	if stats.TotalSlots == 0 {
		return stats
	}
	used := 0
	for i := range db.compiled.Check {
		if i == int(db.compiled.Root) || db.compiled.Check[i] != 0 {
			used++
			stats.MaxStateID = max(stats.MaxStateID, i)
		}
	}
	stats.UsedSlots = used
	return stats
}
