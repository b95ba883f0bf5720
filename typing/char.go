package typing

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/derekparker/trie"
	"github.com/npillmayer/romaji"
)

// Char tracks the keystrokes typed for one syllable.
//
// Spellings and keys are compared in lower case. A Char is not safe for
// concurrent use.
type Char struct {
	Kana      string
	spellings []string   // lower case, table order
	index     *trie.Trie // spelling => position in spellings
	accepted  string
	completed bool
}

// NewChar prepares a syllable record for typing.
func NewChar(rec romaji.Record) *Char {
	c := &Char{
		Kana:      rec.Kana,
		spellings: make([]string, 0, len(rec.Alternatives)),
		index:     trie.New(),
	}
	for _, alt := range rec.Alternatives {
		s := strings.ToLower(alt)
		if s == "" {
			continue
		}
		if _, dup := c.index.Find(s); dup {
			continue
		}
		c.index.Add(s, len(c.spellings))
		c.spellings = append(c.spellings, s)
	}
	return c
}

// Spellings returns the accepted spellings in table order.
func (c *Char) Spellings() []string {
	s := make([]string, len(c.spellings))
	copy(s, c.spellings)
	return s
}

// Type feeds one key. It reports whether the key continues any spelling;
// rejected keys leave the Char unchanged.
func (c *Char) Type(key rune) bool {
	if c.completed {
		return false
	}
	candidate := c.accepted + string(unicode.ToLower(key))
	if !c.index.HasKeysWithPrefix(candidate) {
		return false
	}
	c.accepted = candidate
	if c.isSpelling(c.accepted) && !c.extensible() {
		c.completed = true
	}
	return true
}

// Pending reports whether the keys typed so far form a complete spelling
// while a longer spelling is still possible, e.g. "n" for ん, which may
// still become "nn".
func (c *Char) Pending() bool {
	return !c.completed && c.isSpelling(c.accepted)
}

// Commit completes a pending Char with the keys typed so far.
func (c *Char) Commit() bool {
	if !c.Pending() {
		return false
	}
	c.completed = true
	return true
}

// Completed reports whether the syllable has been typed.
func (c *Char) Completed() bool {
	return c.completed
}

// Accepted returns the keys accepted so far.
func (c *Char) Accepted() string {
	return c.accepted
}

// Remaining returns the shortest rest of a spelling consistent with the keys
// typed so far. Among equally short rests the earlier spelling wins.
func (c *Char) Remaining() string {
	if c.completed {
		return ""
	}
	best, bestIdx := "", -1
	for _, s := range c.index.PrefixSearch(c.accepted) {
		node, ok := c.index.Find(s)
		if !ok {
			continue
		}
		idx := node.Meta().(int)
		rest := s[len(c.accepted):]
		if bestIdx < 0 || len(rest) < len(best) || (len(rest) == len(best) && idx < bestIdx) {
			best, bestIdx = rest, idx
		}
	}
	return best
}

// BasePoint is the length of the preferred spelling.
func (c *Char) BasePoint() int {
	if len(c.spellings) == 0 {
		return 0
	}
	return utf8.RuneCountInString(c.spellings[0])
}

// Point returns the base point once the syllable is completed, 0 before.
func (c *Char) Point() int {
	if !c.completed {
		return 0
	}
	return c.BasePoint()
}

// Progress is the share of the preferred spelling typed so far, in [0,1].
func (c *Char) Progress() float64 {
	if c.completed || c.BasePoint() == 0 {
		return 1
	}
	return min(1, float64(utf8.RuneCountInString(c.accepted))/float64(c.BasePoint()))
}

// Reset discards all typed keys.
func (c *Char) Reset() {
	c.accepted = ""
	c.completed = false
}

// Display is a snapshot for rendering a syllable.
type Display struct {
	Text      string
	Accepted  string
	Remaining string
	Completed bool
}

// Display returns the current state for rendering.
func (c *Char) Display() Display {
	return Display{
		Text:      c.Kana,
		Accepted:  c.accepted,
		Remaining: c.Remaining(),
		Completed: c.completed,
	}
}

func (c *Char) isSpelling(s string) bool {
	if s == "" {
		return false
	}
	_, ok := c.index.Find(s)
	return ok
}

// extensible reports whether a spelling longer than the accepted keys is
// still reachable.
func (c *Char) extensible() bool {
	for _, s := range c.index.PrefixSearch(c.accepted) {
		if len(s) > len(c.accepted) {
			return true
		}
	}
	return false
}
