package typing

import (
	"unicode/utf8"

	"github.com/npillmayer/romaji"
)

// Word drives a typist through the syllables of a converted text.
//
// Keys go to the current syllable. A pending syllable (ん typed as "n") is
// committed as soon as a key is rejected by it but accepted by the following
// syllable; that key then counts for the following one. A Word is not safe
// for concurrent use.
type Word struct {
	chars    []*Char
	pos      int
	keys     int
	mistakes int
}

// NewWord prepares converted records for typing.
func NewWord(records []romaji.Record) *Word {
	w := &Word{chars: make([]*Char, len(records))}
	for i, rec := range records {
		w.chars[i] = NewChar(rec)
	}
	return w
}

// NewWordFromText converts text with engine and prepares the result for
// typing. A nil engine selects the built-in table.
func NewWordFromText(engine *romaji.Engine, text string) *Word {
	if engine == nil {
		engine = romaji.New()
	}
	return NewWord(engine.Convert(text))
}

// Type feeds one key and reports whether it was accepted.
func (w *Word) Type(key rune) bool {
	if w.Completed() {
		return false
	}
	w.keys++
	c := w.chars[w.pos]
	if c.Type(key) {
		w.settle()
		return true
	}
	if c.Pending() && w.pos+1 < len(w.chars) {
		if next := w.chars[w.pos+1]; next.Type(key) {
			c.Commit()
			w.pos++
			w.settle()
			return true
		}
	}
	w.mistakes++
	return false
}

// settle advances past completed syllables. A pending syllable at the end
// of the word has nothing left to wait for and is committed.
func (w *Word) settle() {
	for w.pos < len(w.chars) {
		c := w.chars[w.pos]
		if w.pos == len(w.chars)-1 {
			c.Commit()
		}
		if !c.Completed() {
			return
		}
		w.pos++
	}
}

// Completed reports whether every syllable has been typed.
func (w *Word) Completed() bool {
	return w.pos >= len(w.chars)
}

// Current returns the syllable being typed, or nil once the word is done.
func (w *Word) Current() *Char {
	if w.Completed() {
		return nil
	}
	return w.chars[w.pos]
}

// Chars returns the syllables of the word.
func (w *Word) Chars() []*Char {
	chars := make([]*Char, len(w.chars))
	copy(chars, w.chars)
	return chars
}

// Progress returns the percentage of completed syllables.
func (w *Word) Progress() int {
	if len(w.chars) == 0 {
		return 100
	}
	return w.pos * 100 / len(w.chars)
}

// TotalCount is the number of keys needed with preferred spellings.
func (w *Word) TotalCount() int {
	total := 0
	for _, c := range w.chars {
		total += c.BasePoint()
	}
	return total
}

// RemainingCount is the number of keys still needed, assuming the shortest
// spellings from here on.
func (w *Word) RemainingCount() int {
	remaining := 0
	for _, c := range w.chars[w.pos:] {
		remaining += utf8.RuneCountInString(c.Remaining())
	}
	return remaining
}

// KeyCount returns the number of keys fed so far.
func (w *Word) KeyCount() int {
	return w.keys
}

// Mistakes returns the number of rejected keys.
func (w *Word) Mistakes() int {
	return w.mistakes
}

// Reset discards all typed keys.
func (w *Word) Reset() {
	for _, c := range w.chars {
		c.Reset()
	}
	w.pos, w.keys, w.mistakes = 0, 0, 0
}
