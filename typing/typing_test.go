package typing

import (
	"testing"

	"github.com/npillmayer/romaji"
)

func typeAll(w *Word, keys string) int {
	accepted := 0
	for _, k := range keys {
		if w.Type(k) {
			accepted++
		}
	}
	return accepted
}

func TestCharAlternativeSpellings(t *testing.T) {
	for _, keys := range []string{"si", "shi", "ci", "SHI"} {
		c := NewChar(romaji.Record{Kana: "し", Alternatives: []string{"si", "shi", "ci"}})
		for _, k := range keys {
			if !c.Type(k) {
				t.Fatalf("%q: key %q rejected after %q", keys, k, c.Accepted())
			}
		}
		if !c.Completed() {
			t.Fatalf("%q: expected し to be completed", keys)
		}
		if c.Point() != 2 {
			t.Fatalf("%q: expected point 2 (preferred si), got %d", keys, c.Point())
		}
	}
}

func TestCharRejectsWrongKey(t *testing.T) {
	c := NewChar(romaji.Record{Kana: "し", Alternatives: []string{"si", "shi", "ci"}})
	if c.Type('z') {
		t.Fatalf("z must be rejected")
	}
	if c.Accepted() != "" || c.Completed() {
		t.Fatalf("rejected key changed state: %q", c.Accepted())
	}
	c.Type('s')
	if got := c.Remaining(); got != "i" {
		t.Fatalf("expected shortest remaining i, got %q", got)
	}
	c.Type('h')
	if got := c.Remaining(); got != "i" {
		t.Fatalf("expected remaining i after sh, got %q", got)
	}
	if c.Type('h') {
		t.Fatalf("shh must be rejected")
	}
}

func TestCharRemainingPrefersTableOrder(t *testing.T) {
	c := NewChar(romaji.Record{Kana: "ふ", Alternatives: []string{"fu", "hu"}})
	if got := c.Remaining(); got != "fu" {
		t.Fatalf("expected fu, got %q", got)
	}
	d := c.Display()
	if d.Text != "ふ" || d.Remaining != "fu" || d.Completed {
		t.Fatalf("unexpected display %+v", d)
	}
}

func TestCharPendingNasal(t *testing.T) {
	c := NewChar(romaji.Record{Kana: "ん", Alternatives: []string{"nn", "xn", "n"}})
	c.Type('n')
	if c.Completed() || !c.Pending() {
		t.Fatalf("n must leave ん pending")
	}
	if c.Type('n'); !c.Completed() {
		t.Fatalf("nn must complete ん")
	}
	if c.Commit() {
		t.Fatalf("a completed Char cannot be committed")
	}
	c.Reset()
	if c.Accepted() != "" || c.Completed() || c.Progress() != 0 {
		t.Fatalf("reset did not clear state")
	}
	c.Type('n')
	if !c.Commit() || !c.Completed() {
		t.Fatalf("pending ん must commit")
	}
}

func TestCharProgress(t *testing.T) {
	c := NewChar(romaji.Record{Kana: "きゃ", Alternatives: []string{"kya"}})
	c.Type('k')
	if p := c.Progress(); p < 0.33 || p > 0.34 {
		t.Fatalf("expected progress 1/3, got %f", p)
	}
	if c.Point() != 0 {
		t.Fatalf("incomplete char must not score")
	}
}

func TestCharIdentityRecord(t *testing.T) {
	c := NewChar(romaji.Record{Kana: "A", Alternatives: []string{"A"}})
	if !c.Type('a') || !c.Completed() {
		t.Fatalf("identity record must accept its own character")
	}
}

func TestWordSimple(t *testing.T) {
	w := NewWordFromText(nil, "きゃっと")
	if w.TotalCount() != 6 { // kya + t + to
		t.Fatalf("expected total 6, got %d", w.TotalCount())
	}
	if n := typeAll(w, "kyatto"); n != 6 {
		t.Fatalf("expected 6 accepted keys, got %d", n)
	}
	if !w.Completed() || w.Progress() != 100 || w.Current() != nil {
		t.Fatalf("expected completed word")
	}
	if w.Type('x') {
		t.Fatalf("completed word must reject keys")
	}
	if w.Mistakes() != 0 || w.KeyCount() != 6 {
		t.Fatalf("unexpected counters: mistakes=%d keys=%d", w.Mistakes(), w.KeyCount())
	}
}

func TestWordGeminateEscape(t *testing.T) {
	w := NewWordFromText(romaji.New(), "った")
	if n := typeAll(w, "ltuta"); n != 5 || !w.Completed() {
		t.Fatalf("expected ltuta to complete った, accepted %d", n)
	}
}

func TestWordNasalBranches(t *testing.T) {
	tests := []struct {
		text string
		keys string
	}{
		{"かんじ", "kanji"},  // single n, next key starts じ
		{"かんじ", "kannji"}, // double n
		{"かんじ", "kaxnji"},
		{"ほん", "hon"}, // single n at the end commits
		{"ほん", "honn"},
		{"きんようび", "kinnyoubi"},
	}
	for _, tt := range tests {
		w := NewWordFromText(nil, tt.text)
		typeAll(w, tt.keys)
		if !w.Completed() {
			t.Errorf("%s typed as %q: word not completed", tt.text, tt.keys)
		}
		if w.Mistakes() != 0 {
			t.Errorf("%s typed as %q: %d mistakes", tt.text, tt.keys, w.Mistakes())
		}
	}
}

func TestWordNasalBeforeVowelNeedsDoubleN(t *testing.T) {
	w := NewWordFromText(nil, "きんようび")
	typeAll(w, "kinyoubi")
	if w.Completed() {
		t.Fatalf("kinyoubi must not complete きんようび")
	}
	if w.Mistakes() == 0 {
		t.Fatalf("expected a mistake")
	}
}

func TestWordMistakesAndReset(t *testing.T) {
	w := NewWordFromText(nil, "あい")
	if w.Type('k') {
		t.Fatalf("k must be rejected for あ")
	}
	w.Type('a')
	if w.Progress() != 50 {
		t.Fatalf("expected 50%% progress, got %d", w.Progress())
	}
	if w.RemainingCount() != 1 {
		t.Fatalf("expected 1 remaining key, got %d", w.RemainingCount())
	}
	if w.Mistakes() != 1 || w.KeyCount() != 2 {
		t.Fatalf("unexpected counters: mistakes=%d keys=%d", w.Mistakes(), w.KeyCount())
	}
	w.Reset()
	if w.Progress() != 0 || w.Mistakes() != 0 || w.KeyCount() != 0 || w.Current().Kana != "あ" {
		t.Fatalf("reset did not clear state")
	}
	if len(w.Chars()) != 2 {
		t.Fatalf("expected 2 chars")
	}
}

func TestWordCountsKeysNotBytes(t *testing.T) {
	w := NewWordFromText(nil, "漢字")
	if w.TotalCount() != 2 || w.RemainingCount() != 2 {
		t.Fatalf("expected 2 keys total and remaining, got %d and %d", w.TotalCount(), w.RemainingCount())
	}
	w.Type('漢')
	if w.RemainingCount() != 1 {
		t.Fatalf("expected 1 remaining key, got %d", w.RemainingCount())
	}
}

func TestEmptyWord(t *testing.T) {
	w := NewWordFromText(nil, "")
	if !w.Completed() || w.Progress() != 100 || w.Type('a') {
		t.Fatalf("empty word must be complete")
	}
}
