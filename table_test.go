package romaji

import (
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

type failingReader struct{}

func (failingReader) Next() (string, []string, error) {
	return "", nil, errors.New("broken source")
}

func TestLoadTableFromEntries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "romaji")
	defer teardown()
	//
	table, err := LoadTable("entries", NewEntryReader([]Entry{
		{"か", []string{"ka", "ca"}},
		{"きゃ", []string{"kya"}},
		{"き", []string{"ki"}},
	}))
	if err != nil {
		t.Fatal(err)
	}
	if table.Len() != 3 {
		t.Fatalf("expected 3 syllables, got %d", table.Len())
	}
	alts, ok := table.Lookup("か")
	if !ok || !reflect.DeepEqual(alts, []string{"ka", "ca"}) {
		t.Fatalf("lookup of か failed: %v, %v", alts, ok)
	}
	if p, ok := table.Preferred("きゃ"); !ok || p != "kya" {
		t.Fatalf("expected preferred kya, got %q", p)
	}
	if _, ok := table.Lookup("ゃ"); ok {
		t.Fatalf("ゃ only occurs inside きゃ and must not resolve on its own")
	}
	if _, ok := table.Lookup("さ"); ok {
		t.Fatalf("さ is outside the alphabet and must not resolve")
	}
	if _, ok := table.Lookup(""); ok {
		t.Fatalf("empty syllable must not resolve")
	}
	if table.Identifier != "romaji: entries" {
		t.Fatalf("unexpected identifier %q", table.Identifier)
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	table := DefaultTable()
	alts, _ := table.Lookup("し")
	alts[0] = "XX"
	again, _ := table.Lookup("し")
	if again[0] != "si" {
		t.Fatalf("table was mutated through a lookup result: %v", again)
	}
}

func TestLoadTableLaterEntryWins(t *testing.T) {
	table, err := LoadTable("dup", NewEntryReader([]Entry{
		{"じ", []string{"ji"}},
		{"じ", []string{"zi", "ji"}},
	}))
	if err != nil {
		t.Fatal(err)
	}
	if table.Len() != 1 {
		t.Fatalf("expected 1 syllable, got %d", table.Len())
	}
	if p, _ := table.Preferred("じ"); p != "zi" {
		t.Fatalf("expected later entry to win, got %q", p)
	}
}

func TestLoadTableRejectsInvalidEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
	}{
		{"empty syllable", []Entry{{"", []string{"a"}}}},
		{"three characters", []Entry{{"きゃっ", []string{"kyat"}}}},
		{"no spellings", []Entry{{"あ", nil}}},
		{"empty spelling", []Entry{{"あ", []string{""}}}},
		{"outside BMP", []Entry{{"😀", []string{"smile"}}}},
	}
	for _, tt := range tests {
		if _, err := LoadTable(tt.name, NewEntryReader(tt.entries)); err == nil {
			t.Errorf("%s: expected an error", tt.name)
		}
	}
}

func TestLoadTableWrapsReaderError(t *testing.T) {
	_, err := LoadTable("failing", failingReader{})
	if err == nil || err.Error() != "table failing: broken source" {
		t.Fatalf("expected wrapped reader error, got %v", err)
	}
}

func TestEmptyTable(t *testing.T) {
	table, err := LoadTable("empty", NewEntryReader(nil))
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := table.Lookup("あ"); ok {
		t.Fatalf("empty table must not resolve anything")
	}
	recs := NewWithTable(table).Convert("あ")
	if !reflect.DeepEqual(recs, []Record{{Kana: "あ", Alternatives: []string{"あ"}}}) {
		t.Fatalf("expected passthrough over an empty table, got %v", recs)
	}
}

func TestEntryReaderEOF(t *testing.T) {
	r := NewEntryReader([]Entry{{"あ", []string{"a"}}})
	if _, _, err := r.Next(); err != nil {
		t.Fatal(err)
	}
	if _, _, err := r.Next(); err != io.EOF {
		t.Fatalf("expected io.EOF, got %v", err)
	}
}

func TestDefaultTable(t *testing.T) {
	table := DefaultTable()
	if table != DefaultTable() {
		t.Fatalf("default table must be compiled once and shared")
	}
	if table.Len() != len(defaultEntries) {
		t.Fatalf("expected %d syllables, got %d", len(defaultEntries), table.Len())
	}
	for _, e := range DefaultEntries() {
		alts, ok := table.Lookup(e.Syllable)
		if !ok {
			t.Fatalf("syllable %q missing from compiled table", e.Syllable)
		}
		if !reflect.DeepEqual(alts, e.Spellings) {
			t.Fatalf("spellings of %q: got %v, want %v", e.Syllable, alts, e.Spellings)
		}
	}
	if _, ok := table.Lookup("っ"); ok {
		t.Fatalf("small tsu must not be a table key")
	}
}

func TestTableStats(t *testing.T) {
	backend, used, total, maxStateID, fill := DefaultTable().Stats()
	if backend != "dat" {
		t.Fatalf("expected dat backend, got %s", backend)
	}
	if used <= 0 || total <= 0 {
		t.Fatalf("expected positive slot counts, got used=%d total=%d", used, total)
	}
	if maxStateID <= 0 {
		t.Fatalf("expected positive maxStateID, got %d", maxStateID)
	}
	if fill <= 0 || fill > 1 {
		t.Fatalf("expected fill ratio in (0,1], got %f", fill)
	}
}

func TestDATBackendLifecycle(t *testing.T) {
	db := newDATBackend()
	func() {
		defer func() {
			if recover() == nil {
				t.Errorf("Iterator before Freeze must panic")
			}
		}()
		db.Iterator()
	}()
	key, ok := db.EncodeKey("きゃ")
	if !ok {
		t.Fatalf("cannot encode きゃ")
	}
	pos := db.AllocPositionForKey(key)
	if pos == 0 {
		t.Fatalf("expected a build position for きゃ")
	}
	if !strings.Contains(db.String(), "frozen=false") {
		t.Fatalf("unexpected description %s", db)
	}
	db.Freeze()
	if db.AllocPositionForKey(key) != 0 {
		t.Fatalf("a frozen backend must not allocate")
	}
	state := db.ResolvePosition(pos)
	it := db.Iterator()
	got := 0
	for _, c := range key {
		got = it.Next(c)
	}
	if state == 0 || got != state {
		t.Fatalf("iterator reached %d, resolved position is %d", got, state)
	}
	if !strings.Contains(db.String(), "frozen=true") {
		t.Fatalf("unexpected description %s", db)
	}
}
