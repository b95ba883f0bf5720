package romaji

import (
	"io"
	"sync"
)

// Entry is one syllable of a declarative table with its spellings, the
// preferred spelling first.
type Entry struct {
	Syllable  string
	Spellings []string
}

// EntryReader adapts a list of entries to TableReader.
type EntryReader struct {
	entries []Entry
	index   int
}

// NewEntryReader returns a TableReader over entries.
func NewEntryReader(entries []Entry) *EntryReader {
	return &EntryReader{entries: entries}
}

// Next returns the next entry or io.EOF.
func (r *EntryReader) Next() (string, []string, error) {
	if r.index >= len(r.entries) {
		return "", nil, io.EOF
	}
	e := r.entries[r.index]
	r.index++
	return e.Syllable, e.Spellings, nil
}

// DefaultEntries returns a copy of the built-in table, e.g. as a base for
// a custom table.
func DefaultEntries() []Entry {
	entries := make([]Entry, len(defaultEntries))
	for i, e := range defaultEntries {
		entries[i] = Entry{Syllable: e.Syllable, Spellings: cloneSpellings(e.Spellings)}
	}
	return entries
}

var (
	defaultTableOnce sync.Once
	defaultTable     *Table
)

// DefaultTable returns the built-in table. It is compiled on first use and
// shared by all callers.
func DefaultTable() *Table {
	defaultTableOnce.Do(func() {
		t, err := LoadTable("default", NewEntryReader(defaultEntries))
		assert(err == nil, "built-in romaji table does not compile")
		defaultTable = t
	})
	return defaultTable
}

// The small っ is not part of the table: its spellings depend on the
// following syllable and are produced by the converter.
var defaultEntries = []Entry{
	// vowels
	{"あ", []string{"a"}},
	{"い", []string{"i", "yi"}},
	{"う", []string{"u", "wu"}},
	{"え", []string{"e"}},
	{"お", []string{"o"}},

	// k, g
	{"か", []string{"ka", "ca"}},
	{"き", []string{"ki"}},
	{"く", []string{"ku", "cu", "qu"}},
	{"け", []string{"ke"}},
	{"こ", []string{"ko", "co"}},
	{"が", []string{"ga"}},
	{"ぎ", []string{"gi"}},
	{"ぐ", []string{"gu"}},
	{"げ", []string{"ge"}},
	{"ご", []string{"go"}},

	// s, z
	{"さ", []string{"sa"}},
	{"し", []string{"si", "shi", "ci"}},
	{"す", []string{"su"}},
	{"せ", []string{"se", "ce"}},
	{"そ", []string{"so"}},
	{"ざ", []string{"za"}},
	{"じ", []string{"ji", "zi"}},
	{"ず", []string{"zu"}},
	{"ぜ", []string{"ze"}},
	{"ぞ", []string{"zo"}},

	// t, d
	{"た", []string{"ta"}},
	{"ち", []string{"ti", "chi"}},
	{"つ", []string{"tu", "tsu"}},
	{"て", []string{"te"}},
	{"と", []string{"to"}},
	{"だ", []string{"da"}},
	{"ぢ", []string{"di"}},
	{"づ", []string{"du"}},
	{"で", []string{"de"}},
	{"ど", []string{"do"}},

	// n
	{"な", []string{"na"}},
	{"に", []string{"ni"}},
	{"ぬ", []string{"nu"}},
	{"ね", []string{"ne"}},
	{"の", []string{"no"}},

	// h, b, p
	{"は", []string{"ha"}},
	{"ひ", []string{"hi"}},
	{"ふ", []string{"fu", "hu"}},
	{"へ", []string{"he"}},
	{"ほ", []string{"ho"}},
	{"ば", []string{"ba"}},
	{"び", []string{"bi"}},
	{"ぶ", []string{"bu"}},
	{"べ", []string{"be"}},
	{"ぼ", []string{"bo"}},
	{"ぱ", []string{"pa"}},
	{"ぴ", []string{"pi"}},
	{"ぷ", []string{"pu"}},
	{"ぺ", []string{"pe"}},
	{"ぽ", []string{"po"}},

	// m
	{"ま", []string{"ma"}},
	{"み", []string{"mi"}},
	{"む", []string{"mu"}},
	{"め", []string{"me"}},
	{"も", []string{"mo"}},

	// y
	{"や", []string{"ya"}},
	{"ゆ", []string{"yu"}},
	{"よ", []string{"yo"}},

	// r
	{"ら", []string{"ra"}},
	{"り", []string{"ri"}},
	{"る", []string{"ru"}},
	{"れ", []string{"re"}},
	{"ろ", []string{"ro"}},

	// w, nasal
	{"わ", []string{"wa"}},
	{"ゐ", []string{"wyi"}},
	{"ゑ", []string{"wye"}},
	{"を", []string{"wo"}},
	{"ん", []string{"nn", "xn", "n"}},

	// small kana, typed standalone
	{"ぁ", []string{"xa", "la"}},
	{"ぃ", []string{"xi", "li"}},
	{"ぅ", []string{"xu", "lu"}},
	{"ぇ", []string{"xe", "le"}},
	{"ぉ", []string{"xo", "lo"}},
	{"ゃ", []string{"xya", "lya"}},
	{"ゅ", []string{"xyu", "lyu"}},
	{"ょ", []string{"xyo", "lyo"}},
	{"ゎ", []string{"xwa", "lwa"}},

	// contracted sounds
	{"きゃ", []string{"kya"}},
	{"きぃ", []string{"kyi"}},
	{"きゅ", []string{"kyu"}},
	{"きぇ", []string{"kye"}},
	{"きょ", []string{"kyo"}},
	{"ぎゃ", []string{"gya"}},
	{"ぎぃ", []string{"gyi"}},
	{"ぎゅ", []string{"gyu"}},
	{"ぎぇ", []string{"gye"}},
	{"ぎょ", []string{"gyo"}},
	{"しゃ", []string{"sya", "sha"}},
	{"しぃ", []string{"syi"}},
	{"しゅ", []string{"syu", "shu"}},
	{"しぇ", []string{"sye", "she"}},
	{"しょ", []string{"syo", "sho"}},
	{"じゃ", []string{"zya", "ja", "jya"}},
	{"じぃ", []string{"zyi", "jyi"}},
	{"じゅ", []string{"zyu", "ju", "jyu"}},
	{"じぇ", []string{"zye", "je", "jye"}},
	{"じょ", []string{"zyo", "jo", "jyo"}},
	{"ちゃ", []string{"tya", "cha"}},
	{"ちぃ", []string{"tyi"}},
	{"ちゅ", []string{"tyu", "chu"}},
	{"ちぇ", []string{"tye", "che"}},
	{"ちょ", []string{"tyo", "cho"}},
	{"にゃ", []string{"nya"}},
	{"にぃ", []string{"nyi"}},
	{"にゅ", []string{"nyu"}},
	{"にぇ", []string{"nye"}},
	{"にょ", []string{"nyo"}},
	{"ひゃ", []string{"hya"}},
	{"ひぃ", []string{"hyi"}},
	{"ひゅ", []string{"hyu"}},
	{"ひぇ", []string{"hye"}},
	{"ひょ", []string{"hyo"}},
	{"びゃ", []string{"bya"}},
	{"びぃ", []string{"byi"}},
	{"びゅ", []string{"byu"}},
	{"びぇ", []string{"bye"}},
	{"びょ", []string{"byo"}},
	{"ぴゃ", []string{"pya"}},
	{"ぴぃ", []string{"pyi"}},
	{"ぴゅ", []string{"pyu"}},
	{"ぴぇ", []string{"pye"}},
	{"ぴょ", []string{"pyo"}},
	{"みゃ", []string{"mya"}},
	{"みぃ", []string{"myi"}},
	{"みゅ", []string{"myu"}},
	{"みぇ", []string{"mye"}},
	{"みょ", []string{"myo"}},
	{"りゃ", []string{"rya"}},
	{"りぃ", []string{"ryi"}},
	{"りゅ", []string{"ryu"}},
	{"りぇ", []string{"rye"}},
	{"りょ", []string{"ryo"}},

	// extended sounds
	{"ふぁ", []string{"fa"}},
	{"ふぃ", []string{"fi"}},
	{"ふぇ", []string{"fe"}},
	{"ふぉ", []string{"fo"}},
	{"ヴ", []string{"vu"}},
	{"ヴぁ", []string{"va"}},
	{"ヴぃ", []string{"vi"}},
	{"ヴぇ", []string{"ve"}},
	{"ヴぉ", []string{"vo"}},
	{"くぁ", []string{"qa", "qwa"}},
	{"くぃ", []string{"qi", "qwi"}},
	{"くぇ", []string{"qe", "qwe"}},
	{"くぉ", []string{"qo", "qwo"}},
}
