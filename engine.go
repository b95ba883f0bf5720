package romaji

import "unicode/utf8"

const (
	geminateMark = 'っ'
	nasalMark    = 'ん'
)

// Spellings of the small っ that never depend on the following syllable.
var (
	geminateEscapes  = []string{"xtu", "ltu"}
	geminateFallback = []string{"xtu", "ltu", "xtsu", "ltsu"}
)

// Engine converts kana text into records of accepted spellings.
//
// An Engine holds nothing but a reference to an immutable table; all methods
// are reentrant and may be called concurrently.
type Engine struct {
	table *Table
}

// New returns an engine over the built-in table.
func New() *Engine {
	return &Engine{table: DefaultTable()}
}

// NewWithTable returns an engine over a custom table. A nil table selects
// the built-in one.
func NewWithTable(table *Table) *Engine {
	if table == nil {
		table = DefaultTable()
	}
	return &Engine{table: table}
}

// Table returns the table the engine resolves syllables with.
func (e *Engine) Table() *Table {
	return e.table
}

// Convert splits text into syllables and resolves the spellings of each.
//
// Concatenating the Kana fields of the result reproduces text, invalid UTF-8
// included. Characters unknown to the table, and bytes that do not decode,
// are returned as records spelled by themselves.
//
// Example:
//
//	"きゃっと" => [ {きゃ [kya]} {っ [t xtu ltu]} {と [to]} ].
func (e *Engine) Convert(text string) []Record {
	records := make([]Record, 0, utf8.RuneCountInString(text))
	for off := 0; off < len(text); {
		c, w := utf8.DecodeRuneInString(text[off:])
		if c == utf8.RuneError && w == 1 {
			raw := text[off : off+1]
			records = append(records, Record{Kana: raw, Alternatives: []string{raw}})
			off++
			continue
		}
		var next []rune // holds at most the character after c; empty at the end or before a broken byte
		n, nw := utf8.DecodeRuneInString(text[off+w:])
		if nw > 1 || (nw == 1 && n != utf8.RuneError) {
			next = []rune{n}
		}
		switch c {
		case geminateMark:
			records = append(records, Record{Kana: text[off : off+w], Alternatives: e.geminate(next)})
			off += w // the following character is scanned on its own
			continue
		case nasalMark:
			records = append(records, Record{Kana: text[off : off+w], Alternatives: e.nasal(next)})
			off += w
			continue
		}
		if next != nil {
			if alts, ok := e.table.lookupRunes([]rune{c, n}); ok {
				records = append(records, Record{Kana: text[off : off+w+nw], Alternatives: cloneSpellings(alts)})
				off += w + nw
				continue
			}
		}
		kana := text[off : off+w]
		if alts, ok := e.table.lookupRunes([]rune{c}); ok {
			records = append(records, Record{Kana: kana, Alternatives: cloneSpellings(alts)})
		} else {
			tracer().Debugf("no spelling for %q, passing it through", c)
			records = append(records, Record{Kana: kana, Alternatives: []string{kana}})
		}
		off += w
	}
	return records
}

// ConvertMany converts each of texts independently.
func (e *Engine) ConvertMany(texts []string) [][]Record {
	results := make([][]Record, len(texts))
	for i, text := range texts {
		results[i] = e.Convert(text)
	}
	return results
}

// geminate resolves the spellings of っ followed by next (empty at the end
// of the text). Typing the leading letter of the following syllable's
// preferred spelling doubles it; the escapes spell the small tsu literally.
func (e *Engine) geminate(next []rune) []string {
	if len(next) == 0 {
		return cloneSpellings(geminateFallback)
	}
	alts, ok := e.table.lookupRunes(next)
	if !ok {
		return cloneSpellings(geminateFallback)
	}
	r, _ := utf8.DecodeRuneInString(alts[0])
	return append([]string{string(r)}, geminateEscapes...)
}
