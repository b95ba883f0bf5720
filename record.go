package romaji

import "strings"

// Record pairs one syllable of the input with its accepted spellings.
// Alternatives is never empty; its first element is the preferred spelling.
type Record struct {
	Kana         string
	Alternatives []string
}

// Preferred returns the spelling shown to a typist by default.
func (r Record) Preferred() string {
	if len(r.Alternatives) == 0 {
		return ""
	}
	return r.Alternatives[0]
}

// Kana concatenates the syllables of records. For the result of a
// conversion this reproduces the converted text.
func Kana(records []Record) string {
	var b strings.Builder
	for _, r := range records {
		b.WriteString(r.Kana)
	}
	return b.String()
}

// PreferredSpelling joins the preferred spellings of records, e.g.
// "kitte" for the conversion of "きって".
func PreferredSpelling(records []Record) string {
	var b strings.Builder
	for _, r := range records {
		b.WriteString(r.Preferred())
	}
	return b.String()
}
