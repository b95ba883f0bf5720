package romaji

import (
	"unicode"
	"unicode/utf8"
)

// Spellings of ん. A bare "n" is left out when it would merge with the
// spelling of the following syllable (ん+あ typed "na" reads as な).
var (
	nasalFull       = []string{"nn", "xn", "n"}
	nasalRestricted = []string{"nn", "xn"}
)

// NasalAlternatives returns the accepted spellings of ん when followed by
// following. Only the first character of following is considered; an empty
// string means nothing follows.
//
// The result is the same Convert produces for ん in that position, so hosts
// may use it to preview continuations without converting a full text.
func (e *Engine) NasalAlternatives(following string) []string {
	if following == "" {
		return e.nasal(nil)
	}
	r, _ := utf8.DecodeRuneInString(following)
	return e.nasal([]rune{r})
}

func (e *Engine) nasal(next []rune) []string {
	if len(next) == 0 {
		return cloneSpellings(nasalFull)
	}
	alts, ok := e.table.lookupRunes(next)
	if !ok {
		return cloneSpellings(nasalFull)
	}
	lead, _ := utf8.DecodeRuneInString(alts[0])
	if mergesWithNasal(unicode.ToLower(lead)) {
		return cloneSpellings(nasalRestricted)
	}
	return cloneSpellings(nasalFull)
}

func mergesWithNasal(lead rune) bool {
	switch lead {
	case 'a', 'i', 'u', 'e', 'o', 'y', 'w':
		return true
	}
	return false
}
