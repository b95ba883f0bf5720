/*
Package romaji resolves Japanese kana into the Latin keystroke sequences a
typist may use to enter them.

It is meant as the core of a typing trainer or an input validator: for every
syllable of a kana string it reports all accepted spellings, the preferred
one first. Hiragana is covered fully, katakana only where the table says so
(ヴ and its extended sounds). Anything else passes through unchanged.

A syllable is one kana or a kana plus a small vowel/glide kana (きゃ, ふぁ).
Conversion scans left to right and prefers two-character syllables over
single ones. Three positions cannot be resolved by table lookup alone:

  - the small っ doubles the consonant of the following syllable, so its
    spellings depend on what comes next;
  - ん may be typed as a single 'n' only if the following syllable does not
    start with a vowel, 'y' or 'w';
  - contracted sounds consume two characters.

The syllable table is compiled once into a frozen double-array trie and is
never mutated afterwards. Engines and tables are safe for concurrent use.

Typical usage:

	engine := romaji.New()
	for _, rec := range engine.Convert("きって") {
		fmt.Println(rec.Kana, rec.Alternatives)
	}

Package romajitab reads custom tables from a line-oriented text format;
package typing tracks a typist's progress through converted syllables.

----------------------------------------------------------------------

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer@com>

All rights reserved.

License information is available in the LICENSE file.
*/
package romaji

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'romaji'
func tracer() tracing.Trace {
	return tracing.Select("romaji")
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
