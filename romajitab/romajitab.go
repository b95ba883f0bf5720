/*
Package romajitab reads syllable tables from a line-oriented text format.

Each line holds a syllable followed by its spellings, preferred spelling
first, separated by white space:

	\table{hepburn-extras}  % optional identifier
	% comments start with '%' or '#'
	し shi si ci
	じゃ ja zya jya

Syllables are normalized to Unicode NFC, so a table written with combining
sound marks (き + U+3099) matches the precomposed kana a typist's input
method produces.
*/
package romajitab

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/romaji"
	"golang.org/x/text/unicode/norm"
)

// Reader streams table entries from text.
type Reader struct {
	scanner    *bufio.Scanner
	identifier string
	line       int
}

// unnamed identifies tables that declare no \table{...} name.
const unnamed = "unnamed"

// LoadTable parses table text and compiles it into a ready-to-use table.
// If name is empty, the identifier given by a \table{...} line is used,
// or "unnamed" if there is none.
func LoadTable(name string, reader io.Reader) (*romaji.Table, error) {
	r := NewReader(reader)
	if name != "" {
		return romaji.LoadTable(name, r)
	}
	// the identifier is only known after reading, so buffer the entries
	var entries []romaji.Entry
	for {
		syllable, spellings, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		entries = append(entries, romaji.Entry{Syllable: syllable, Spellings: spellings})
	}
	name = r.Identifier()
	if name == "" {
		name = unnamed
	}
	return romaji.LoadTable(name, romaji.NewEntryReader(entries))
}

// NewReader returns a reader over table text. The result implements
// romaji.TableReader.
func NewReader(reader io.Reader) *Reader {
	return &Reader{
		scanner: bufio.NewScanner(reader),
	}
}

// Identifier returns the name declared by a \table{...} line read so far.
func (r *Reader) Identifier() string {
	return r.identifier
}

// Next returns the next entry as (syllable, spellings).
// It returns io.EOF when exhausted.
func (r *Reader) Next() (string, []string, error) {
	for r.scanner.Scan() {
		r.line++
		line := strings.TrimSpace(r.scanner.Text())
		if line == "" || strings.HasPrefix(line, "%") || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, `\table{`) {
			end := strings.IndexByte(line, '}')
			if end < 0 {
				return "", nil, fmt.Errorf("line %d: unterminated \\table{", r.line)
			}
			r.identifier = line[len(`\table{`):end]
			line = strings.TrimSpace(line[end+1:])
			if line == "" || strings.HasPrefix(line, "%") || strings.HasPrefix(line, "#") {
				continue
			}
			// an entry may follow the identifier on the same line
		}
		fields := strings.Fields(line)
		syllable := norm.NFC.String(fields[0])
		if len(fields) < 2 {
			return "", nil, fmt.Errorf("line %d: syllable %q has no spelling", r.line, syllable)
		}
		return syllable, fields[1:], nil
	}
	if err := r.scanner.Err(); err != nil {
		return "", nil, err
	}
	return "", nil, io.EOF
}
