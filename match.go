package romaji

import "strings"

// Matches reports whether typed is a valid start of any of alternatives.
//
// The test is a plain, case-sensitive prefix test. Hosts use it to check a
// single keystroke against the record currently being typed.
func Matches(typed string, alternatives []string) bool {
	for _, alt := range alternatives {
		if strings.HasPrefix(alt, typed) {
			return true
		}
	}
	return false
}
