// Package typing follows a typist through converted kana, one key at a time.
//
// A Char narrows the accepted spellings of one syllable as keys arrive; a
// Word strings Chars together and resolves the ん ambiguity between "n" and
// "nn" by looking at the following syllable.
package typing
