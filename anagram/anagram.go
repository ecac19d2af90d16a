// Package anagram classifies colon-separated word pairs as anagrams.
package anagram

import (
	"strings"
	"unicode/utf8"
)

// A Tally maps each character of a word to the number of times it occurs.
type Tally map[rune]int

// TallyOf returns the character tally of the lowercased word.
func TallyOf(word string) Tally {
	t := make(Tally)
	for _, r := range strings.ToLower(word) {
		t[r]++
	}
	return t
}

// IsAnagram reports whether word1 and word2 contain the same multiset of
// characters, ignoring case.
func IsAnagram(word1, word2 string) bool {
	word1 = strings.ToLower(word1)
	word2 = strings.ToLower(word2)
	if utf8.RuneCountInString(word1) != utf8.RuneCountInString(word2) {
		return false
	}
	t := make(Tally)
	for _, r := range word1 {
		t[r]++
	}
	for _, r := range word2 {
		if _, ok := t[r]; !ok {
			return false
		}
		t[r]--
	}
	for _, n := range t {
		if n != 0 {
			return false
		}
	}
	return true
}
